package metadata

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// faviconService — публичный сервис иконок по домену.
const faviconService = "https://www.google.com/s2/favicons?domain=%s&sz=128"

// SiteInfo — нормализованный URL и подобранные заголовок с иконкой.
type SiteInfo struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// NormalizeURL дописывает https://, если схема не указана.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// FallbackTitle выводит заголовок из хоста URL: без ведущего www.,
// часть до первой точки, первая буква заглавная.
func FallbackTitle(normalized string) string {
	u, err := url.Parse(normalized)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	name, _, _ := strings.Cut(host, ".")
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// FaviconURL возвращает адрес иконки через публичный favicon-сервис.
func FaviconURL(normalized string) string {
	u, err := url.Parse(normalized)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return fmt.Sprintf(faviconService, u.Hostname())
}

// Resolver подбирает метаданные сайта: сперва скрейпом, при любом сбое —
// детерминированным фолбэком из хоста.
type Resolver struct {
	scraper *Scraper
	log     *zap.SugaredLogger
}

// NewResolver создаёт резолвер поверх скрейпера.
func NewResolver(scraper *Scraper, log *zap.SugaredLogger) *Resolver {
	return &Resolver{scraper: scraper, log: log}
}

// Resolve никогда не возвращает ошибку: сбой скрейпа гасится, URL при
// этом всё равно нормализуется.
func (r *Resolver) Resolve(ctx context.Context, raw string) SiteInfo {
	norm := NormalizeURL(raw)
	info := SiteInfo{
		URL:   norm,
		Title: FallbackTitle(norm),
		Icon:  FaviconURL(norm),
	}

	page, err := r.scraper.Fetch(ctx, norm)
	if err != nil {
		r.log.Debugw("site scrape failed, using fallback", "url", norm, "error", err)
		return info
	}
	if page.Title != nil {
		info.Title = *page.Title
	}
	if page.Icon != nil {
		info.Icon = *page.Icon
	}
	return info
}
