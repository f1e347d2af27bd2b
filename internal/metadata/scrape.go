// Пакет metadata — определение заголовка и иконки сайта по его URL.
// Извлечение из HTML — регулярными выражениями по ограниченному куску
// тела ответа: узкий best-effort-парсер, на необычной разметке он
// осознанно промахивается.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// FetchTimeout — потолок ожидания целевого сайта.
	FetchTimeout = 10 * time.Second

	// maxScanBytes — сколько байт тела максимум читается и сканируется.
	maxScanBytes = 512 * 1024

	// htmlPreviewLen — длина возвращаемого фрагмента сырого HTML.
	htmlPreviewLen = 500

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// ErrTimeout — целевой сайт не ответил за FetchTimeout.
var ErrTimeout = errors.New("request timeout")

// StatusError — целевой сайт ответил не-2xx статусом.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch: %d", e.Code)
}

var (
	titleRe = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	descRe  = regexp.MustCompile(`(?i)<meta[^>]*name=["']description["'][^>]*content=["']([^"']+)["'][^>]*>`)
	iconRe  = regexp.MustCompile(`(?i)<link[^>]*rel=["'](?:icon|shortcut icon)["'][^>]*href=["']([^"']+)["'][^>]*>`)
)

// PageInfo — результат извлечения метаданных страницы.
type PageInfo struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	HTML        string  `json:"html"`
}

// Scraper загружает страницу и извлекает из неё метаданные.
type Scraper struct {
	client *http.Client
	log    *zap.SugaredLogger
}

// NewScraper создаёт скрейпер с таймаутом FetchTimeout.
func NewScraper(log *zap.SugaredLogger) *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: FetchTimeout},
		log:    log,
	}
}

// Fetch загружает rawURL и возвращает извлечённые метаданные.
// По таймауту — ErrTimeout, по не-2xx ответу — *StatusError.
func (s *Scraper) Fetch(ctx context.Context, rawURL string) (*PageInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxScanBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, err
	}
	html := string(body)

	info := &PageInfo{HTML: html}
	if len(info.HTML) > htmlPreviewLen {
		info.HTML = info.HTML[:htmlPreviewLen]
	}

	if m := titleRe.FindStringSubmatch(html); m != nil {
		t := strings.TrimSpace(m[1])
		if t != "" {
			info.Title = &t
		}
	}
	if m := descRe.FindStringSubmatch(html); m != nil {
		d := strings.TrimSpace(m[1])
		if d != "" {
			info.Description = &d
		}
	}
	if m := iconRe.FindStringSubmatch(html); m != nil {
		ic := resolveIcon(strings.TrimSpace(m[1]), rawURL)
		if ic != "" {
			info.Icon = &ic
		}
	}

	return info, nil
}

// resolveIcon приводит относительный href иконки к абсолютному URL
// относительно схемы и хоста страницы.
func resolveIcon(icon, pageURL string) string {
	if icon == "" || strings.HasPrefix(icon, "http") {
		return icon
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return icon
	}
	base := u.Scheme + "://" + u.Host
	if strings.HasPrefix(icon, "/") {
		return base + icon
	}
	return base + "/" + icon
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return true
	}
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}
