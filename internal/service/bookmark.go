package service

import (
	"TabHome/internal/cache"
	"TabHome/internal/metadata"
	"TabHome/internal/model"
	"TabHome/internal/repo"
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// iconWarnLen — мягкий порог длины иконки (data-URI могут разрастаться).
const iconWarnLen = 64 * 1024

// AddBookmarkRequest — типизированный вход создания закладки.
type AddBookmarkRequest struct {
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Icon     *string `json:"icon"`
	FolderID *string `json:"folder_id"`
}

// UpdateBookmarkRequest — типизированный вход обновления закладки.
type UpdateBookmarkRequest struct {
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Icon     *string `json:"icon"`
	FolderID *string `json:"folder_id"`
}

// BookmarkService — оркестрация CRUD закладок: валидация, нормализация
// URL, позиции и инвалидация кэша после каждой записи.
type BookmarkService struct {
	bookmarks repo.BookmarkRepository
	cache     *cache.Cache
	log       *zap.SugaredLogger
}

func NewBookmarkService(r repo.BookmarkRepository, c *cache.Cache, log *zap.SugaredLogger) *BookmarkService {
	return &BookmarkService{bookmarks: r, cache: c, log: log}
}

func bookmarksKey(userID int64) cache.Key {
	return cache.Key{Collection: cache.CollectionBookmarks, UserID: userID}
}

// List возвращает закладки пользователя через кэш.
func (s *BookmarkService) List(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	return cache.GetOrFetch(ctx, s.cache, bookmarksKey(userID), cache.BookmarksTTL,
		func(ctx context.Context) ([]model.Bookmark, error) {
			return s.bookmarks.ListByUser(ctx, userID)
		})
}

// Add создаёт закладку. Позиция — следующая за текущим числом закладок,
// поэтому последовательные вставки получают строго возрастающие позиции.
func (s *BookmarkService) Add(ctx context.Context, userID int64, req AddBookmarkRequest) (*model.Bookmark, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, ErrURLRequired
	}
	s.warnLargeIcon(req.Icon)

	count, err := s.bookmarks.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	b := &model.Bookmark{
		ID:       uuid.NewString(),
		UserID:   userID,
		Title:    title,
		URL:      metadata.NormalizeURL(strings.TrimSpace(req.URL)),
		Icon:     req.Icon,
		FolderID: req.FolderID,
		Position: int(count) + 1,
	}
	if err := s.bookmarks.Create(ctx, b); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, bookmarksKey(userID))
	return b, nil
}

// Update перезаписывает поля закладки.
func (s *BookmarkService) Update(ctx context.Context, userID int64, id string, req UpdateBookmarkRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(req.URL) == "" {
		return ErrURLRequired
	}
	s.warnLargeIcon(req.Icon)

	updates := map[string]any{
		"title":     title,
		"url":       metadata.NormalizeURL(strings.TrimSpace(req.URL)),
		"icon":      req.Icon,
		"folder_id": req.FolderID,
	}
	if err := s.bookmarks.Update(ctx, userID, id, updates); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, bookmarksKey(userID))
	return nil
}

// Delete удаляет закладку.
func (s *BookmarkService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.bookmarks.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, bookmarksKey(userID))
	return nil
}

// MoveToFolder переносит закладку в папку (nil — «без категории»).
// Операция однополевая и может повторяться сколько угодно раз подряд.
func (s *BookmarkService) MoveToFolder(ctx context.Context, userID int64, id string, folderID *string) error {
	if err := s.bookmarks.Update(ctx, userID, id, map[string]any{"folder_id": folderID}); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, bookmarksKey(userID))
	return nil
}

func (s *BookmarkService) warnLargeIcon(icon *string) {
	if icon != nil && len(*icon) > iconWarnLen {
		s.log.Warnw("bookmark icon is unusually large", "size", len(*icon))
	}
}
