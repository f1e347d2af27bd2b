package service

import (
	"TabHome/internal/cache"
	"TabHome/internal/model"
	"TabHome/internal/repo"
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddFolderRequest — типизированный вход создания папки.
type AddFolderRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// UpdateFolderRequest — типизированный вход обновления папки.
type UpdateFolderRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// FolderService — оркестрация CRUD папок. Удаление папки сперва
// переводит её закладки в «без категории», затем удаляет саму папку:
// висячих ссылок не остаётся даже при сбое на втором шаге.
type FolderService struct {
	folders   repo.FolderRepository
	bookmarks repo.BookmarkRepository
	cache     *cache.Cache
	log       *zap.SugaredLogger
}

func NewFolderService(fr repo.FolderRepository, br repo.BookmarkRepository, c *cache.Cache, log *zap.SugaredLogger) *FolderService {
	return &FolderService{folders: fr, bookmarks: br, cache: c, log: log}
}

func foldersKey(userID int64) cache.Key {
	return cache.Key{Collection: cache.CollectionFolders, UserID: userID}
}

// List возвращает папки пользователя через кэш.
func (s *FolderService) List(ctx context.Context, userID int64) ([]model.Folder, error) {
	return cache.GetOrFetch(ctx, s.cache, foldersKey(userID), cache.DefaultTTL,
		func(ctx context.Context) ([]model.Folder, error) {
			return s.folders.ListByUser(ctx, userID)
		})
}

// Add создаёт папку. Пустой цвет и иконка получают значения по умолчанию.
func (s *FolderService) Add(ctx context.Context, userID int64, req AddFolderRequest) (*model.Folder, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	color := req.Color
	if color == "" {
		color = model.FolderColors[0]
	}
	ic := req.Icon
	if ic == "" {
		ic = model.DefaultFolderIcon
	}
	if !model.ValidFolderIcon(ic) {
		return nil, ErrInvalidIcon
	}

	count, err := s.folders.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := &model.Folder{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		Color:    color,
		Icon:     ic,
		Position: int(count) + 1,
	}
	if err := s.folders.Create(ctx, f); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, foldersKey(userID))
	return f, nil
}

// Update перезаписывает имя, цвет и иконку папки.
func (s *FolderService) Update(ctx context.Context, userID int64, id string, req UpdateFolderRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ErrNameRequired
	}
	updates := map[string]any{"name": name}
	if req.Color != "" {
		updates["color"] = req.Color
	}
	if req.Icon != "" {
		if !model.ValidFolderIcon(req.Icon) {
			return ErrInvalidIcon
		}
		updates["icon"] = req.Icon
	}

	if err := s.folders.Update(ctx, userID, id, updates); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, foldersKey(userID))
	return nil
}

// Delete удаляет папку, предварительно освободив её закладки.
// Инвалидируются обе коллекции: у закладок сменился folder_id.
func (s *FolderService) Delete(ctx context.Context, userID int64, id string) error {
	if _, err := s.folders.GetByID(ctx, userID, id); err != nil {
		return err
	}
	if err := s.bookmarks.ReassignFolder(ctx, userID, id); err != nil {
		return err
	}
	if err := s.folders.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, foldersKey(userID), bookmarksKey(userID))
	return nil
}
