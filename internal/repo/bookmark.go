package repo

import (
	"TabHome/internal/model"
	"context"

	"gorm.io/gorm"
)

// BookmarkRepository определяет минимальный контракт доступа к Bookmark
// для слоя сервиса. Все операции ограничены владельцем записи.
type BookmarkRepository interface {
	// ListByUser возвращает закладки пользователя по возрастанию позиции.
	ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error)

	// GetByID возвращает закладку пользователя либо gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, userID int64, id string) (*model.Bookmark, error)

	// CountByUser возвращает число закладок пользователя.
	CountByUser(ctx context.Context, userID int64) (int64, error)

	// Create вставляет новую закладку.
	Create(ctx context.Context, b *model.Bookmark) error

	// Update применяет частичное обновление полей. Если записи нет —
	// gorm.ErrRecordNotFound.
	Update(ctx context.Context, userID int64, id string, updates map[string]any) error

	// Delete удаляет закладку пользователя.
	Delete(ctx context.Context, userID int64, id string) error

	// ReassignFolder переводит все закладки папки в «без категории».
	ReassignFolder(ctx context.Context, userID int64, folderID string) error
}

type bookmarkRepo struct {
	db *gorm.DB
}

// NewBookmarkRepository создаёт реализацию репозитория для Bookmark.
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepo{db: db}
}

func (r *bookmarkRepo) ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	var out []model.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position asc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *bookmarkRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Bookmark, error) {
	var b model.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookmarkRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Bookmark{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *bookmarkRepo) Create(ctx context.Context, b *model.Bookmark) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bookmarkRepo) Update(ctx context.Context, userID int64, id string, updates map[string]any) error {
	tx := r.db.WithContext(ctx).
		Model(&model.Bookmark{}).
		Where("user_id = ? AND id = ?", userID, id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, userID int64, id string) error {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Bookmark{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookmarkRepo) ReassignFolder(ctx context.Context, userID int64, folderID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Bookmark{}).
		Where("user_id = ? AND folder_id = ?", userID, folderID).
		Update("folder_id", nil).Error
}
