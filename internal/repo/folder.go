package repo

import (
	"TabHome/internal/model"
	"context"

	"gorm.io/gorm"
)

// FolderRepository определяет минимальный контракт доступа к Folder.
type FolderRepository interface {
	// ListByUser возвращает папки пользователя по возрастанию позиции.
	ListByUser(ctx context.Context, userID int64) ([]model.Folder, error)

	// GetByID возвращает папку пользователя либо gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, userID int64, id string) (*model.Folder, error)

	// CountByUser возвращает число папок пользователя.
	CountByUser(ctx context.Context, userID int64) (int64, error)

	// Create вставляет новую папку.
	Create(ctx context.Context, f *model.Folder) error

	// Update применяет частичное обновление полей.
	Update(ctx context.Context, userID int64, id string, updates map[string]any) error

	// Delete удаляет папку пользователя.
	Delete(ctx context.Context, userID int64, id string) error
}

type folderRepo struct {
	db *gorm.DB
}

// NewFolderRepository создаёт реализацию репозитория для Folder.
func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepo{db: db}
}

func (r *folderRepo) ListByUser(ctx context.Context, userID int64) ([]model.Folder, error) {
	var out []model.Folder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position asc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *folderRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Folder, error) {
	var f model.Folder
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *folderRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Folder{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *folderRepo) Create(ctx context.Context, f *model.Folder) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *folderRepo) Update(ctx context.Context, userID int64, id string, updates map[string]any) error {
	tx := r.db.WithContext(ctx).
		Model(&model.Folder{}).
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

func (r *folderRepo) Delete(ctx context.Context, userID int64, id string) error {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Folder{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
