package repo

import (
	"TabHome/internal/model"
	"context"

	"gorm.io/gorm"
)

// SettingsRepository определяет контракт доступа к UserSettings.
type SettingsRepository interface {
	// GetByUser возвращает настройки пользователя либо gorm.ErrRecordNotFound.
	GetByUser(ctx context.Context, userID int64) (*model.UserSettings, error)

	// Create вставляет запись настроек.
	Create(ctx context.Context, s *model.UserSettings) error

	// Update применяет частичное обновление настроек пользователя.
	Update(ctx context.Context, userID int64, updates map[string]any) error
}

type settingsRepo struct {
	db *gorm.DB
}

// NewSettingsRepository создаёт реализацию репозитория для UserSettings.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetByUser(ctx context.Context, userID int64) (*model.UserSettings, error) {
	var s model.UserSettings
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Create(ctx context.Context, s *model.UserSettings) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *settingsRepo) Update(ctx context.Context, userID int64, updates map[string]any) error {
	tx := r.db.WithContext(ctx).
		Model(&model.UserSettings{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
