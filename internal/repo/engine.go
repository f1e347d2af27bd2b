package repo

import (
	"TabHome/internal/model"
	"context"

	"gorm.io/gorm"
)

// SearchEngineRepository определяет контракт доступа к SearchEngine.
type SearchEngineRepository interface {
	// ListByUser возвращает поисковики пользователя по возрастанию позиции.
	ListByUser(ctx context.Context, userID int64) ([]model.SearchEngine, error)

	// GetByID возвращает поисковик пользователя либо gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, userID int64, id string) (*model.SearchEngine, error)

	// CountByUser возвращает число поисковиков пользователя.
	CountByUser(ctx context.Context, userID int64) (int64, error)

	// ListBuiltinNames возвращает имена встроенных поисковиков пользователя.
	ListBuiltinNames(ctx context.Context, userID int64) ([]string, error)

	// Create вставляет новый поисковик.
	Create(ctx context.Context, e *model.SearchEngine) error

	// Update применяет частичное обновление полей.
	Update(ctx context.Context, userID int64, id string, updates map[string]any) error

	// Delete удаляет поисковик пользователя.
	Delete(ctx context.Context, userID int64, id string) error

	// DeleteByIDs удаляет набор поисковиков пользователя за один запрос.
	DeleteByIDs(ctx context.Context, userID int64, ids []string) error

	// SetDefault делает указанный поисковик единственным дефолтным
	// одним условным UPDATE: is_default = (id = ?) для всех записей
	// пользователя. Если записи нет — gorm.ErrRecordNotFound.
	SetDefault(ctx context.Context, userID int64, id string) error
}

type engineRepo struct {
	db *gorm.DB
}

// NewSearchEngineRepository создаёт реализацию репозитория для SearchEngine.
func NewSearchEngineRepository(db *gorm.DB) SearchEngineRepository {
	return &engineRepo{db: db}
}

func (r *engineRepo) ListByUser(ctx context.Context, userID int64) ([]model.SearchEngine, error) {
	var out []model.SearchEngine
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position asc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *engineRepo) GetByID(ctx context.Context, userID int64, id string) (*model.SearchEngine, error) {
	var e model.SearchEngine
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *engineRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.SearchEngine{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *engineRepo) ListBuiltinNames(ctx context.Context, userID int64) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.SearchEngine{}).
		Where("user_id = ? AND is_builtin = ?", userID, true).
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *engineRepo) Create(ctx context.Context, e *model.SearchEngine) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *engineRepo) Update(ctx context.Context, userID int64, id string, updates map[string]any) error {
	tx := r.db.WithContext(ctx).
		Model(&model.SearchEngine{}).
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

func (r *engineRepo) Delete(ctx context.Context, userID int64, id string) error {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.SearchEngine{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *engineRepo) DeleteByIDs(ctx context.Context, userID int64, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&model.SearchEngine{}).Error
}

func (r *engineRepo) SetDefault(ctx context.Context, userID int64, id string) error {
	if _, err := r.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&model.SearchEngine{}).
		Where("user_id = ?", userID).
		Update("is_default", gorm.Expr("(id = ?)", id)).Error
}
