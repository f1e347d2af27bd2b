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

// AddEngineRequest — типизированный вход создания поисковика.
type AddEngineRequest struct {
	Name string  `json:"name"`
	URL  string  `json:"url"`
	Icon *string `json:"icon"`
}

// UpdateEngineRequest — типизированный вход обновления поисковика.
type UpdateEngineRequest struct {
	Name string  `json:"name"`
	URL  string  `json:"url"`
	Icon *string `json:"icon"`
}

// EngineService — оркестрация поисковиков: CRUD, эксклюзивный дефолт,
// посев встроенного набора и зачистка дублей.
type EngineService struct {
	engines repo.SearchEngineRepository
	cache   *cache.Cache
	log     *zap.SugaredLogger
}

func NewEngineService(r repo.SearchEngineRepository, c *cache.Cache, log *zap.SugaredLogger) *EngineService {
	return &EngineService{engines: r, cache: c, log: log}
}

func enginesKey(userID int64) cache.Key {
	return cache.Key{Collection: cache.CollectionSearchEngines, UserID: userID}
}

// List возвращает поисковики пользователя через кэш.
func (s *EngineService) List(ctx context.Context, userID int64) ([]model.SearchEngine, error) {
	return cache.GetOrFetch(ctx, s.cache, enginesKey(userID), cache.DefaultTTL,
		func(ctx context.Context) ([]model.SearchEngine, error) {
			return s.engines.ListByUser(ctx, userID)
		})
}

// Add создаёт пользовательский (не встроенный, не дефолтный) поисковик.
func (s *EngineService) Add(ctx context.Context, userID int64, req AddEngineRequest) (*model.SearchEngine, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, ErrURLRequired
	}

	count, err := s.engines.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	e := &model.SearchEngine{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		URL:      strings.TrimSpace(req.URL),
		Icon:     req.Icon,
		Position: int(count),
	}
	if err := s.engines.Create(ctx, e); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, enginesKey(userID))
	return e, nil
}

// Update обновляет поисковик. Переименование встроенного запрещено.
func (s *EngineService) Update(ctx context.Context, userID int64, id string, req UpdateEngineRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(req.URL) == "" {
		return ErrURLRequired
	}

	existing, err := s.engines.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if existing.IsBuiltin && name != existing.Name {
		return ErrBuiltinProtected
	}

	updates := map[string]any{
		"name": name,
		"url":  strings.TrimSpace(req.URL),
		"icon": req.Icon,
	}
	if err := s.engines.Update(ctx, userID, id, updates); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, enginesKey(userID))
	return nil
}

// Delete удаляет поисковик. Встроенные удалению не подлежат.
func (s *EngineService) Delete(ctx context.Context, userID int64, id string) error {
	existing, err := s.engines.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if existing.IsBuiltin {
		return ErrBuiltinProtected
	}
	if err := s.engines.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, enginesKey(userID))
	return nil
}

// SetDefault делает поисковик единственным дефолтным для пользователя.
func (s *EngineService) SetDefault(ctx context.Context, userID int64, id string) error {
	if err := s.engines.SetDefault(ctx, userID, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, enginesKey(userID))
	return nil
}

// EnsureDefaults сеет встроенные поисковики пользователю без единого
// поисковика. Перед вставкой сверяется с уже существующими встроенными
// именами: недосеянный прошлый запуск не приводит к дублям.
// Возвращает число вставленных записей.
func (s *EngineService) EnsureDefaults(ctx context.Context, userID int64) (int, error) {
	count, err := s.engines.CountByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	existing, err := s.engines.ListBuiltinNames(ctx, userID)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, n := range existing {
		seen[n] = true
	}

	inserted := 0
	for i, seed := range model.DefaultSearchEngines {
		if seen[seed.Name] {
			continue
		}
		ic := seed.Icon
		e := &model.SearchEngine{
			ID:        uuid.NewString(),
			UserID:    userID,
			Name:      seed.Name,
			URL:       seed.URL,
			Icon:      &ic,
			IsDefault: seed.IsDefault,
			IsBuiltin: true,
			Position:  i,
		}
		if err := s.engines.Create(ctx, e); err != nil {
			return inserted, err
		}
		inserted++
	}
	if inserted > 0 {
		s.cache.Invalidate(ctx, enginesKey(userID))
	}
	return inserted, nil
}

// CleanupDuplicates группирует поисковики по имени и для каждого имени
// с несколькими записями оставляет первую по порядку выдачи, остальные
// удаляет. Повторный запуск ничего не находит. Возвращает число
// удалённых записей.
func (s *EngineService) CleanupDuplicates(ctx context.Context, userID int64) (int, error) {
	all, err := s.engines.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	byName := make(map[string][]model.SearchEngine)
	for _, e := range all {
		byName[e.Name] = append(byName[e.Name], e)
	}

	var toDelete []string
	for _, group := range byName {
		for _, dup := range group[1:] {
			toDelete = append(toDelete, dup.ID)
		}
	}
	if len(toDelete) == 0 {
		return 0, nil
	}

	s.log.Infow("removing duplicate search engines", "user_id", userID, "count", len(toDelete))
	if err := s.engines.DeleteByIDs(ctx, userID, toDelete); err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx, enginesKey(userID))
	return len(toDelete), nil
}
