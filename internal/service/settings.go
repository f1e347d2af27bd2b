package service

import (
	"TabHome/internal/cache"
	"TabHome/internal/model"
	"TabHome/internal/repo"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UpdateSettingsRequest — частичное обновление настроек: nil-поля не трогаются.
type UpdateSettingsRequest struct {
	Theme         *string `json:"theme"`
	BackgroundURL *string `json:"background_url"`
	ShowGreeting  *bool   `json:"show_greeting"`
	Columns       *int    `json:"columns"`
}

// SettingsService — настройки домашней страницы, одна запись на пользователя.
type SettingsService struct {
	settings repo.SettingsRepository
	cache    *cache.Cache
	log      *zap.SugaredLogger
}

func NewSettingsService(r repo.SettingsRepository, c *cache.Cache, log *zap.SugaredLogger) *SettingsService {
	return &SettingsService{settings: r, cache: c, log: log}
}

func settingsKey(userID int64) cache.Key {
	return cache.Key{Collection: cache.CollectionSettings, UserID: userID}
}

// Get возвращает настройки пользователя, создавая запись с дефолтами
// при первом обращении.
func (s *SettingsService) Get(ctx context.Context, userID int64) (*model.UserSettings, error) {
	return cache.GetOrFetch(ctx, s.cache, settingsKey(userID), cache.DefaultTTL,
		func(ctx context.Context) (*model.UserSettings, error) {
			got, err := s.settings.GetByUser(ctx, userID)
			if err == nil {
				return got, nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}

			def := &model.UserSettings{
				ID:           uuid.NewString(),
				UserID:       userID,
				Theme:        "system",
				ShowGreeting: true,
				Columns:      4,
			}
			if cerr := s.settings.Create(ctx, def); cerr != nil {
				// гонка двух первых чтений: запись уже есть, перечитываем
				if got, gerr := s.settings.GetByUser(ctx, userID); gerr == nil {
					return got, nil
				}
				return nil, cerr
			}
			return def, nil
		})
}

// Update применяет непустые поля запроса.
func (s *SettingsService) Update(ctx context.Context, userID int64, req UpdateSettingsRequest) error {
	updates := map[string]any{}
	if req.Theme != nil {
		switch *req.Theme {
		case "light", "dark", "system":
		default:
			return ErrInvalidTheme
		}
		updates["theme"] = *req.Theme
	}
	if req.BackgroundURL != nil {
		if *req.BackgroundURL == "" {
			updates["background_url"] = nil
		} else {
			updates["background_url"] = *req.BackgroundURL
		}
	}
	if req.ShowGreeting != nil {
		updates["show_greeting"] = *req.ShowGreeting
	}
	if req.Columns != nil {
		updates["columns"] = *req.Columns
	}
	if len(updates) == 0 {
		return nil
	}

	// запись могла ещё не создаваться
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}
	if err := s.settings.Update(ctx, userID, updates); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, settingsKey(userID))
	return nil
}
