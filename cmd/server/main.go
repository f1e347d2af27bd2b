package main

import (
	"TabHome/internal/cache"
	"TabHome/internal/config"
	"TabHome/internal/handlers"
	"TabHome/internal/metadata"
	"TabHome/internal/middleware"
	"TabHome/internal/repo"
	"TabHome/internal/service"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	// кэш: Redis при заданном адресе, иначе in-memory
	var store cache.Store
	if cfg.RedisAddr != "" {
		rs, err := cache.NewRedisStore(ctx, cfg.RedisAddr)
		if err != nil {
			sugar.Fatalw("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
		}
		store = rs
		sugar.Infow("cache backend: redis", "addr", cfg.RedisAddr)
	} else {
		store = cache.NewMemoryStore()
		sugar.Infow("cache backend: memory")
	}
	c := cache.New(store, sugar)

	userRepo := repo.NewUserRepository(gormDB)
	bookmarkRepo := repo.NewBookmarkRepository(gormDB)
	folderRepo := repo.NewFolderRepository(gormDB)
	engineRepo := repo.NewSearchEngineRepository(gormDB)
	settingsRepo := repo.NewSettingsRepository(gormDB)

	scraper := metadata.NewScraper(sugar)
	resolver := metadata.NewResolver(scraper, sugar)

	h := handlers.NewHandler(
		service.NewUserService(userRepo),
		service.NewBookmarkService(bookmarkRepo, c, sugar),
		service.NewFolderService(folderRepo, bookmarkRepo, c, sugar),
		service.NewEngineService(engineRepo, c, sugar),
		service.NewSettingsService(settingsRepo, c, sugar),
		scraper,
		resolver,
		sugar,
		cfg,
	)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
