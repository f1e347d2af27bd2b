package handlers

import (
	"TabHome/internal/config"
	"TabHome/internal/metadata"
	"TabHome/internal/middleware"
	"TabHome/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	bookmarkService *service.BookmarkService,
	folderService *service.FolderService,
	engineService *service.EngineService,
	settingsService *service.SettingsService,
	scraper *metadata.Scraper,
	resolver *metadata.Resolver,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	bookmarkHandler := NewBookmarkHandler(bookmarkService, logger)
	folderHandler := NewFolderHandler(folderService, logger)
	engineHandler := NewEngineHandler(engineService, logger)
	settingsHandler := NewSettingsHandler(settingsService, logger)
	toolsHandler := NewToolsHandler(resolver, logger)
	proxyHandler := NewProxyHandler(scraper, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/test", userHandler.Status)

	// Bookmark routes
	r.Get("/api/bookmarks", bookmarkHandler.List)
	r.Post("/api/bookmarks", bookmarkHandler.Add)
	r.Put("/api/bookmarks/{id}", bookmarkHandler.Update)
	r.Delete("/api/bookmarks/{id}", bookmarkHandler.Delete)
	r.Patch("/api/bookmarks/{id}/folder", bookmarkHandler.MoveToFolder)

	// Folder routes
	r.Get("/api/folders", folderHandler.List)
	r.Post("/api/folders", folderHandler.Add)
	r.Put("/api/folders/{id}", folderHandler.Update)
	r.Delete("/api/folders/{id}", folderHandler.Delete)

	// Search engine routes
	r.Get("/api/search-engines", engineHandler.List)
	r.Post("/api/search-engines", engineHandler.Add)
	r.Put("/api/search-engines/{id}", engineHandler.Update)
	r.Delete("/api/search-engines/{id}", engineHandler.Delete)
	r.Post("/api/search-engines/{id}/default", engineHandler.SetDefault)
	r.Post("/api/search-engines/cleanup", engineHandler.Cleanup)

	// Settings routes
	r.Get("/api/settings", settingsHandler.Get)
	r.Put("/api/settings", settingsHandler.Update)

	// Tools
	r.Get("/api/site-info", toolsHandler.SiteInfo)
	r.Get("/api/icon", toolsHandler.GenerateIcon)
	r.Get("/api/proxy", proxyHandler.Proxy)

	return &Handler{Router: r}
}
