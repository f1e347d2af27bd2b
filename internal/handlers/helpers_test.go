package handlers_test

import (
	"TabHome/internal/cache"
	"TabHome/internal/config"
	"TabHome/internal/handlers"
	"TabHome/internal/metadata"
	"TabHome/internal/middleware"
	"TabHome/internal/model"
	"TabHome/internal/repo"
	"TabHome/internal/service"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

// newTestRouter поднимает полный роутер поверх in-memory SQLite:
// хендлеры дергают настоящие сервисы и репозитории.
func newTestRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dial := gormsqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:h_%s?mode=memory&cache=shared", name),
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Folder{},
		&model.Bookmark{},
		&model.SearchEngine{},
		&model.UserSettings{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()
	c := cache.New(cache.NewMemoryStore(), logger)

	br := repo.NewBookmarkRepository(db)
	fr := repo.NewFolderRepository(db)
	er := repo.NewSearchEngineRepository(db)
	sr := repo.NewSettingsRepository(db)
	ur := repo.NewUserRepository(db)

	scraper := metadata.NewScraper(logger)
	resolver := metadata.NewResolver(scraper, logger)

	h := handlers.NewHandler(
		service.NewUserService(ur),
		service.NewBookmarkService(br, c, logger),
		service.NewFolderService(fr, br, c, logger),
		service.NewEngineService(er, c, logger),
		service.NewSettingsService(sr, c, logger),
		scraper,
		resolver,
		logger,
		cfg,
	)
	return h.Router, db
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, testSecret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// mustUser создаёт пользователя напрямую в БД, минуя регистрацию.
func mustUser(t *testing.T, db *gorm.DB, login string) int64 {
	t.Helper()
	u := model.User{Login: login, Password: "x"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u.ID
}
