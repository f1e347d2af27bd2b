package service

import (
	"TabHome/internal/cache"
	"TabHome/internal/model"
	"TabHome/internal/repo"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// testEnv — сервисы поверх настоящих репозиториев и in-memory SQLite.
type testEnv struct {
	db        *gorm.DB
	cache     *cache.Cache
	bookmarks *BookmarkService
	folders   *FolderService
	engines   *EngineService
	settings  *SettingsService
	users     *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dial := gormsqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name),
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

	log := zap.NewNop().Sugar()
	c := cache.New(cache.NewMemoryStore(), log)
	br := repo.NewBookmarkRepository(db)
	fr := repo.NewFolderRepository(db)
	er := repo.NewSearchEngineRepository(db)
	sr := repo.NewSettingsRepository(db)
	ur := repo.NewUserRepository(db)

	return &testEnv{
		db:        db,
		cache:     c,
		bookmarks: NewBookmarkService(br, c, log),
		folders:   NewFolderService(fr, br, c, log),
		engines:   NewEngineService(er, c, log),
		settings:  NewSettingsService(sr, c, log),
		users:     NewUserService(ur),
	}
}
