package repo

import (
	"TabHome/internal/model"
	"strings"

	gormpg "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД и выполняет миграции моделей.
// DSN с префиксом postgres:// — PostgreSQL, иначе файл SQLite
// (драйвер modernc, без cgo). Пустой DSN — локальный файл tabhome.db.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		dial = gormpg.Open(dsn)
	case dsn == "":
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "tabhome.db"}
	default:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Folder{},
		&model.Bookmark{},
		&model.SearchEngine{},
		&model.UserSettings{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
