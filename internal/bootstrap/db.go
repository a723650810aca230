package bootstrap

import (
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trackwell/trackwell/internal/conf"
	"github.com/trackwell/trackwell/internal/db"
)

// InitDB opens the configured relational store and migrates the schema.
func InitDB(cfg conf.Database) (*db.Database, error) {
	var dialector gorm.Dialector
	switch cfg.Type {
	case "sqlite3", "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, errors.Errorf("unsupported database type %q", cfg.Type)
	}
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", cfg.Type)
	}
	database := db.New(gdb)
	if err := database.AutoMigrate(); err != nil {
		return nil, errors.Wrap(err, "failed to migrate schema")
	}
	return database, nil
}
