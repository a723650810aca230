// Package db implements the relational store adapter over gorm. All methods
// return store failures unmodified apart from stack annotation; retries and
// timeouts belong to the caller's store client.
package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trackwell/trackwell/internal/model"
)

// Database is the gorm-backed implementation of the op store interfaces.
type Database struct {
	db *gorm.DB
}

func New(d *gorm.DB) *Database {
	return &Database{db: d}
}

// AutoMigrate creates or updates the task-tracking tables. The users table is
// owned by the identity side and is only migrated here so a standalone
// deployment has somewhere to read profiles from.
func (d *Database) AutoMigrate() error {
	return errors.WithStack(d.db.AutoMigrate(
		&model.Task{},
		&model.Comment{},
		&model.Attachment{},
		&model.HistoryEntry{},
		&model.UserProfile{},
	))
}
