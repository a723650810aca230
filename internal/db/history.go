package db

import (
	"github.com/pkg/errors"

	"github.com/trackwell/trackwell/internal/model"
)

func (d *Database) AppendHistory(h *model.HistoryEntry) error {
	return errors.WithStack(d.db.Create(h).Error)
}

// ListHistoryByTask returns the ledger newest-first.
func (d *Database) ListHistoryByTask(taskID string) ([]*model.HistoryEntry, error) {
	var entries []*model.HistoryEntry
	err := d.db.Where("task_id = ?", taskID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&entries).Error
	return entries, errors.WithStack(err)
}
