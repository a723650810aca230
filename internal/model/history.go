package model

import "time"

// HistoryEntry is one append-only row in the task's change ledger.
type HistoryEntry struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	TaskID    string    `gorm:"column:task_id;size:64;index:idx_history_task" json:"task_id"`
	ChangedBy uint      `gorm:"column:changed_by" json:"changed_by"`
	Change    string    `gorm:"column:change;size:1024" json:"change"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Actor *UserProfile `gorm:"-" json:"actor,omitempty"`
}

func (HistoryEntry) TableName() string {
	return "task_history"
}
