package model

import "time"

// CommentKindStatusChange tags system-log comments produced by the status
// workflow so consumers can filter without matching on text.
const CommentKindStatusChange = "status_change"

type Comment struct {
	ID          string    `gorm:"column:id;primaryKey;size:64" json:"id"`
	TaskID      string    `gorm:"column:task_id;size:64;index:idx_comment_task" json:"task_id"`
	UserID      uint      `gorm:"column:user_id" json:"user_id"`
	CommentText string    `gorm:"column:comment_text;type:text" json:"comment_text"`
	IsSystemLog bool      `gorm:"column:is_system_log" json:"is_system_log"`
	Kind        string    `gorm:"column:kind;size:64" json:"kind,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User *UserProfile `gorm:"-" json:"user,omitempty"`
}

func (Comment) TableName() string {
	return "task_comments"
}
