package model

import "time"

// Attachment records metadata for a binary object held in the object store.
// FilePath is the object-store key; the payload itself never passes through
// the relational store.
type Attachment struct {
	ID         string    `gorm:"column:id;primaryKey;size:64" json:"id"`
	TaskID     string    `gorm:"column:task_id;size:64;index:idx_attachment_task" json:"task_id"`
	FileName   string    `gorm:"column:file_name;size:1024" json:"file_name"`
	FilePath   string    `gorm:"column:file_path;size:1024" json:"file_path"`
	FileSize   int64     `gorm:"column:file_size" json:"file_size"`
	FileType   string    `gorm:"column:file_type;size:255" json:"file_type"`
	UploadedBy uint      `gorm:"column:uploaded_by" json:"uploaded_by"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Uploader *UserProfile `gorm:"-" json:"uploader,omitempty"`
}

func (Attachment) TableName() string {
	return "task_attachments"
}
