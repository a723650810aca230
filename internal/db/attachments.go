package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trackwell/trackwell/internal/errs"
	"github.com/trackwell/trackwell/internal/model"
)

func (d *Database) CreateAttachment(a *model.Attachment) error {
	return errors.WithStack(d.db.Create(a).Error)
}

func (d *Database) GetAttachmentByID(id string) (*model.Attachment, error) {
	var a model.Attachment
	if err := d.db.Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(errs.ErrAttachmentNotFound)
		}
		return nil, errors.WithStack(err)
	}
	return &a, nil
}

func (d *Database) ListAttachmentsByTask(taskID string) ([]*model.Attachment, error) {
	var attachments []*model.Attachment
	err := d.db.Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&attachments).Error
	return attachments, errors.WithStack(err)
}

func (d *Database) DeleteAttachment(id string) error {
	return errors.WithStack(d.db.Where("id = ?", id).Delete(&model.Attachment{}).Error)
}
