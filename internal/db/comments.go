package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trackwell/trackwell/internal/errs"
	"github.com/trackwell/trackwell/internal/model"
)

func (d *Database) CreateComment(c *model.Comment) error {
	return errors.WithStack(d.db.Create(c).Error)
}

func (d *Database) GetCommentByID(id string) (*model.Comment, error) {
	var c model.Comment
	if err := d.db.Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(errs.ErrCommentNotFound)
		}
		return nil, errors.WithStack(err)
	}
	return &c, nil
}

// ListCommentsByTask returns the thread oldest-first.
func (d *Database) ListCommentsByTask(taskID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := d.db.Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, errors.WithStack(err)
}

func (d *Database) UpdateCommentText(id, text string) error {
	res := d.db.Model(&model.Comment{}).Where("id = ?", id).Update("comment_text", text)
	if res.Error != nil {
		return errors.WithStack(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.WithStack(errs.ErrCommentNotFound)
	}
	return nil
}

func (d *Database) DeleteComment(id string) error {
	return errors.WithStack(d.db.Where("id = ?", id).Delete(&model.Comment{}).Error)
}
