package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trackwell/trackwell/internal/errs"
	"github.com/trackwell/trackwell/internal/model"
)

func (d *Database) CreateTask(t *model.Task) error {
	return errors.WithStack(d.db.Create(t).Error)
}

func (d *Database) GetTaskByID(id string) (*model.Task, error) {
	var t model.Task
	if err := d.db.Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(errs.ErrTaskNotFound)
		}
		return nil, errors.WithStack(err)
	}
	return &t, nil
}

func (d *Database) ListTasks(filter model.TaskFilter) ([]*model.Task, error) {
	tx := d.db.Model(&model.Task{})
	if len(filter.Statuses) > 0 {
		tx = tx.Where("status IN ?", filter.Statuses)
	}
	if len(filter.Priorities) > 0 {
		tx = tx.Where("priority IN ?", filter.Priorities)
	}
	if len(filter.AssignedTo) > 0 {
		tx = tx.Where("assigned_to IN ?", filter.AssignedTo)
	}
	if len(filter.CreatedBy) > 0 {
		tx = tx.Where("created_by IN ?", filter.CreatedBy)
	}
	switch filter.Scope {
	case model.ScopeTopLevel:
		tx = tx.Where("parent_task_id IS NULL")
	case model.ScopeParent:
		tx = tx.Where("parent_task_id = ?", filter.ParentID)
	}
	if filter.ProjectID != nil {
		tx = tx.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	var tasks []*model.Task
	err := tx.Order("created_at DESC").Find(&tasks).Error
	return tasks, errors.WithStack(err)
}

func (d *Database) ListSubtasks(parentID string) ([]*model.Task, error) {
	var tasks []*model.Task
	err := d.db.Where("parent_task_id = ?", parentID).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, errors.WithStack(err)
}

func (d *Database) ListRecentTasks(limit int) ([]*model.Task, error) {
	var tasks []*model.Task
	err := d.db.Order("updated_at DESC").Limit(limit).Find(&tasks).Error
	return tasks, errors.WithStack(err)
}

// UpdateTaskFields applies a partial column update; gorm stamps updated_at.
func (d *Database) UpdateTaskFields(id string, fields map[string]any) error {
	res := d.db.Model(&model.Task{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return errors.WithStack(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.WithStack(errs.ErrTaskNotFound)
	}
	return nil
}

// DeleteTask removes the task, its direct subtasks and their dependent rows
// in one transaction. Object-store payloads referenced by cascaded
// attachment rows are left behind; that leak is accepted.
func (d *Database) DeleteTask(id string) error {
	return errors.WithStack(d.db.Transaction(func(tx *gorm.DB) error {
		var subtaskIDs []string
		if err := tx.Model(&model.Task{}).Where("parent_task_id = ?", id).Pluck("id", &subtaskIDs).Error; err != nil {
			return err
		}
		ids := append(subtaskIDs, id)
		for _, dependent := range []any{&model.Comment{}, &model.Attachment{}, &model.HistoryEntry{}} {
			if err := tx.Where("task_id IN ?", ids).Delete(dependent).Error; err != nil {
				return err
			}
		}
		return tx.Where("id IN ?", ids).Delete(&model.Task{}).Error
	}))
}
