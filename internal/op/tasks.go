package op

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trackwell/trackwell/internal/errs"
	"github.com/trackwell/trackwell/internal/model"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

// CreateTask inserts a new task. Empty status/priority default to
// not-started/medium. A designated parent must exist and must itself be
// top-level; the hierarchy never goes deeper than two tiers.
func (s *Service) CreateTask(t *model.Task) (*model.Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return nil, errors.WithStack(errs.ErrEmptyTitle)
	}
	if t.Status == "" {
		t.Status = model.StatusNotStarted
	}
	if !t.Status.Valid() {
		return nil, errors.WithStack(errs.ErrInvalidStatus)
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if !t.Priority.Valid() {
		return nil, errors.WithStack(errs.ErrInvalidPriority)
	}
	if t.ParentTaskID != nil {
		parent, err := s.tasks.GetTaskByID(*t.ParentTaskID)
		if err != nil {
			return nil, err
		}
		if parent.ParentTaskID != nil {
			return nil, errors.WithStack(errs.ErrSubtaskNesting)
		}
	}
	t.ID = uuid.NewString()
	if err := s.tasks.CreateTask(t); err != nil {
		return nil, err
	}
	s.appendHistory(t.ID, t.CreatedBy, "created")
	if err := s.enrichTasks([]*model.Task{t}); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTask applies a partial update. Status changes route through the same
// audit path as ChangeStatus; priority and assignee changes are ledgered but
// produce no comment.
func (s *Service) UpdateTask(id string, upd model.TaskUpdate, actor uint) (*model.Task, error) {
	current, err := s.tasks.GetTaskByID(id)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]any)
	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			return nil, errors.WithStack(errs.ErrEmptyTitle)
		}
		fields["title"] = *upd.Title
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, errors.WithStack(errs.ErrInvalidStatus)
		}
		fields["status"] = *upd.Status
	}
	if upd.Priority != nil {
		if !upd.Priority.Valid() {
			return nil, errors.WithStack(errs.ErrInvalidPriority)
		}
		fields["priority"] = *upd.Priority
	}
	if upd.ClearAssignee {
		fields["assigned_to"] = nil
	} else if upd.AssignedTo != nil {
		fields["assigned_to"] = *upd.AssignedTo
	}
	if upd.ProjectID != nil {
		fields["project_id"] = *upd.ProjectID
	}
	if upd.DocLinks != nil {
		fields["doc_links"] = *upd.DocLinks
	}
	if upd.RelatedFiles != nil {
		fields["related_files"] = *upd.RelatedFiles
	}
	if upd.Metadata != nil {
		fields["metadata"] = *upd.Metadata
	}
	if len(fields) == 0 {
		return s.GetTask(id)
	}
	if err := s.tasks.UpdateTaskFields(id, fields); err != nil {
		return nil, err
	}
	if upd.Status != nil && *upd.Status != current.Status {
		s.auditStatusChange(id, current.Status, *upd.Status, actor)
	}
	if upd.Priority != nil && *upd.Priority != current.Priority {
		s.appendHistory(id, actor, "priority changed from "+string(current.Priority)+" to "+string(*upd.Priority))
	}
	if _, ok := fields["assigned_to"]; ok {
		s.appendHistory(id, actor, describeAssignment(upd.AssignedTo, upd.ClearAssignee))
	}
	return s.GetTask(id)
}

// DeleteTask removes a task row. Cascading removal of subtasks, comments and
// attachments is the store's responsibility.
func (s *Service) DeleteTask(id string) error {
	if _, err := s.tasks.GetTaskByID(id); err != nil {
		return err
	}
	return s.tasks.DeleteTask(id)
}

// GetTask returns one task with its subtasks and display profiles attached.
func (s *Service) GetTask(id string) (*model.Task, error) {
	t, err := s.tasks.GetTaskByID(id)
	if err != nil {
		return nil, err
	}
	subtasks, err := s.tasks.ListSubtasks(id)
	if err != nil {
		return nil, err
	}
	t.Subtasks = subtasks
	if err := s.enrichTasks([]*model.Task{t}); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTasks returns the filtered task set. With a specific parent scope the
// result is that parent's subtasks, flat; otherwise the set is assembled into
// a top-level-plus-subtasks hierarchy.
func (s *Service) ListTasks(filter model.TaskFilter) ([]*model.Task, error) {
	tasks, err := s.tasks.ListTasks(filter)
	if err != nil {
		return nil, err
	}
	if filter.Scope != model.ScopeParent {
		tasks = AssembleHierarchy(tasks)
	}
	if err := s.enrichTasks(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetStats aggregates status and priority counts over top-level tasks.
func (s *Service) GetStats() (model.TaskStats, error) {
	topLevel, err := s.tasks.ListTasks(model.TaskFilter{Scope: model.ScopeTopLevel})
	if err != nil {
		return model.TaskStats{}, err
	}
	return ComputeStats(topLevel), nil
}

// GetTasksAssignedTo returns the flat list of tasks assigned to a user,
// subtasks included.
func (s *Service) GetTasksAssignedTo(userID uint) ([]*model.Task, error) {
	tasks, err := s.tasks.ListTasks(model.TaskFilter{AssignedTo: []uint{userID}})
	if err != nil {
		return nil, err
	}
	if err := s.enrichTasks(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetRecentTasks returns the most recently touched tasks, flat.
func (s *Service) GetRecentTasks(limit int) ([]*model.Task, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	tasks, err := s.tasks.ListRecentTasks(limit)
	if err != nil {
		return nil, err
	}
	if err := s.enrichTasks(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func describeAssignment(assignee *uint, cleared bool) string {
	if cleared || assignee == nil {
		return "unassigned"
	}
	return "assigned to user " + utoa(*assignee)
}
