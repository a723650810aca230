package op

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trackwell/trackwell/internal/errs"
	"github.com/trackwell/trackwell/internal/model"
	"github.com/trackwell/trackwell/pkg/utils"
)

// The status machine is flat and fully connected: any status may move to any
// other. What matters is the audit trail, not gatekeeping.

// ChangeStatus persists a new status and, iff the status actually changed,
// appends a system-log comment naming both ends of the transition. The audit
// writes are non-critical: their failure never fails the status change.
func (s *Service) ChangeStatus(taskID string, newStatus model.TaskStatus, actor uint) (*model.Task, error) {
	if !newStatus.Valid() {
		return nil, errors.WithStack(errs.ErrInvalidStatus)
	}
	current, err := s.tasks.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.UpdateTaskFields(taskID, map[string]any{"status": newStatus}); err != nil {
		return nil, err
	}
	if current.Status != newStatus {
		s.auditStatusChange(taskID, current.Status, newStatus, actor)
	}
	return s.GetTask(taskID)
}

// ChangePriority is a plain field update plus a ledger entry; no comment is
// emitted for priority moves.
func (s *Service) ChangePriority(taskID string, newPriority model.TaskPriority, actor uint) (*model.Task, error) {
	if !newPriority.Valid() {
		return nil, errors.WithStack(errs.ErrInvalidPriority)
	}
	current, err := s.tasks.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.UpdateTaskFields(taskID, map[string]any{"priority": newPriority}); err != nil {
		return nil, err
	}
	if current.Priority != newPriority {
		s.appendHistory(taskID, actor, fmt.Sprintf("priority changed from %s to %s", current.Priority, newPriority))
	}
	return s.GetTask(taskID)
}

// AssignTask sets or clears the assignee. Like priority, it is ledgered but
// not commented, and only when the assignee actually changes.
func (s *Service) AssignTask(taskID string, assignee *uint, actor uint) (*model.Task, error) {
	current, err := s.tasks.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{"assigned_to": nil}
	if assignee != nil {
		fields["assigned_to"] = *assignee
	}
	if err := s.tasks.UpdateTaskFields(taskID, fields); err != nil {
		return nil, err
	}
	if assigneeChanged(current.AssignedTo, assignee) {
		s.appendHistory(taskID, actor, describeAssignment(assignee, assignee == nil))
	}
	return s.GetTask(taskID)
}

func assigneeChanged(old, new *uint) bool {
	if old == nil || new == nil {
		return old != new
	}
	return *old != *new
}

// GetHistory returns the task's change ledger, newest-first, with actor
// profiles attached.
func (s *Service) GetHistory(taskID string) ([]*model.HistoryEntry, error) {
	entries, err := s.history.ListHistoryByTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := s.enrichHistory(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// auditStatusChange writes the system-log comment and the ledger row for a
// real status transition. Both writes are warn-and-continue.
func (s *Service) auditStatusChange(taskID string, from, to model.TaskStatus, actor uint) {
	comment := &model.Comment{
		ID:          uuid.NewString(),
		TaskID:      taskID,
		UserID:      actor,
		CommentText: fmt.Sprintf("Status changed from %s to %s", from, to),
		IsSystemLog: true,
		Kind:        model.CommentKindStatusChange,
	}
	if err := s.comments.CreateComment(comment); err != nil {
		utils.Log.Warnf("failed to write status-change comment for task %s: %+v", taskID, err)
	}
	s.appendHistory(taskID, actor, fmt.Sprintf("status changed from %s to %s", from, to))
}

// appendHistory adds a ledger row; failure is logged and swallowed so the
// primary mutation never fails on audit bookkeeping.
func (s *Service) appendHistory(taskID string, actor uint, change string) {
	err := s.history.AppendHistory(&model.HistoryEntry{
		TaskID:    taskID,
		ChangedBy: actor,
		Change:    change,
	})
	if err != nil {
		utils.Log.Warnf("failed to append history for task %s: %+v", taskID, err)
	}
}

func utoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
