package op

import (
	"github.com/google/uuid"

	"github.com/trackwell/trackwell/internal/model"
)

// AddComment inserts a human comment and returns it with the author's
// profile attached. The single-row lookup routes through ProfileResolver
// like every other enrichment, whatever the implementation does underneath.
func (s *Service) AddComment(taskID, text string, userID uint, isSystemLog bool) (*model.Comment, error) {
	if _, err := s.tasks.GetTaskByID(taskID); err != nil {
		return nil, err
	}
	c := &model.Comment{
		ID:          uuid.NewString(),
		TaskID:      taskID,
		UserID:      userID,
		CommentText: text,
		IsSystemLog: isSystemLog,
	}
	if err := s.comments.CreateComment(c); err != nil {
		return nil, err
	}
	if err := s.enrichComments([]*model.Comment{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// GetComments returns the task's thread oldest-first with author profiles.
func (s *Service) GetComments(taskID string) ([]*model.Comment, error) {
	comments, err := s.comments.ListCommentsByTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := s.enrichComments(comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateComment edits the text in place by primary key. Authorization is the
// caller's concern.
func (s *Service) UpdateComment(id, text string) (*model.Comment, error) {
	if err := s.comments.UpdateCommentText(id, text); err != nil {
		return nil, err
	}
	c, err := s.comments.GetCommentByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.enrichComments([]*model.Comment{c}); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteComment(id string) error {
	if _, err := s.comments.GetCommentByID(id); err != nil {
		return err
	}
	return s.comments.DeleteComment(id)
}
