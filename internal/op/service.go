// Package op implements the task-tracking core: query and mutation layers,
// the status workflow, hierarchy assembly and the comment/attachment
// lifecycles. Stores are injected so the core runs against fakes in tests.
package op

import (
	"context"
	"io"

	"github.com/trackwell/trackwell/internal/model"
)

type TaskStore interface {
	CreateTask(t *model.Task) error
	GetTaskByID(id string) (*model.Task, error)
	ListTasks(filter model.TaskFilter) ([]*model.Task, error)
	ListSubtasks(parentID string) ([]*model.Task, error)
	ListRecentTasks(limit int) ([]*model.Task, error)
	UpdateTaskFields(id string, fields map[string]any) error
	DeleteTask(id string) error
}

type CommentStore interface {
	CreateComment(c *model.Comment) error
	GetCommentByID(id string) (*model.Comment, error)
	ListCommentsByTask(taskID string) ([]*model.Comment, error)
	UpdateCommentText(id, text string) error
	DeleteComment(id string) error
}

type AttachmentStore interface {
	CreateAttachment(a *model.Attachment) error
	GetAttachmentByID(id string) (*model.Attachment, error)
	ListAttachmentsByTask(taskID string) ([]*model.Attachment, error)
	DeleteAttachment(id string) error
}

type HistoryStore interface {
	AppendHistory(h *model.HistoryEntry) error
	ListHistoryByTask(taskID string) ([]*model.HistoryEntry, error)
}

// ProfileResolver batch-fetches display profiles. One call per result set,
// never one per row.
type ProfileResolver interface {
	ResolveProfiles(ids []uint) (map[uint]*model.UserProfile, error)
}

type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	Remove(ctx context.Context, keys ...string) error
	URL(key string) string
}

type Service struct {
	tasks       TaskStore
	comments    CommentStore
	attachments AttachmentStore
	history     HistoryStore
	profiles    ProfileResolver
	objects     ObjectStore
}

func NewService(tasks TaskStore, comments CommentStore, attachments AttachmentStore,
	history HistoryStore, profiles ProfileResolver, objects ObjectStore) *Service {
	return &Service{
		tasks:       tasks,
		comments:    comments,
		attachments: attachments,
		history:     history,
		profiles:    profiles,
		objects:     objects,
	}
}
