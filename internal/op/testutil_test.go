package op

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trackwell/trackwell/internal/errs"
	"github.com/trackwell/trackwell/internal/model"
	"github.com/trackwell/trackwell/pkg/utils"
)

// memStore is an in-memory stand-in for the relational store and the profile
// resolver. Reads hand out copies, like rows coming off the wire.
type memStore struct {
	tasks       map[string]*model.Task
	comments    []*model.Comment
	attachments map[string]*model.Attachment
	history     []*model.HistoryEntry
	profiles    map[uint]*model.UserProfile

	failComments bool
	failHistory  bool

	profileCalls int
	clock        time.Time
}

func newMemStore() *memStore {
	return &memStore{
		tasks:       make(map[string]*model.Task),
		attachments: make(map[string]*model.Attachment),
		profiles:    make(map[uint]*model.UserProfile),
		clock:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func copyTask(t *model.Task) *model.Task {
	c := *t
	c.Subtasks = nil
	c.Assignee = nil
	c.Creator = nil
	return &c
}

func (m *memStore) CreateTask(t *model.Task) error {
	now := m.tick()
	t.CreatedAt = now
	t.UpdatedAt = now
	m.tasks[t.ID] = copyTask(t)
	return nil
}

func (m *memStore) GetTaskByID(id string) (*model.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, errors.WithStack(errs.ErrTaskNotFound)
	}
	return copyTask(t), nil
}

func matchTask(t *model.Task, f model.TaskFilter) bool {
	if len(f.Statuses) > 0 && !utils.SliceContains(f.Statuses, t.Status) {
		return false
	}
	if len(f.Priorities) > 0 && !utils.SliceContains(f.Priorities, t.Priority) {
		return false
	}
	if len(f.AssignedTo) > 0 && (t.AssignedTo == nil || !utils.SliceContains(f.AssignedTo, *t.AssignedTo)) {
		return false
	}
	if len(f.CreatedBy) > 0 && !utils.SliceContains(f.CreatedBy, t.CreatedBy) {
		return false
	}
	switch f.Scope {
	case model.ScopeTopLevel:
		if t.ParentTaskID != nil {
			return false
		}
	case model.ScopeParent:
		if t.ParentTaskID == nil || *t.ParentTaskID != f.ParentID {
			return false
		}
	}
	if f.ProjectID != nil && (t.ProjectID == nil || *t.ProjectID != *f.ProjectID) {
		return false
	}
	if f.Search != "" &&
		!strings.Contains(t.Title, f.Search) &&
		!strings.Contains(t.Description, f.Search) {
		return false
	}
	return true
}

func (m *memStore) ListTasks(f model.TaskFilter) ([]*model.Task, error) {
	out := []*model.Task{}
	for _, t := range m.tasks {
		if matchTask(t, f) {
			out = append(out, copyTask(t))
		}
	}
	return out, nil
}

func (m *memStore) ListSubtasks(parentID string) ([]*model.Task, error) {
	return m.ListTasks(model.TaskFilter{Scope: model.ScopeParent, ParentID: parentID})
}

func (m *memStore) ListRecentTasks(limit int) ([]*model.Task, error) {
	all, _ := m.ListTasks(model.TaskFilter{})
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[j].UpdatedAt.After(all[i].UpdatedAt) {
				all[i], all[j] = all[j], all[i]
			}
		}
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memStore) UpdateTaskFields(id string, fields map[string]any) error {
	t, ok := m.tasks[id]
	if !ok {
		return errors.WithStack(errs.ErrTaskNotFound)
	}
	for k, v := range fields {
		switch k {
		case "title":
			t.Title = v.(string)
		case "description":
			t.Description = v.(string)
		case "status":
			t.Status = v.(model.TaskStatus)
		case "priority":
			t.Priority = v.(model.TaskPriority)
		case "assigned_to":
			if v == nil {
				t.AssignedTo = nil
			} else {
				id := v.(uint)
				t.AssignedTo = &id
			}
		case "project_id":
			p := v.(string)
			t.ProjectID = &p
		case "doc_links":
			t.DocLinks = v.(model.StringList)
		case "related_files":
			t.RelatedFiles = v.(model.StringList)
		case "metadata":
			t.Metadata = v.(model.Metadata)
		}
	}
	t.UpdatedAt = m.tick()
	return nil
}

func (m *memStore) DeleteTask(id string) error {
	delete(m.tasks, id)
	return nil
}

func (m *memStore) CreateComment(c *model.Comment) error {
	if m.failComments {
		return errors.New("comment store down")
	}
	c.CreatedAt = m.tick()
	cc := *c
	m.comments = append(m.comments, &cc)
	return nil
}

func (m *memStore) GetCommentByID(id string) (*model.Comment, error) {
	for _, c := range m.comments {
		if c.ID == id {
			cc := *c
			return &cc, nil
		}
	}
	return nil, errors.WithStack(errs.ErrCommentNotFound)
}

func (m *memStore) ListCommentsByTask(taskID string) ([]*model.Comment, error) {
	out := []*model.Comment{}
	for _, c := range m.comments {
		if c.TaskID == taskID {
			cc := *c
			out = append(out, &cc)
		}
	}
	return out, nil
}

func (m *memStore) UpdateCommentText(id, text string) error {
	for _, c := range m.comments {
		if c.ID == id {
			c.CommentText = text
			return nil
		}
	}
	return errors.WithStack(errs.ErrCommentNotFound)
}

func (m *memStore) DeleteComment(id string) error {
	for i, c := range m.comments {
		if c.ID == id {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memStore) CreateAttachment(a *model.Attachment) error {
	a.CreatedAt = m.tick()
	aa := *a
	m.attachments[a.ID] = &aa
	return nil
}

func (m *memStore) GetAttachmentByID(id string) (*model.Attachment, error) {
	a, ok := m.attachments[id]
	if !ok {
		return nil, errors.WithStack(errs.ErrAttachmentNotFound)
	}
	aa := *a
	return &aa, nil
}

func (m *memStore) ListAttachmentsByTask(taskID string) ([]*model.Attachment, error) {
	out := []*model.Attachment{}
	for _, a := range m.attachments {
		if a.TaskID == taskID {
			aa := *a
			out = append(out, &aa)
		}
	}
	return out, nil
}

func (m *memStore) DeleteAttachment(id string) error {
	delete(m.attachments, id)
	return nil
}

func (m *memStore) AppendHistory(h *model.HistoryEntry) error {
	if m.failHistory {
		return errors.New("history store down")
	}
	h.ID = uint(len(m.history) + 1)
	h.CreatedAt = m.tick()
	hh := *h
	m.history = append(m.history, &hh)
	return nil
}

func (m *memStore) ListHistoryByTask(taskID string) ([]*model.HistoryEntry, error) {
	out := []*model.HistoryEntry{}
	for i := len(m.history) - 1; i >= 0; i-- {
		if m.history[i].TaskID == taskID {
			hh := *m.history[i]
			out = append(out, &hh)
		}
	}
	return out, nil
}

func (m *memStore) ResolveProfiles(ids []uint) (map[uint]*model.UserProfile, error) {
	m.profileCalls++
	out := make(map[uint]*model.UserProfile, len(ids))
	for _, id := range ids {
		if p, ok := m.profiles[id]; ok {
			pp := *p
			out[id] = &pp
		}
	}
	return out, nil
}

// fakeObjects is an in-memory object store with failure injection.
type fakeObjects struct {
	objects    map[string]bool
	failPut    bool
	failRemove bool
	removed    []string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: make(map[string]bool)}
}

func (f *fakeObjects) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if f.failPut {
		return errors.New("object store unavailable")
	}
	f.objects[key] = true
	return nil
}

func (f *fakeObjects) Remove(ctx context.Context, keys ...string) error {
	if f.failRemove {
		return errors.New("object store unavailable")
	}
	for _, k := range keys {
		delete(f.objects, k)
		f.removed = append(f.removed, k)
	}
	return nil
}

func (f *fakeObjects) URL(key string) string {
	return "https://objects.test/" + key
}

func newTestService() (*Service, *memStore, *fakeObjects) {
	store := newMemStore()
	objects := newFakeObjects()
	store.profiles[1] = &model.UserProfile{ID: 1, Username: "ada", FullName: "Ada Lovelace", Email: "ada@example.com"}
	store.profiles[2] = &model.UserProfile{ID: 2, Username: "grace", FullName: "Grace Hopper", Email: "grace@example.com"}
	return NewService(store, store, store, store, store, objects), store, objects
}
