package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trackwell/trackwell/internal/errs"
	"github.com/trackwell/trackwell/internal/model"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	d := New(gdb)
	require.NoError(t, d.AutoMigrate())
	return d
}

func seedTask(t *testing.T, d *Database, mutate func(*model.Task)) *model.Task {
	t.Helper()
	task := &model.Task{
		ID:       uuid.NewString(),
		Title:    "task",
		Status:   model.StatusNotStarted,
		Priority: model.PriorityMedium,
	}
	if mutate != nil {
		mutate(task)
	}
	require.NoError(t, d.CreateTask(task))
	return task
}

func TestTaskCRUD(t *testing.T) {
	d := newTestDB(t)
	task := seedTask(t, d, func(tk *model.Task) {
		tk.Title = "write the report"
		tk.DocLinks = model.StringList{"https://docs.example.com/spec"}
		tk.Metadata = model.Metadata{"team": "infra"}
	})

	got, err := d.GetTaskByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "write the report", got.Title)
	assert.Equal(t, model.StringList{"https://docs.example.com/spec"}, got.DocLinks)
	assert.Equal(t, model.Metadata{"team": "infra"}, got.Metadata)

	require.NoError(t, d.UpdateTaskFields(task.ID, map[string]any{"status": model.StatusBlocked}))
	got, err = d.GetTaskByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusBlocked, got.Status)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

	require.NoError(t, d.DeleteTask(task.ID))
	_, err = d.GetTaskByID(task.ID)
	assert.ErrorIs(t, err, errs.ErrTaskNotFound)
}

func TestDeleteTaskCascades(t *testing.T) {
	d := newTestDB(t)
	parent := seedTask(t, d, nil)
	child := seedTask(t, d, func(tk *model.Task) {
		tk.ParentTaskID = &parent.ID
	})
	require.NoError(t, d.CreateComment(&model.Comment{
		ID: uuid.NewString(), TaskID: child.ID, UserID: 1, CommentText: "on the child",
	}))
	require.NoError(t, d.AppendHistory(&model.HistoryEntry{
		TaskID: parent.ID, ChangedBy: 1, Change: "created",
	}))

	require.NoError(t, d.DeleteTask(parent.ID))

	_, err := d.GetTaskByID(child.ID)
	assert.ErrorIs(t, err, errs.ErrTaskNotFound)
	comments, err := d.ListCommentsByTask(child.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
	history, err := d.ListHistoryByTask(parent.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetTaskByIDNotFound(t *testing.T) {
	d := newTestDB(t)
	_, err := d.GetTaskByID("missing")
	assert.ErrorIs(t, err, errs.ErrTaskNotFound)
}

func TestUpdateTaskFieldsNotFound(t *testing.T) {
	d := newTestDB(t)
	err := d.UpdateTaskFields("missing", map[string]any{"status": model.StatusBlocked})
	assert.ErrorIs(t, err, errs.ErrTaskNotFound)
}

func TestListTasksFilters(t *testing.T) {
	d := newTestDB(t)
	two := uint(2)
	project := "proj-1"
	parent := seedTask(t, d, func(tk *model.Task) {
		tk.Title = "migrate billing database"
		tk.Status = model.StatusInProgress
		tk.Priority = model.PriorityUrgent
		tk.AssignedTo = &two
		tk.CreatedBy = 1
		tk.ProjectID = &project
	})
	seedTask(t, d, func(tk *model.Task) {
		tk.Title = "child step"
		tk.ParentTaskID = &parent.ID
		tk.CreatedBy = 2
	})
	seedTask(t, d, func(tk *model.Task) {
		tk.Title = "polish docs"
		tk.Description = "billing runbook"
		tk.CreatedBy = 2
	})

	byStatus, err := d.ListTasks(model.TaskFilter{Statuses: []model.TaskStatus{model.StatusInProgress}})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, parent.ID, byStatus[0].ID)

	byPriority, err := d.ListTasks(model.TaskFilter{Priorities: []model.TaskPriority{model.PriorityUrgent, model.PriorityHigh}})
	require.NoError(t, err)
	assert.Len(t, byPriority, 1)

	byAssignee, err := d.ListTasks(model.TaskFilter{AssignedTo: []uint{2}})
	require.NoError(t, err)
	assert.Len(t, byAssignee, 1)

	byCreator, err := d.ListTasks(model.TaskFilter{CreatedBy: []uint{2}})
	require.NoError(t, err)
	assert.Len(t, byCreator, 2)

	topLevel, err := d.ListTasks(model.TaskFilter{Scope: model.ScopeTopLevel})
	require.NoError(t, err)
	assert.Len(t, topLevel, 2)

	children, err := d.ListTasks(model.TaskFilter{Scope: model.ScopeParent, ParentID: parent.ID})
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "child step", children[0].Title)

	byProject, err := d.ListTasks(model.TaskFilter{ProjectID: &project})
	require.NoError(t, err)
	assert.Len(t, byProject, 1)

	// search spans title and description
	bySearch, err := d.ListTasks(model.TaskFilter{Search: "billing"})
	require.NoError(t, err)
	assert.Len(t, bySearch, 2)
}

func TestListRecentTasks(t *testing.T) {
	d := newTestDB(t)
	for i := 0; i < 5; i++ {
		seedTask(t, d, nil)
	}
	recent, err := d.ListRecentTasks(3)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	d := newTestDB(t)
	task := seedTask(t, d, nil)

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		require.NoError(t, d.CreateComment(&model.Comment{
			ID:          uuid.NewString(),
			TaskID:      task.ID,
			UserID:      1,
			CommentText: text,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	comments, err := d.ListCommentsByTask(task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].CommentText)
	assert.Equal(t, "third", comments[2].CommentText)

	require.NoError(t, d.UpdateCommentText(comments[0].ID, "edited"))
	got, err := d.GetCommentByID(comments[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.CommentText)

	assert.ErrorIs(t, d.UpdateCommentText("missing", "x"), errs.ErrCommentNotFound)
}

func TestAttachmentCRUD(t *testing.T) {
	d := newTestDB(t)
	task := seedTask(t, d, nil)

	att := &model.Attachment{
		ID:         uuid.NewString(),
		TaskID:     task.ID,
		FileName:   "report.pdf",
		FilePath:   "attachments/x/report.pdf",
		FileSize:   2048,
		FileType:   "application/pdf",
		UploadedBy: 1,
	}
	require.NoError(t, d.CreateAttachment(att))

	list, err := d.ListAttachmentsByTask(task.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "attachments/x/report.pdf", list[0].FilePath)

	require.NoError(t, d.DeleteAttachment(att.ID))
	_, err = d.GetAttachmentByID(att.ID)
	assert.ErrorIs(t, err, errs.ErrAttachmentNotFound)
}

func TestHistoryNewestFirst(t *testing.T) {
	d := newTestDB(t)
	task := seedTask(t, d, nil)

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i, change := range []string{"created", "status changed from not-started to in-progress"} {
		require.NoError(t, d.AppendHistory(&model.HistoryEntry{
			TaskID:    task.ID,
			ChangedBy: 1,
			Change:    change,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := d.ListHistoryByTask(task.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "status changed from not-started to in-progress", entries[0].Change)
}

func TestResolveProfilesBatches(t *testing.T) {
	d := newTestDB(t)
	// ids are unique across the test binary so the shared cache cannot leak
	// entries between cases
	users := []*model.UserProfile{
		{ID: 9001, Username: "ada", FullName: "Ada Lovelace", Email: "ada@example.com"},
		{ID: 9002, Username: "grace", FullName: "Grace Hopper", Email: "grace@example.com"},
	}
	for _, u := range users {
		require.NoError(t, d.db.Create(u).Error)
	}

	profiles, err := d.ResolveProfiles([]uint{9001, 9002, 9999})
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "ada", profiles[9001].Username)
	assert.Equal(t, "grace", profiles[9002].Username)
	_, ok := profiles[9999]
	assert.False(t, ok, "unknown ids are absent, not an error")

	// second resolve is served from cache
	again, err := d.ResolveProfiles([]uint{9001, 9002})
	require.NoError(t, err)
	assert.Len(t, again, 2)
}
