package model

import "time"

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not-started"
	StatusInProgress TaskStatus = "in-progress"
	StatusInReview   TaskStatus = "in-review"
	StatusCompleted  TaskStatus = "completed"
	StatusBlocked    TaskStatus = "blocked"
)

// Statuses lists every status in reporting order.
var Statuses = []TaskStatus{StatusNotStarted, StatusInProgress, StatusInReview, StatusCompleted, StatusBlocked}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusInReview, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

var Priorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is a unit of tracked work, optionally nested one level under a parent.
type Task struct {
	ID           string       `gorm:"column:id;primaryKey;size:64" json:"id"`
	Title        string       `gorm:"column:title;size:1024" json:"title"`
	Description  string       `gorm:"column:description;type:text" json:"description"`
	Status       TaskStatus   `gorm:"column:status;size:32;index:idx_task_status" json:"status"`
	Priority     TaskPriority `gorm:"column:priority;size:32;index:idx_task_priority" json:"priority"`
	AssignedTo   *uint        `gorm:"column:assigned_to;index:idx_task_assigned_to" json:"assigned_to"`
	CreatedBy    uint         `gorm:"column:created_by;index:idx_task_created_by" json:"created_by"`
	ParentTaskID *string      `gorm:"column:parent_task_id;size:64;index:idx_task_parent" json:"parent_task_id"`
	ProjectID    *string      `gorm:"column:project_id;size:64;index:idx_task_project" json:"project_id"`
	DocLinks     StringList   `gorm:"column:doc_links;type:text" json:"doc_links"`
	RelatedFiles StringList   `gorm:"column:related_files;type:text" json:"related_files"`
	Metadata     Metadata     `gorm:"column:metadata;type:text" json:"metadata"`
	CreatedAt    time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Enrichment fields, never persisted.
	Subtasks []*Task      `gorm:"-" json:"subtasks"`
	Assignee *UserProfile `gorm:"-" json:"assignee,omitempty"`
	Creator  *UserProfile `gorm:"-" json:"creator,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}

// ParentScope selects which hierarchy slice a listing covers.
type ParentScope int

const (
	ScopeAll ParentScope = iota
	ScopeTopLevel
	ScopeParent
)

// TaskFilter narrows ListTasks. Empty sets and nil pointers mean "any".
type TaskFilter struct {
	Statuses   []TaskStatus
	Priorities []TaskPriority
	AssignedTo []uint
	CreatedBy  []uint
	Scope      ParentScope
	ParentID   string // used when Scope == ScopeParent
	ProjectID  *string
	Search     string // substring match over title and description
}

// TaskStats aggregates open work over top-level tasks only.
type TaskStats struct {
	Total      int64                  `json:"total"`
	ByStatus   map[TaskStatus]int64   `json:"by_status"`
	ByPriority map[TaskPriority]int64 `json:"by_priority"`
}

// TaskUpdate carries the mutable fields of UpdateTask; nil means "unchanged".
type TaskUpdate struct {
	Title         *string       `json:"title"`
	Description   *string       `json:"description"`
	Status        *TaskStatus   `json:"status"`
	Priority      *TaskPriority `json:"priority"`
	AssignedTo    *uint         `json:"assigned_to"`
	ClearAssignee bool          `json:"clear_assignee"`
	ProjectID     *string       `json:"project_id"`
	DocLinks      *StringList   `json:"doc_links"`
	RelatedFiles  *StringList   `json:"related_files"`
	Metadata      *Metadata     `json:"metadata"`
}
