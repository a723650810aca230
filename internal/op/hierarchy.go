package op

import (
	"github.com/trackwell/trackwell/internal/model"
)

// AssembleHierarchy partitions tasks into top-level tasks and subtasks and
// attaches each subtask under its parent. Subtasks whose parent is not in the
// input set are discarded; listings that must see them query with an explicit
// parent scope instead.
func AssembleHierarchy(tasks []*model.Task) []*model.Task {
	topLevel := make([]*model.Task, 0, len(tasks))
	byParent := make(map[string][]*model.Task)
	for _, t := range tasks {
		if t.ParentTaskID == nil {
			topLevel = append(topLevel, t)
		} else {
			byParent[*t.ParentTaskID] = append(byParent[*t.ParentTaskID], t)
		}
	}
	for _, t := range topLevel {
		subtasks := byParent[t.ID]
		if subtasks == nil {
			subtasks = []*model.Task{}
		}
		t.Subtasks = subtasks
	}
	return topLevel
}

// ComputeStats counts statuses and priorities over top-level tasks in one
// pass. Subtasks are excluded on purpose: reporting follows the epic, not its
// pieces. Every status and priority appears in the maps, zero included.
func ComputeStats(topLevel []*model.Task) model.TaskStats {
	stats := model.TaskStats{
		ByStatus:   make(map[model.TaskStatus]int64, len(model.Statuses)),
		ByPriority: make(map[model.TaskPriority]int64, len(model.Priorities)),
	}
	for _, s := range model.Statuses {
		stats.ByStatus[s] = 0
	}
	for _, p := range model.Priorities {
		stats.ByPriority[p] = 0
	}
	for _, t := range topLevel {
		stats.Total++
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++
	}
	return stats
}
