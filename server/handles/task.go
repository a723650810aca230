package handles

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trackwell/trackwell/internal/model"
	"github.com/trackwell/trackwell/internal/op"
	"github.com/trackwell/trackwell/server/common"
)

type TaskHandler struct {
	svc *op.Service
}

func NewTaskHandler(svc *op.Service) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// getActor reads the acting user resolved by the surrounding product's auth
// layer. Authorization itself is not this subsystem's concern.
func getActor(c *gin.Context) (uint, bool) {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func splitQuery(c *gin.Context, key string) []string {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseUintSet(c *gin.Context, key string) []uint {
	var out []uint
	for _, p := range splitQuery(c, key) {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, uint(v))
	}
	return out
}

func parseTaskFilter(c *gin.Context) model.TaskFilter {
	filter := model.TaskFilter{
		AssignedTo: parseUintSet(c, "assigned_to"),
		CreatedBy:  parseUintSet(c, "created_by"),
		Search:     c.Query("search"),
	}
	for _, s := range splitQuery(c, "status") {
		filter.Statuses = append(filter.Statuses, model.TaskStatus(s))
	}
	for _, p := range splitQuery(c, "priority") {
		filter.Priorities = append(filter.Priorities, model.TaskPriority(p))
	}
	switch parent := c.Query("parent"); parent {
	case "", "all":
		filter.Scope = model.ScopeAll
	case "top":
		filter.Scope = model.ScopeTopLevel
	default:
		filter.Scope = model.ScopeParent
		filter.ParentID = parent
	}
	if project := c.Query("project"); project != "" {
		filter.ProjectID = &project
	}
	return filter
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.svc.ListTasks(parseTaskFilter(c))
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, common.PageResp{
		Content: tasks,
		Total:   int64(len(tasks)),
	})
}

func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.svc.GetTask(c.Param("id"))
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, t)
}

type createTaskReq struct {
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description"`
	Status       model.TaskStatus   `json:"status"`
	Priority     model.TaskPriority `json:"priority"`
	AssignedTo   *uint              `json:"assigned_to"`
	ParentTaskID *string            `json:"parent_task_id"`
	ProjectID    *string            `json:"project_id"`
	DocLinks     model.StringList   `json:"doc_links"`
	RelatedFiles model.StringList   `json:"related_files"`
	Metadata     model.Metadata     `json:"metadata"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		common.ErrorStrResp(c, "user invalid", 401)
		return
	}
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	t, err := h.svc.CreateTask(&model.Task{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		AssignedTo:   req.AssignedTo,
		CreatedBy:    actor,
		ParentTaskID: req.ParentTaskID,
		ProjectID:    req.ProjectID,
		DocLinks:     req.DocLinks,
		RelatedFiles: req.RelatedFiles,
		Metadata:     req.Metadata,
	})
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, t)
}

func (h *TaskHandler) Update(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		common.ErrorStrResp(c, "user invalid", 401)
		return
	}
	var upd model.TaskUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	t, err := h.svc.UpdateTask(c.Param("id"), upd, actor)
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, t)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteTask(c.Param("id")); err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c)
}

type changeStatusReq struct {
	Status model.TaskStatus `json:"status" binding:"required"`
}

func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		common.ErrorStrResp(c, "user invalid", 401)
		return
	}
	var req changeStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	t, err := h.svc.ChangeStatus(c.Param("id"), req.Status, actor)
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, t)
}

type changePriorityReq struct {
	Priority model.TaskPriority `json:"priority" binding:"required"`
}

func (h *TaskHandler) ChangePriority(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		common.ErrorStrResp(c, "user invalid", 401)
		return
	}
	var req changePriorityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	t, err := h.svc.ChangePriority(c.Param("id"), req.Priority, actor)
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, t)
}

type assignTaskReq struct {
	AssignedTo *uint `json:"assigned_to"`
}

func (h *TaskHandler) Assign(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		common.ErrorStrResp(c, "user invalid", 401)
		return
	}
	var req assignTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	t, err := h.svc.AssignTask(c.Param("id"), req.AssignedTo, actor)
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, t)
}

func (h *TaskHandler) Stats(c *gin.Context) {
	stats, err := h.svc.GetStats()
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, stats)
}

func (h *TaskHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	tasks, err := h.svc.GetRecentTasks(limit)
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, common.PageResp{
		Content: tasks,
		Total:   int64(len(tasks)),
	})
}

func (h *TaskHandler) AssignedTo(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userID"), 10, 64)
	if err != nil {
		common.ErrorStrResp(c, "invalid user id", 400)
		return
	}
	tasks, err := h.svc.GetTasksAssignedTo(uint(userID))
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, common.PageResp{
		Content: tasks,
		Total:   int64(len(tasks)),
	})
}

func (h *TaskHandler) History(c *gin.Context) {
	entries, err := h.svc.GetHistory(c.Param("id"))
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, entries)
}
