package handles

import (
	"github.com/gin-gonic/gin"

	"github.com/trackwell/trackwell/internal/op"
	"github.com/trackwell/trackwell/server/common"
)

type CommentHandler struct {
	svc *op.Service
}

func NewCommentHandler(svc *op.Service) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type addCommentReq struct {
	CommentText string `json:"comment_text" binding:"required"`
}

func (h *CommentHandler) Add(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		common.ErrorStrResp(c, "user invalid", 401)
		return
	}
	var req addCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	comment, err := h.svc.AddComment(c.Param("id"), req.CommentText, actor, false)
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, comment)
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.svc.GetComments(c.Param("id"))
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, comments)
}

type updateCommentReq struct {
	CommentText string `json:"comment_text" binding:"required"`
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req updateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	comment, err := h.svc.UpdateComment(c.Param("id"), req.CommentText)
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteComment(c.Param("id")); err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c)
}
