package handles

import (
	"github.com/gin-gonic/gin"

	"github.com/trackwell/trackwell/internal/model"
	"github.com/trackwell/trackwell/internal/op"
	"github.com/trackwell/trackwell/pkg/utils"
	"github.com/trackwell/trackwell/server/common"
)

type AttachmentHandler struct {
	svc *op.Service
}

func NewAttachmentHandler(svc *op.Service) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

type recordAttachmentReq struct {
	FileName string `json:"file_name" binding:"required"`
	FilePath string `json:"file_path" binding:"required"`
	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type"`
}

// Record registers metadata for a binary already placed in the object store
// by an external upload step.
func (h *AttachmentHandler) Record(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		common.ErrorStrResp(c, "user invalid", 401)
		return
	}
	var req recordAttachmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	a, err := h.svc.RecordAttachment(c.Param("id"), req.FileName, req.FilePath, req.FileSize, req.FileType, actor)
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, a)
}

// Upload streams a multipart file into the object store and records it.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		common.ErrorStrResp(c, "user invalid", 401)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	f, err := fh.Open()
	if err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	defer f.Close()
	contentType := fh.Header.Get("Content-Type")
	a, err := h.svc.UploadAttachment(c.Request.Context(), c.Param("id"), fh.Filename, fh.Size, contentType, f, actor)
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, a)
}

type attachmentResp struct {
	*model.Attachment
	URL string `json:"url"`
}

func (h *AttachmentHandler) List(c *gin.Context) {
	attachments, err := h.svc.GetAttachments(c.Param("id"))
	if err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c, utils.MustSliceConvert(attachments, func(a *model.Attachment) attachmentResp {
		return attachmentResp{Attachment: a, URL: h.svc.AttachmentURL(a)}
	}))
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteAttachment(c.Request.Context(), c.Param("id")); err != nil {
		common.ErrorWithTaxonomy(c, err)
		return
	}
	common.SuccessResp(c)
}
