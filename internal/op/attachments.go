package op

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/trackwell/trackwell/internal/model"
	"github.com/trackwell/trackwell/pkg/utils"
)

// RecordAttachment stores attachment metadata for a binary already placed in
// the object store. Upload failures on that external step are the uploader's
// problem; a record path failure here is surfaced.
func (s *Service) RecordAttachment(taskID, fileName, filePath string, fileSize int64, fileType string, uploaderID uint) (*model.Attachment, error) {
	if _, err := s.tasks.GetTaskByID(taskID); err != nil {
		return nil, err
	}
	a := &model.Attachment{
		ID:         uuid.NewString(),
		TaskID:     taskID,
		FileName:   fileName,
		FilePath:   filePath,
		FileSize:   fileSize,
		FileType:   fileType,
		UploadedBy: uploaderID,
	}
	if err := s.attachments.CreateAttachment(a); err != nil {
		return nil, err
	}
	if err := s.enrichAttachments([]*model.Attachment{a}); err != nil {
		return nil, err
	}
	return a, nil
}

// UploadAttachment streams the payload to the object store and then records
// the metadata. The upload is fatal on failure; if the metadata insert fails
// afterwards the fresh object is removed best-effort.
func (s *Service) UploadAttachment(ctx context.Context, taskID, fileName string, fileSize int64, contentType string, body io.Reader, uploaderID uint) (*model.Attachment, error) {
	if _, err := s.tasks.GetTaskByID(taskID); err != nil {
		return nil, err
	}
	key := fmt.Sprintf("attachments/%s/%s/%s", taskID, uuid.NewString(), fileName)
	if err := s.objects.Put(ctx, key, body, contentType); err != nil {
		return nil, err
	}
	a, err := s.RecordAttachment(taskID, fileName, key, fileSize, contentType, uploaderID)
	if err != nil {
		if rmErr := s.objects.Remove(ctx, key); rmErr != nil {
			utils.Log.Warnf("failed to remove orphaned object %s: %+v", key, rmErr)
		}
		return nil, err
	}
	return a, nil
}

// GetAttachments lists a task's attachments with uploader profiles attached.
func (s *Service) GetAttachments(taskID string) ([]*model.Attachment, error) {
	attachments, err := s.attachments.ListAttachmentsByTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := s.enrichAttachments(attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// DeleteAttachment removes the underlying object best-effort and then the
// metadata row. Object-store unavailability must never block metadata
// cleanup, so that failure is logged and swallowed. The reverse leak (object
// gone, row delete failed) surfaces as an error and leaves a benign dangling
// row.
func (s *Service) DeleteAttachment(ctx context.Context, id string) error {
	a, err := s.attachments.GetAttachmentByID(id)
	if err != nil {
		return err
	}
	if err := s.objects.Remove(ctx, a.FilePath); err != nil {
		utils.Log.Warnf("failed to remove object %s for attachment %s: %+v", a.FilePath, id, err)
	}
	return s.attachments.DeleteAttachment(id)
}

// AttachmentURL returns the address of the attachment's object.
func (s *Service) AttachmentURL(a *model.Attachment) string {
	return s.objects.URL(a.FilePath)
}
