package op

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/trackwell/trackwell/internal/model"
)

// enrichTasks attaches assignee/creator profiles to tasks and their subtasks
// with a single batched profile lookup over the distinct user ids.
func (s *Service) enrichTasks(tasks []*model.Task) error {
	ids := mapset.NewThreadUnsafeSet[uint]()
	collect := func(t *model.Task) {
		ids.Add(t.CreatedBy)
		if t.AssignedTo != nil {
			ids.Add(*t.AssignedTo)
		}
	}
	for _, t := range tasks {
		collect(t)
		for _, sub := range t.Subtasks {
			collect(sub)
		}
	}
	if ids.Cardinality() == 0 {
		return nil
	}
	profiles, err := s.profiles.ResolveProfiles(ids.ToSlice())
	if err != nil {
		return err
	}
	attach := func(t *model.Task) {
		t.Creator = profiles[t.CreatedBy]
		if t.AssignedTo != nil {
			t.Assignee = profiles[*t.AssignedTo]
		}
	}
	for _, t := range tasks {
		attach(t)
		for _, sub := range t.Subtasks {
			attach(sub)
		}
	}
	return nil
}

func (s *Service) enrichComments(comments []*model.Comment) error {
	ids := mapset.NewThreadUnsafeSet[uint]()
	for _, c := range comments {
		ids.Add(c.UserID)
	}
	if ids.Cardinality() == 0 {
		return nil
	}
	profiles, err := s.profiles.ResolveProfiles(ids.ToSlice())
	if err != nil {
		return err
	}
	for _, c := range comments {
		c.User = profiles[c.UserID]
	}
	return nil
}

func (s *Service) enrichAttachments(attachments []*model.Attachment) error {
	ids := mapset.NewThreadUnsafeSet[uint]()
	for _, a := range attachments {
		ids.Add(a.UploadedBy)
	}
	if ids.Cardinality() == 0 {
		return nil
	}
	profiles, err := s.profiles.ResolveProfiles(ids.ToSlice())
	if err != nil {
		return err
	}
	for _, a := range attachments {
		a.Uploader = profiles[a.UploadedBy]
	}
	return nil
}

func (s *Service) enrichHistory(entries []*model.HistoryEntry) error {
	ids := mapset.NewThreadUnsafeSet[uint]()
	for _, e := range entries {
		ids.Add(e.ChangedBy)
	}
	if ids.Cardinality() == 0 {
		return nil
	}
	profiles, err := s.profiles.ResolveProfiles(ids.ToSlice())
	if err != nil {
		return err
	}
	for _, e := range entries {
		e.Actor = profiles[e.ChangedBy]
	}
	return nil
}
