package engine

import (
	"fmt"

	"lexboard/internal/domain"
)

// completeFirstPendingTask closes the first pending task (by ascending id)
// matching type and relatedId. At most one task is completed; multiple
// matches for the same hearing are a data anomaly the engine does not
// defend against.
func (e Engine) completeFirstPendingTask(taskType string, relatedID int) (domain.Task, bool) {
	matches := e.Store.TasksWhere(func(t domain.Task) bool {
		return t.Type == taskType && t.Status == domain.TaskPending &&
			t.RelatedID != nil && *t.RelatedID == relatedID
	})
	if len(matches) == 0 {
		return domain.Task{}, false
	}
	completed := domain.TaskCompleted
	return e.Store.UpdateTask(matches[0].ID, domain.TaskUpdate{Status: &completed})
}

// DeriveTasks scans hearings for pending administrative actions and
// creates the missing reminder tasks: assign_professional for unassigned
// pending hearings, upload_minutes for completed hearings without minutes,
// and payment for completed hearings still awaiting payment. An existing
// pending task of the same type and relatedId suppresses a new one.
// Returns the tasks created by this sweep.
func (e Engine) DeriveTasks() []domain.Task {
	created := []domain.Task{}
	for _, h := range e.Store.ListHearings() {
		switch {
		case h.Status == domain.HearingPending && h.ProfessionalID == nil:
			if t, ok := e.deriveTask(domain.TaskAssignProfessional, h); ok {
				created = append(created, t)
			}
		case h.Status == domain.HearingCompleted:
			if !h.MinutesUploaded {
				if t, ok := e.deriveTask(domain.TaskUploadMinutes, h); ok {
					created = append(created, t)
				}
			}
			if h.PaymentStatus == domain.PaymentPending {
				if t, ok := e.deriveTask(domain.TaskPayment, h); ok {
					created = append(created, t)
				}
			}
		}
	}
	return created
}

func (e Engine) deriveTask(taskType string, h domain.Hearing) (domain.Task, bool) {
	pending := e.Store.TasksWhere(func(t domain.Task) bool {
		return t.Type == taskType && t.Status == domain.TaskPending &&
			t.RelatedID != nil && *t.RelatedID == h.ID
	})
	if len(pending) > 0 {
		return domain.Task{}, false
	}
	title := taskType
	dueDate := ""
	if e.Config != nil {
		title = e.Config.TaskTitle(taskType)
		if days := e.Config.TaskDueDays(taskType); days > 0 {
			dueDate = e.now().AddDate(0, 0, days).Format("2006-01-02")
		}
	}
	relatedID := h.ID
	t := e.Store.CreateTask(domain.Task{
		Title:       title,
		Description: fmt.Sprintf("Case %s, hearing #%d", h.ProcessNumber, h.ID),
		Type:        taskType,
		RelatedID:   &relatedID,
		DueDate:     dueDate,
	})
	return t, true
}
