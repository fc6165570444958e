package engine_test

import (
	"testing"

	"lexboard/internal/domain"
)

func TestDeriveTasksForPendingActions(t *testing.T) {
	env := newTestEnv(t)
	_, p, unassigned := env.seedHearing(t)
	completed := env.Store.CreateHearing(domain.Hearing{
		ProcessNumber:  "0002",
		JurisdictionID: 1,
		Area:           "Civil",
	})
	if _, err := env.Engine.AssignProfessional(completed.ID, p.ID, false); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := env.Engine.SetHearingStatus(completed.ID, domain.HearingCompleted, false); err != nil {
		t.Fatalf("complete: %v", err)
	}

	created := env.Engine.DeriveTasks()
	byType := map[string]domain.Task{}
	for _, task := range created {
		byType[task.Type] = task
	}
	assign, ok := byType[domain.TaskAssignProfessional]
	if !ok || assign.RelatedID == nil || *assign.RelatedID != unassigned.ID {
		t.Fatalf("missing assign_professional task for hearing %d: %+v", unassigned.ID, created)
	}
	minutes, ok := byType[domain.TaskUploadMinutes]
	if !ok || *minutes.RelatedID != completed.ID {
		t.Fatalf("missing upload_minutes task: %+v", created)
	}
	payment, ok := byType[domain.TaskPayment]
	if !ok || *payment.RelatedID != completed.ID {
		t.Fatalf("missing payment task: %+v", created)
	}
	if len(created) != 3 {
		t.Fatalf("expected 3 derived tasks, got %d", len(created))
	}
	if minutes.DueDate != "2024-03-18" {
		t.Fatalf("due date from config: got %q", minutes.DueDate)
	}
	if minutes.Title != "Upload hearing minutes" {
		t.Fatalf("title from config: got %q", minutes.Title)
	}
}

func TestDeriveTasksIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.seedHearing(t)
	first := env.Engine.DeriveTasks()
	if len(first) != 1 {
		t.Fatalf("expected 1 task on first sweep, got %d", len(first))
	}
	second := env.Engine.DeriveTasks()
	if len(second) != 0 {
		t.Fatalf("second sweep must not duplicate, got %d", len(second))
	}
}

func TestDeriveAgainAfterActionObserved(t *testing.T) {
	env := newTestEnv(t)
	_, p, h := env.seedHearing(t)
	env.Engine.DeriveTasks()
	if _, err := env.Engine.AssignProfessional(h.ID, p.ID, false); err != nil {
		t.Fatalf("assign: %v", err)
	}
	// the assign_professional task is now completed and the hearing is
	// assigned, so the sweep has nothing to add
	if created := env.Engine.DeriveTasks(); len(created) != 0 {
		t.Fatalf("expected no new tasks, got %d", len(created))
	}
	pending := env.Store.TasksWhere(func(task domain.Task) bool { return task.Status == domain.TaskPending })
	if len(pending) != 0 {
		t.Fatalf("assign task should be auto-completed, %d still pending", len(pending))
	}
}
