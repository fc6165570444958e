package engine_test

import (
	"errors"
	"testing"
	"time"

	"lexboard/internal/config"
	"lexboard/internal/domain"
	"lexboard/internal/engine"
	"lexboard/internal/store"
)

type testEnv struct {
	Engine engine.Engine
	Store  *store.Store
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	st := store.New()
	now := func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	st.Now = now
	eng := engine.New(st, config.Default("Tribunal de Justiça"))
	eng.Now = now
	return testEnv{Engine: eng, Store: st}
}

func (env testEnv) seedHearing(t *testing.T) (domain.Jurisdiction, domain.Professional, domain.Hearing) {
	t.Helper()
	j := env.Store.CreateJurisdiction(domain.Jurisdiction{Name: "Foro Central", State: "SP", City: "São Paulo"})
	p := env.Store.CreateProfessional(domain.Professional{
		Name:           "Ana Souza",
		Email:          "ana@example.com",
		Type:           "lawyer",
		Specialization: "Civil",
		Jurisdictions:  []string{"SP"},
		Active:         true,
	})
	h := env.Store.CreateHearing(domain.Hearing{
		ProcessNumber:  "0001234-56.2024.8.26.0100",
		JurisdictionID: j.ID,
		Date:           "2024-03-20",
		Time:           "14:00",
		Type:           "Conciliation",
		Area:           "Civil",
	})
	return j, p, h
}

func TestEligibilityMatch(t *testing.T) {
	env := newTestEnv(t)
	_, p, h := env.seedHearing(t)
	// decoys: wrong area, wrong state, inactive
	env.Store.CreateProfessional(domain.Professional{Name: "Bruno", Type: "lawyer", Specialization: "Labor", Jurisdictions: []string{"SP"}, Active: true})
	env.Store.CreateProfessional(domain.Professional{Name: "Carla", Type: "lawyer", Specialization: "Civil", Jurisdictions: []string{"RJ"}, Active: true})
	env.Store.CreateProfessional(domain.Professional{Name: "Davi", Type: "court_official", Specialization: "Civil", Jurisdictions: []string{"SP"}, Active: false})

	got, err := env.Engine.EligibleProfessionals(h.ID)
	if err != nil {
		t.Fatalf("eligibility: %v", err)
	}
	if len(got) != 1 || got[0].ID != p.ID {
		t.Fatalf("expected exactly professional %d, got %+v", p.ID, got)
	}
}

func TestEligibilityMissingJurisdiction(t *testing.T) {
	env := newTestEnv(t)
	j, _, h := env.seedHearing(t)
	env.Store.DeleteJurisdiction(j.ID)
	got, err := env.Engine.EligibleProfessionals(h.ID)
	if err != nil {
		t.Fatalf("eligibility: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates without jurisdiction, got %d", len(got))
	}
}

func TestEligibilityHearingNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.Engine.EligibleProfessionals(42)
	if !errors.Is(err, engine.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssignProfessional(t *testing.T) {
	env := newTestEnv(t)
	_, p, h := env.seedHearing(t)
	got, err := env.Engine.AssignProfessional(h.ID, p.ID, false)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if got.Status != domain.HearingAssigned {
		t.Fatalf("status after assign: %q", got.Status)
	}
	if got.ProfessionalID == nil || *got.ProfessionalID != p.ID {
		t.Fatalf("professional not set: %+v", got.ProfessionalID)
	}
}

func TestAssignIneligibleRejected(t *testing.T) {
	env := newTestEnv(t)
	_, _, h := env.seedHearing(t)
	other := env.Store.CreateProfessional(domain.Professional{Name: "Bruno", Type: "lawyer", Specialization: "Labor", Jurisdictions: []string{"SP"}, Active: true})
	if _, err := env.Engine.AssignProfessional(h.ID, other.ID, false); err == nil {
		t.Fatalf("expected eligibility rejection")
	}
	// force bypasses the eligibility check
	if _, err := env.Engine.AssignProfessional(h.ID, other.ID, true); err != nil {
		t.Fatalf("force assign: %v", err)
	}
}

func TestHearingStatusTransitions(t *testing.T) {
	env := newTestEnv(t)
	_, p, h := env.seedHearing(t)
	if _, err := env.Engine.AssignProfessional(h.ID, p.ID, false); err != nil {
		t.Fatalf("assign: %v", err)
	}
	got, err := env.Engine.SetHearingStatus(h.ID, domain.HearingCompleted, false)
	if err != nil || got.Status != domain.HearingCompleted {
		t.Fatalf("to completed: %v", err)
	}
	// terminal: completed -> pending must be rejected
	if _, err := env.Engine.SetHearingStatus(h.ID, domain.HearingPending, false); err == nil {
		t.Fatalf("expected transition error for completed -> pending")
	}
	// cancel from pending
	h2 := env.Store.CreateHearing(domain.Hearing{ProcessNumber: "0002", JurisdictionID: 1, Area: "Civil"})
	got, err = env.Engine.SetHearingStatus(h2.ID, domain.HearingCancelled, false)
	if err != nil || got.Status != domain.HearingCancelled {
		t.Fatalf("to cancelled: %v", err)
	}
	if _, err := env.Engine.SetHearingStatus(h2.ID, domain.HearingAssigned, false); err == nil {
		t.Fatalf("expected transition error for cancelled -> assigned")
	}
}

func TestRecordMinutesUpload(t *testing.T) {
	env := newTestEnv(t)
	_, p, h := env.seedHearing(t)
	relatedID := h.ID
	task := env.Store.CreateTask(domain.Task{
		Title:     "Upload hearing minutes",
		Type:      domain.TaskUploadMinutes,
		RelatedID: &relatedID,
	})
	if _, err := env.Engine.AssignProfessional(h.ID, p.ID, false); err != nil {
		t.Fatalf("assign: %v", err)
	}
	got, err := env.Engine.RecordMinutesUpload(h.ID, "minutes/abc123.pdf")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !got.MinutesUploaded || got.MinutesURL != "minutes/abc123.pdf" {
		t.Fatalf("minutes fields not set: %+v", got)
	}
	if got.Status != domain.HearingCompleted {
		t.Fatalf("status after upload: %q", got.Status)
	}
	updated, _ := env.Store.GetTask(task.ID)
	if updated.Status != domain.TaskCompleted {
		t.Fatalf("upload_minutes task not completed: %q", updated.Status)
	}
}

func TestRecordMinutesUploadCompletesOneTask(t *testing.T) {
	env := newTestEnv(t)
	_, _, h := env.seedHearing(t)
	relatedID := h.ID
	first := env.Store.CreateTask(domain.Task{Title: "a", Type: domain.TaskUploadMinutes, RelatedID: &relatedID})
	second := env.Store.CreateTask(domain.Task{Title: "b", Type: domain.TaskUploadMinutes, RelatedID: &relatedID})
	if _, err := env.Engine.RecordMinutesUpload(h.ID, "minutes/x.pdf"); err != nil {
		t.Fatalf("upload: %v", err)
	}
	a, _ := env.Store.GetTask(first.ID)
	b, _ := env.Store.GetTask(second.ID)
	if a.Status != domain.TaskCompleted {
		t.Fatalf("first matching task should complete")
	}
	if b.Status != domain.TaskPending {
		t.Fatalf("only one task may complete, second got %q", b.Status)
	}
}

func TestRecordMinutesUploadFailures(t *testing.T) {
	env := newTestEnv(t)
	_, _, h := env.seedHearing(t)
	if _, err := env.Engine.RecordMinutesUpload(h.ID, ""); err == nil {
		t.Fatalf("expected error without file reference")
	}
	if _, err := env.Engine.RecordMinutesUpload(999, "minutes/x.pdf"); !errors.Is(err, engine.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordPaymentSyncsHearing(t *testing.T) {
	env := newTestEnv(t)
	_, p, h := env.seedHearing(t)
	if h.PaymentStatus != domain.PaymentPending {
		t.Fatalf("hearing should start pending payment")
	}
	pay, err := env.Engine.RecordPayment(engine.PaymentOptions{
		HearingID:      h.ID,
		ProfessionalID: p.ID,
		Amount:         500,
		Status:         domain.PaymentPaid,
	})
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
	if pay.Amount != 500 || pay.Status != domain.PaymentPaid {
		t.Fatalf("payment fields: %+v", pay)
	}
	got, _ := env.Store.GetHearing(h.ID)
	if got.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("hearing paymentStatus: %q", got.PaymentStatus)
	}
	if got.PaymentAmount != 500 {
		t.Fatalf("hearing paymentAmount: %v", got.PaymentAmount)
	}
}

func TestRecordPaymentCompletesTask(t *testing.T) {
	env := newTestEnv(t)
	_, p, h := env.seedHearing(t)
	relatedID := h.ID
	task := env.Store.CreateTask(domain.Task{Title: "pay", Type: domain.TaskPayment, RelatedID: &relatedID})
	if _, err := env.Engine.RecordPayment(engine.PaymentOptions{HearingID: h.ID, ProfessionalID: p.ID, Amount: 300}); err != nil {
		t.Fatalf("record payment: %v", err)
	}
	got, _ := env.Store.GetTask(task.ID)
	if got.Status != domain.TaskCompleted {
		t.Fatalf("payment task not completed: %q", got.Status)
	}
}

func TestRecordPaymentMissingHearingBestEffort(t *testing.T) {
	env := newTestEnv(t)
	pay, err := env.Engine.RecordPayment(engine.PaymentOptions{HearingID: 77, ProfessionalID: 1, Amount: 150})
	if err != nil {
		t.Fatalf("payment for missing hearing should still store: %v", err)
	}
	if _, ok := env.Store.GetPayment(pay.ID); !ok {
		t.Fatalf("payment not stored")
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.Engine.RecordPayment(engine.PaymentOptions{HearingID: 1, ProfessionalID: 1, Amount: 0}); err == nil {
		t.Fatalf("expected amount validation error")
	}
	if _, err := env.Engine.RecordPayment(engine.PaymentOptions{HearingID: 1, ProfessionalID: 1, Amount: 10, Status: "refunded"}); err == nil {
		t.Fatalf("expected status validation error")
	}
	if _, err := env.Engine.RecordPayment(engine.PaymentOptions{ProfessionalID: 1, Amount: 10}); err == nil {
		t.Fatalf("expected hearing id validation error")
	}
}

func TestUpdatePaymentPropagatesStatusOnly(t *testing.T) {
	env := newTestEnv(t)
	_, p, h := env.seedHearing(t)
	pay, err := env.Engine.RecordPayment(engine.PaymentOptions{HearingID: h.ID, ProfessionalID: p.ID, Amount: 200})
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
	paid := domain.PaymentPaid
	amount := 999.0
	if _, err := env.Engine.UpdatePayment(pay.ID, domain.PaymentUpdate{Status: &paid, Amount: &amount}); err != nil {
		t.Fatalf("update payment: %v", err)
	}
	got, _ := env.Store.GetHearing(h.ID)
	if got.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("status not propagated: %q", got.PaymentStatus)
	}
	if got.PaymentAmount != 200 {
		t.Fatalf("amount must not re-propagate on update: %v", got.PaymentAmount)
	}
}

func TestUpdatePaymentNotFound(t *testing.T) {
	env := newTestEnv(t)
	paid := domain.PaymentPaid
	if _, err := env.Engine.UpdatePayment(5, domain.PaymentUpdate{Status: &paid}); !errors.Is(err, engine.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
