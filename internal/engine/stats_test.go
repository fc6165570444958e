package engine_test

import (
	"testing"
	"time"

	"lexboard/internal/domain"
	"lexboard/internal/engine"
	"lexboard/internal/store"
)

func TestGetHearingStats(t *testing.T) {
	env := newTestEnv(t)
	// today is fixed at 2024-03-15 in newTestEnv
	env.Store.CreateHearing(domain.Hearing{ProcessNumber: "t1", Date: "2024-03-15"})
	env.Store.CreateHearing(domain.Hearing{ProcessNumber: "t2", Date: "2024-03-16"})
	completedNoMinutes := env.Store.CreateHearing(domain.Hearing{ProcessNumber: "c1", Date: "2024-03-10"})
	env.Engine.SetHearingStatus(completedNoMinutes.ID, domain.HearingCompleted, true)
	completedPaid := env.Store.CreateHearing(domain.Hearing{ProcessNumber: "c2", Date: "2024-03-10"})
	env.Engine.SetHearingStatus(completedPaid.ID, domain.HearingCompleted, true)
	if _, err := env.Engine.RecordMinutesUpload(completedPaid.ID, "minutes/ok.pdf"); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if _, err := env.Engine.RecordPayment(engine.PaymentOptions{HearingID: completedPaid.ID, ProfessionalID: 1, Amount: 100, Status: domain.PaymentPaid}); err != nil {
		t.Fatalf("payment: %v", err)
	}

	stats := env.Engine.GetHearingStats()
	if stats.Today != 1 {
		t.Fatalf("today: got %d", stats.Today)
	}
	if stats.Pending != 2 {
		t.Fatalf("pending: got %d", stats.Pending)
	}
	if stats.AwaitingMinutes != 1 {
		t.Fatalf("awaiting minutes: got %d", stats.AwaitingMinutes)
	}
	if stats.AwaitingPayment != 1 {
		t.Fatalf("awaiting payment: got %d", stats.AwaitingPayment)
	}
}

func paymentCreatedAt(st *store.Store, daysAgo int, amount float64, status string) {
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	st.Now = func() time.Time { return base.AddDate(0, 0, -daysAgo) }
	st.CreatePayment(domain.Payment{HearingID: 1, ProfessionalID: 1, Amount: amount, Status: status})
	st.Now = func() time.Time { return base }
}

func TestFinancialSummaryWeek(t *testing.T) {
	env := newTestEnv(t)
	paymentCreatedAt(env.Store, 2, 300, domain.PaymentPaid)
	paymentCreatedAt(env.Store, 10, 500, domain.PaymentPaid)

	week := env.Engine.GetFinancialSummary("week")
	if week.Total != 300 {
		t.Fatalf("week total: got %v", week.Total)
	}
	if week.Paid != 300 {
		t.Fatalf("week paid: got %v", week.Paid)
	}
	all := env.Engine.GetFinancialSummary("everything")
	if all.Total != 800 {
		t.Fatalf("unfiltered total: got %v", all.Total)
	}
	if all.Period != "all" {
		t.Fatalf("unknown period label: got %q", all.Period)
	}
}

func TestFinancialSummaryMonthAndYear(t *testing.T) {
	env := newTestEnv(t)
	paymentCreatedAt(env.Store, 5, 100, domain.PaymentPending)
	paymentCreatedAt(env.Store, 45, 200, domain.PaymentPaid)
	paymentCreatedAt(env.Store, 400, 400, domain.PaymentPaid)

	month := env.Engine.GetFinancialSummary("month")
	if month.Total != 100 || month.Pending != 100 || month.Paid != 0 {
		t.Fatalf("month summary: %+v", month)
	}
	year := env.Engine.GetFinancialSummary("year")
	if year.Total != 300 {
		t.Fatalf("year window should exclude 400-day-old payment: %+v", year)
	}
	if year.Paid != 200 || year.Pending != 100 {
		t.Fatalf("year breakdown: %+v", year)
	}
}
