package engine

import (
	"time"

	"lexboard/internal/domain"
)

// HearingStats is the dashboard headline view, computed on demand from
// the current store contents.
type HearingStats struct {
	Today           int `json:"today"`
	Pending         int `json:"pending"`
	AwaitingMinutes int `json:"awaitingMinutes"`
	AwaitingPayment int `json:"awaitingPayment"`
}

func (e Engine) GetHearingStats() HearingStats {
	today := e.now().Format("2006-01-02")
	var stats HearingStats
	for _, h := range e.Store.ListHearings() {
		if h.Date == today {
			stats.Today++
		}
		switch {
		case h.Status == domain.HearingPending:
			stats.Pending++
		case h.Status == domain.HearingCompleted:
			if !h.MinutesUploaded {
				stats.AwaitingMinutes++
			}
			if h.PaymentStatus == domain.PaymentPending {
				stats.AwaitingPayment++
			}
		}
	}
	return stats
}

// FinancialSummary aggregates payment amounts for a trailing window.
type FinancialSummary struct {
	Period  string  `json:"period" enum:"week,month,year,all"`
	Total   float64 `json:"total"`
	Pending float64 `json:"pending"`
	Paid    float64 `json:"paid"`
}

// GetFinancialSummary sums payments created within the trailing window:
// 7 days for "week", 1 calendar month for "month", 1 year for "year";
// any other period is unfiltered.
func (e Engine) GetFinancialSummary(period string) FinancialSummary {
	now := e.now()
	var cutoff time.Time
	label := period
	switch period {
	case "week":
		cutoff = now.AddDate(0, 0, -7)
	case "month":
		cutoff = now.AddDate(0, -1, 0)
	case "year":
		cutoff = now.AddDate(-1, 0, 0)
	default:
		label = "all"
	}
	summary := FinancialSummary{Period: label}
	for _, p := range e.Store.ListPayments() {
		if !cutoff.IsZero() {
			created, err := time.Parse(time.RFC3339, p.CreatedAt)
			if err != nil || created.Before(cutoff) {
				continue
			}
		}
		summary.Total += p.Amount
		switch p.Status {
		case domain.PaymentPending:
			summary.Pending += p.Amount
		case domain.PaymentPaid:
			summary.Paid += p.Amount
		}
	}
	return summary
}
