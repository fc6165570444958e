// Package engine holds the domain rules layered on top of the store:
// professional eligibility, the hearing status state machine, and the
// cross-entity side effects of minutes uploads and payments. The engine
// owns no state beyond the store reference.
package engine

import (
	"errors"
	"fmt"
	"time"

	"lexboard/internal/config"
	"lexboard/internal/domain"
	"lexboard/internal/store"
)

var ErrNotFound = errors.New("not found")

type Engine struct {
	Store  *store.Store
	Config *config.Config
	Now    func() time.Time
}

func New(st *store.Store, cfg *config.Config) Engine {
	return Engine{
		Store:  st,
		Config: cfg,
		Now:    time.Now,
	}
}

func (e Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// EligibleProfessionals returns the unordered candidate set for a hearing:
// active professionals whose specialization equals the hearing's area and
// whose jurisdictions contain the state of the hearing's jurisdiction.
// A hearing whose jurisdiction no longer exists has no candidates.
func (e Engine) EligibleProfessionals(hearingID int) ([]domain.Professional, error) {
	h, ok := e.Store.GetHearing(hearingID)
	if !ok {
		return nil, fmt.Errorf("hearing %d: %w", hearingID, ErrNotFound)
	}
	j, ok := e.Store.GetJurisdiction(h.JurisdictionID)
	if !ok {
		return []domain.Professional{}, nil
	}
	return e.Store.ProfessionalsWhere(func(p domain.Professional) bool {
		return p.Active && p.Specialization == h.Area && hasState(p.Jurisdictions, j.State)
	}), nil
}

func hasState(states []string, state string) bool {
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}

func ensureHearingTransition(oldStatus, newStatus string, force bool) error {
	if force || oldStatus == newStatus {
		return nil
	}
	switch oldStatus {
	case domain.HearingPending:
		if newStatus == domain.HearingAssigned || newStatus == domain.HearingCompleted || newStatus == domain.HearingCancelled {
			return nil
		}
	case domain.HearingAssigned:
		if newStatus == domain.HearingCompleted || newStatus == domain.HearingCancelled {
			return nil
		}
	}
	return fmt.Errorf("invalid hearing status transition %s -> %s", oldStatus, newStatus)
}

// AssignProfessional sets the hearing's professional and moves it to
// assigned. Eligibility is checked unless force is set; reassigning an
// already assigned hearing is allowed.
func (e Engine) AssignProfessional(hearingID, professionalID int, force bool) (domain.Hearing, error) {
	h, ok := e.Store.GetHearing(hearingID)
	if !ok {
		return domain.Hearing{}, fmt.Errorf("hearing %d: %w", hearingID, ErrNotFound)
	}
	if _, ok := e.Store.GetProfessional(professionalID); !ok {
		return h, fmt.Errorf("professional %d: %w", professionalID, ErrNotFound)
	}
	if !force {
		candidates, err := e.EligibleProfessionals(hearingID)
		if err != nil {
			return h, err
		}
		eligible := false
		for _, c := range candidates {
			if c.ID == professionalID {
				eligible = true
				break
			}
		}
		if !eligible {
			return h, fmt.Errorf("professional %d not eligible for hearing %d", professionalID, hearingID)
		}
	}
	if err := ensureHearingTransition(h.Status, domain.HearingAssigned, force); err != nil {
		return h, err
	}
	status := domain.HearingAssigned
	h, _ = e.Store.UpdateHearing(hearingID, domain.HearingUpdate{
		ProfessionalID: &professionalID,
		Status:         &status,
	})
	e.completeFirstPendingTask(domain.TaskAssignProfessional, hearingID)
	return h, nil
}

// SetHearingStatus applies a caller-driven status change, validating the
// transition unless force is set.
func (e Engine) SetHearingStatus(hearingID int, status string, force bool) (domain.Hearing, error) {
	h, ok := e.Store.GetHearing(hearingID)
	if !ok {
		return domain.Hearing{}, fmt.Errorf("hearing %d: %w", hearingID, ErrNotFound)
	}
	switch status {
	case domain.HearingPending, domain.HearingAssigned, domain.HearingCompleted, domain.HearingCancelled:
	default:
		return h, fmt.Errorf("invalid hearing status %q", status)
	}
	if err := ensureHearingTransition(h.Status, status, force); err != nil {
		return h, err
	}
	h, _ = e.Store.UpdateHearing(hearingID, domain.HearingUpdate{Status: &status})
	return h, nil
}

// RecordMinutesUpload marks a hearing's minutes as uploaded and completes
// the hearing, then closes the first pending upload_minutes task related
// to it. fileRef is the stored reference of the uploaded document.
func (e Engine) RecordMinutesUpload(hearingID int, fileRef string) (domain.Hearing, error) {
	if fileRef == "" {
		return domain.Hearing{}, errors.New("file reference required")
	}
	h, ok := e.Store.GetHearing(hearingID)
	if !ok {
		return domain.Hearing{}, fmt.Errorf("hearing %d: %w", hearingID, ErrNotFound)
	}
	if err := ensureHearingTransition(h.Status, domain.HearingCompleted, false); err != nil {
		return h, err
	}
	uploaded := true
	status := domain.HearingCompleted
	h, _ = e.Store.UpdateHearing(hearingID, domain.HearingUpdate{
		MinutesUploaded: &uploaded,
		MinutesURL:      &fileRef,
		Status:          &status,
	})
	e.completeFirstPendingTask(domain.TaskUploadMinutes, hearingID)
	return h, nil
}

// PaymentOptions are parameters for recording a payment.
type PaymentOptions struct {
	HearingID      int
	ProfessionalID int
	Amount         float64
	Status         string
	PaymentDate    string
	Notes          string
}

// RecordPayment stores a payment and syncs the owning hearing's
// paymentStatus and paymentAmount. The hearing-side sync is best-effort:
// the payment record is kept even when the hearing does not exist.
func (e Engine) RecordPayment(opts PaymentOptions) (domain.Payment, error) {
	if opts.HearingID == 0 {
		return domain.Payment{}, errors.New("hearing id required")
	}
	if opts.ProfessionalID == 0 {
		return domain.Payment{}, errors.New("professional id required")
	}
	if opts.Amount <= 0 {
		return domain.Payment{}, errors.New("amount must be positive")
	}
	if opts.Status == "" {
		opts.Status = domain.PaymentPending
	}
	if err := validPaymentStatus(opts.Status); err != nil {
		return domain.Payment{}, err
	}
	p := e.Store.CreatePayment(domain.Payment{
		HearingID:      opts.HearingID,
		ProfessionalID: opts.ProfessionalID,
		Amount:         opts.Amount,
		Status:         opts.Status,
		PaymentDate:    opts.PaymentDate,
		Notes:          opts.Notes,
	})
	e.Store.UpdateHearing(opts.HearingID, domain.HearingUpdate{
		PaymentStatus: &p.Status,
		PaymentAmount: &p.Amount,
	})
	e.completeFirstPendingTask(domain.TaskPayment, opts.HearingID)
	return p, nil
}

// UpdatePayment merges the update onto the payment. A status change is
// propagated to the owning hearing's paymentStatus; amount is only
// propagated at creation.
func (e Engine) UpdatePayment(id int, upd domain.PaymentUpdate) (domain.Payment, error) {
	p, ok := e.Store.GetPayment(id)
	if !ok {
		return domain.Payment{}, fmt.Errorf("payment %d: %w", id, ErrNotFound)
	}
	if upd.Status != nil {
		if err := validPaymentStatus(*upd.Status); err != nil {
			return p, err
		}
	}
	statusChanged := upd.Status != nil && *upd.Status != p.Status
	p, _ = e.Store.UpdatePayment(id, upd)
	if statusChanged {
		e.Store.UpdateHearing(p.HearingID, domain.HearingUpdate{PaymentStatus: upd.Status})
	}
	return p, nil
}

func validPaymentStatus(status string) error {
	switch status {
	case domain.PaymentPending, domain.PaymentProcessing, domain.PaymentPaid:
		return nil
	}
	return fmt.Errorf("invalid payment status %q", status)
}
