// Package store is the in-memory entity repository backing the dashboard.
// It owns one keyed table per entity type and nothing else: defaults are
// filled at creation, updates are explicit field-by-field merges, and
// absence is reported as an ok-bool, never an error. Cross-entity logic
// lives in the engine, layered on top of these primitives.
package store

import (
	"time"

	"lexboard/internal/domain"
)

type Store struct {
	users         *table[domain.User]
	professionals *table[domain.Professional]
	jurisdictions *table[domain.Jurisdiction]
	hearings      *table[domain.Hearing]
	payments      *table[domain.Payment]
	tasks         *table[domain.Task]

	Now func() time.Time
}

func New() *Store {
	return &Store{
		users: newTable(
			func(u *domain.User, id int) { u.ID = id },
			func(u domain.User) int { return u.ID }),
		professionals: newTable(
			func(p *domain.Professional, id int) { p.ID = id },
			func(p domain.Professional) int { return p.ID }),
		jurisdictions: newTable(
			func(j *domain.Jurisdiction, id int) { j.ID = id },
			func(j domain.Jurisdiction) int { return j.ID }),
		hearings: newTable(
			func(h *domain.Hearing, id int) { h.ID = id },
			func(h domain.Hearing) int { return h.ID }),
		payments: newTable(
			func(p *domain.Payment, id int) { p.ID = id },
			func(p domain.Payment) int { return p.ID }),
		tasks: newTable(
			func(t *domain.Task, id int) { t.ID = id },
			func(t domain.Task) int { return t.ID }),
		Now: time.Now,
	}
}

func (s *Store) now() string {
	if s.Now == nil {
		return time.Now().UTC().Format(time.RFC3339)
	}
	return s.Now().UTC().Format(time.RFC3339)
}

// Snapshot is the serialisable representation of the full store state,
// used by the persist package.
type Snapshot struct {
	Users         []domain.User         `json:"users"`
	Professionals []domain.Professional `json:"professionals"`
	Jurisdictions []domain.Jurisdiction `json:"jurisdictions"`
	Hearings      []domain.Hearing      `json:"hearings"`
	Payments      []domain.Payment      `json:"payments"`
	Tasks         []domain.Task         `json:"tasks"`
	Counters      map[string]int        `json:"counters"`
}

func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{Counters: map[string]int{}}
	snap.Users, snap.Counters["users"] = s.users.snapshot()
	snap.Professionals, snap.Counters["professionals"] = s.professionals.snapshot()
	snap.Jurisdictions, snap.Counters["jurisdictions"] = s.jurisdictions.snapshot()
	snap.Hearings, snap.Counters["hearings"] = s.hearings.snapshot()
	snap.Payments, snap.Counters["payments"] = s.payments.snapshot()
	snap.Tasks, snap.Counters["tasks"] = s.tasks.snapshot()
	return snap
}

// Restore replaces the store contents with the snapshot. Counters are
// taken from the snapshot, bumped to the highest restored id if needed so
// ids stay monotonic.
func (s *Store) Restore(snap Snapshot) {
	s.users.restore(snap.Users, snap.Counters["users"])
	s.professionals.restore(snap.Professionals, snap.Counters["professionals"])
	s.jurisdictions.restore(snap.Jurisdictions, snap.Counters["jurisdictions"])
	s.hearings.restore(snap.Hearings, snap.Counters["hearings"])
	s.payments.restore(snap.Payments, snap.Counters["payments"])
	s.tasks.restore(snap.Tasks, snap.Counters["tasks"])
}
