package store

import "lexboard/internal/domain"

// Users

func (s *Store) CreateUser(u domain.User) domain.User {
	u.CreatedAt = s.now()
	return s.users.create(u)
}

func (s *Store) GetUser(id int) (domain.User, bool) { return s.users.get(id) }

func (s *Store) ListUsers() []domain.User { return s.users.list() }

func (s *Store) UpdateUser(id int, upd domain.UserUpdate) (domain.User, bool) {
	return s.users.update(id, func(u *domain.User) {
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		if upd.Role != nil {
			u.Role = *upd.Role
		}
	})
}

func (s *Store) DeleteUser(id int) bool { return s.users.delete(id) }

// Professionals

func (s *Store) CreateProfessional(p domain.Professional) domain.Professional {
	p.CreatedAt = s.now()
	return s.professionals.create(p)
}

func (s *Store) GetProfessional(id int) (domain.Professional, bool) {
	return s.professionals.get(id)
}

func (s *Store) ListProfessionals() []domain.Professional { return s.professionals.list() }

func (s *Store) ProfessionalsWhere(pred func(domain.Professional) bool) []domain.Professional {
	return s.professionals.where(pred)
}

func (s *Store) UpdateProfessional(id int, upd domain.ProfessionalUpdate) (domain.Professional, bool) {
	return s.professionals.update(id, func(p *domain.Professional) {
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Email != nil {
			p.Email = *upd.Email
		}
		if upd.Phone != nil {
			p.Phone = *upd.Phone
		}
		if upd.Type != nil {
			p.Type = *upd.Type
		}
		if upd.Specialization != nil {
			p.Specialization = *upd.Specialization
		}
		if upd.Jurisdictions != nil {
			p.Jurisdictions = upd.Jurisdictions
		}
		if upd.Active != nil {
			p.Active = *upd.Active
		}
	})
}

func (s *Store) DeleteProfessional(id int) bool { return s.professionals.delete(id) }

// Jurisdictions

func (s *Store) CreateJurisdiction(j domain.Jurisdiction) domain.Jurisdiction {
	j.CreatedAt = s.now()
	return s.jurisdictions.create(j)
}

func (s *Store) GetJurisdiction(id int) (domain.Jurisdiction, bool) {
	return s.jurisdictions.get(id)
}

func (s *Store) ListJurisdictions() []domain.Jurisdiction { return s.jurisdictions.list() }

func (s *Store) UpdateJurisdiction(id int, upd domain.JurisdictionUpdate) (domain.Jurisdiction, bool) {
	return s.jurisdictions.update(id, func(j *domain.Jurisdiction) {
		if upd.Name != nil {
			j.Name = *upd.Name
		}
		if upd.State != nil {
			j.State = *upd.State
		}
		if upd.City != nil {
			j.City = *upd.City
		}
		if upd.Address != nil {
			j.Address = *upd.Address
		}
	})
}

func (s *Store) DeleteJurisdiction(id int) bool { return s.jurisdictions.delete(id) }

// Hearings

func (s *Store) CreateHearing(h domain.Hearing) domain.Hearing {
	if h.Status == "" {
		h.Status = domain.HearingPending
	}
	if h.PaymentStatus == "" {
		h.PaymentStatus = domain.PaymentPending
	}
	h.MinutesUploaded = false
	h.MinutesURL = ""
	h.CreatedAt = s.now()
	return s.hearings.create(h)
}

func (s *Store) GetHearing(id int) (domain.Hearing, bool) { return s.hearings.get(id) }

func (s *Store) ListHearings() []domain.Hearing { return s.hearings.list() }

func (s *Store) HearingsWhere(pred func(domain.Hearing) bool) []domain.Hearing {
	return s.hearings.where(pred)
}

func (s *Store) UpdateHearing(id int, upd domain.HearingUpdate) (domain.Hearing, bool) {
	return s.hearings.update(id, func(h *domain.Hearing) {
		if upd.ProcessNumber != nil {
			h.ProcessNumber = *upd.ProcessNumber
		}
		if upd.JurisdictionID != nil {
			h.JurisdictionID = *upd.JurisdictionID
		}
		if upd.Date != nil {
			h.Date = *upd.Date
		}
		if upd.Time != nil {
			h.Time = *upd.Time
		}
		if upd.Type != nil {
			h.Type = *upd.Type
		}
		if upd.Area != nil {
			h.Area = *upd.Area
		}
		if upd.ProfessionalID != nil {
			if *upd.ProfessionalID == 0 {
				h.ProfessionalID = nil
			} else {
				id := *upd.ProfessionalID
				h.ProfessionalID = &id
			}
		}
		if upd.Status != nil {
			h.Status = *upd.Status
		}
		if upd.Notes != nil {
			h.Notes = *upd.Notes
		}
		if upd.MinutesUploaded != nil {
			h.MinutesUploaded = *upd.MinutesUploaded
		}
		if upd.MinutesURL != nil {
			h.MinutesURL = *upd.MinutesURL
		}
		if upd.PaymentStatus != nil {
			h.PaymentStatus = *upd.PaymentStatus
		}
		if upd.PaymentAmount != nil {
			h.PaymentAmount = *upd.PaymentAmount
		}
	})
}

func (s *Store) DeleteHearing(id int) bool { return s.hearings.delete(id) }

// Payments

func (s *Store) CreatePayment(p domain.Payment) domain.Payment {
	if p.Status == "" {
		p.Status = domain.PaymentPending
	}
	p.CreatedAt = s.now()
	return s.payments.create(p)
}

func (s *Store) GetPayment(id int) (domain.Payment, bool) { return s.payments.get(id) }

func (s *Store) ListPayments() []domain.Payment { return s.payments.list() }

func (s *Store) PaymentsWhere(pred func(domain.Payment) bool) []domain.Payment {
	return s.payments.where(pred)
}

func (s *Store) UpdatePayment(id int, upd domain.PaymentUpdate) (domain.Payment, bool) {
	return s.payments.update(id, func(p *domain.Payment) {
		if upd.Amount != nil {
			p.Amount = *upd.Amount
		}
		if upd.Status != nil {
			p.Status = *upd.Status
		}
		if upd.PaymentDate != nil {
			p.PaymentDate = *upd.PaymentDate
		}
		if upd.Notes != nil {
			p.Notes = *upd.Notes
		}
	})
}

func (s *Store) DeletePayment(id int) bool { return s.payments.delete(id) }

// Tasks

func (s *Store) CreateTask(t domain.Task) domain.Task {
	if t.Status == "" {
		t.Status = domain.TaskPending
	}
	t.CreatedAt = s.now()
	return s.tasks.create(t)
}

func (s *Store) GetTask(id int) (domain.Task, bool) { return s.tasks.get(id) }

func (s *Store) ListTasks() []domain.Task { return s.tasks.list() }

func (s *Store) TasksWhere(pred func(domain.Task) bool) []domain.Task {
	return s.tasks.where(pred)
}

func (s *Store) UpdateTask(id int, upd domain.TaskUpdate) (domain.Task, bool) {
	return s.tasks.update(id, func(t *domain.Task) {
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.Status != nil {
			t.Status = *upd.Status
		}
		if upd.Type != nil {
			t.Type = *upd.Type
		}
		if upd.RelatedID != nil {
			if *upd.RelatedID == 0 {
				t.RelatedID = nil
			} else {
				id := *upd.RelatedID
				t.RelatedID = &id
			}
		}
		if upd.DueDate != nil {
			t.DueDate = *upd.DueDate
		}
	})
}

func (s *Store) DeleteTask(id int) bool { return s.tasks.delete(id) }
