package server

import "lexboard/internal/domain"

// Request payloads. Responses use the domain structs directly; their json
// tags are the wire contract.

type CreateUserRequest struct {
	Name  string  `json:"name" minLength:"1"`
	Email string  `json:"email" format:"email"`
	Role  *string `json:"role,omitempty"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

type CreateProfessionalRequest struct {
	Name           string   `json:"name" minLength:"1"`
	Email          string   `json:"email" format:"email"`
	Phone          *string  `json:"phone,omitempty"`
	Type           string   `json:"type" enum:"lawyer,court_official"`
	Specialization string   `json:"specialization" minLength:"1"`
	Jurisdictions  []string `json:"jurisdictions" minItems:"1"`
	Active         *bool    `json:"active,omitempty"`
}

type UpdateProfessionalRequest struct {
	Name           *string  `json:"name,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Type           *string  `json:"type,omitempty" enum:"lawyer,court_official"`
	Specialization *string  `json:"specialization,omitempty"`
	Jurisdictions  []string `json:"jurisdictions,omitempty"`
	Active         *bool    `json:"active,omitempty"`
}

type CreateJurisdictionRequest struct {
	Name    string  `json:"name" minLength:"1"`
	State   string  `json:"state" minLength:"2" maxLength:"2"`
	City    string  `json:"city" minLength:"1"`
	Address *string `json:"address,omitempty"`
}

type UpdateJurisdictionRequest struct {
	Name    *string `json:"name,omitempty"`
	State   *string `json:"state,omitempty" minLength:"2" maxLength:"2"`
	City    *string `json:"city,omitempty"`
	Address *string `json:"address,omitempty"`
}

type CreateHearingRequest struct {
	ProcessNumber  string  `json:"processNumber" minLength:"1"`
	JurisdictionID int     `json:"jurisdictionId" minimum:"1"`
	Date           string  `json:"date" example:"2024-03-20"`
	Time           string  `json:"time" example:"14:00"`
	Type           string  `json:"type" enum:"Conciliation,Instruction,Judgment,Administrative"`
	Area           string  `json:"area" minLength:"1"`
	ProfessionalID *int    `json:"professionalId,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

type UpdateHearingRequest struct {
	ProcessNumber  *string  `json:"processNumber,omitempty"`
	JurisdictionID *int     `json:"jurisdictionId,omitempty"`
	Date           *string  `json:"date,omitempty"`
	Time           *string  `json:"time,omitempty"`
	Type           *string  `json:"type,omitempty" enum:"Conciliation,Instruction,Judgment,Administrative"`
	Area           *string  `json:"area,omitempty"`
	ProfessionalID *int     `json:"professionalId,omitempty"`
	Status         *string  `json:"status,omitempty" enum:"pending,assigned,completed,cancelled"`
	Notes          *string  `json:"notes,omitempty"`
	PaymentAmount  *float64 `json:"paymentAmount,omitempty"`
}

type AssignProfessionalRequest struct {
	ProfessionalID int  `json:"professionalId" minimum:"1"`
	Force          bool `json:"force,omitempty"`
}

type UploadMinutesRequest struct {
	FileName string `json:"fileName" minLength:"1" example:"minutes-0001234.pdf"`
}

type RecordPaymentRequest struct {
	HearingID      int     `json:"hearingId" minimum:"1"`
	ProfessionalID int     `json:"professionalId" minimum:"1"`
	Amount         float64 `json:"amount" exclusiveMinimum:"0"`
	Status         *string `json:"status,omitempty" enum:"pending,processing,paid"`
	PaymentDate    *string `json:"paymentDate,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

type UpdatePaymentRequest struct {
	Amount      *float64 `json:"amount,omitempty"`
	Status      *string  `json:"status,omitempty" enum:"pending,processing,paid"`
	PaymentDate *string  `json:"paymentDate,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" minLength:"1"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type" minLength:"1"`
	RelatedID   *int    `json:"relatedId,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" enum:"pending,completed"`
	Type        *string `json:"type,omitempty"`
	RelatedID   *int    `json:"relatedId,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r UpdateHearingRequest) toDomain() domain.HearingUpdate {
	return domain.HearingUpdate{
		ProcessNumber:  r.ProcessNumber,
		JurisdictionID: r.JurisdictionID,
		Date:           r.Date,
		Time:           r.Time,
		Type:           r.Type,
		Area:           r.Area,
		ProfessionalID: r.ProfessionalID,
		Notes:          r.Notes,
		PaymentAmount:  r.PaymentAmount,
	}
}

func (r UpdatePaymentRequest) toDomain() domain.PaymentUpdate {
	return domain.PaymentUpdate{
		Amount:      r.Amount,
		Status:      r.Status,
		PaymentDate: r.PaymentDate,
		Notes:       r.Notes,
	}
}

func (r UpdateTaskRequest) toDomain() domain.TaskUpdate {
	return domain.TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Type:        r.Type,
		RelatedID:   r.RelatedID,
		DueDate:     r.DueDate,
	}
}
