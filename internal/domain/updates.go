package domain

// Per-entity update structs. A nil field is left untouched by the store;
// a set field overwrites the stored value. ProfessionalID uses 0 to clear
// the assignment (ids start at 1, so 0 is never a valid reference).

type UserUpdate struct {
	Name  *string
	Email *string
	Role  *string
}

type ProfessionalUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	Type           *string
	Specialization *string
	Jurisdictions  []string
	Active         *bool
}

type JurisdictionUpdate struct {
	Name    *string
	State   *string
	City    *string
	Address *string
}

type HearingUpdate struct {
	ProcessNumber   *string
	JurisdictionID  *int
	Date            *string
	Time            *string
	Type            *string
	Area            *string
	ProfessionalID  *int
	Status          *string
	Notes           *string
	MinutesUploaded *bool
	MinutesURL      *string
	PaymentStatus   *string
	PaymentAmount   *float64
}

type PaymentUpdate struct {
	Amount      *float64
	Status      *string
	PaymentDate *string
	Notes       *string
}

type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Type        *string
	RelatedID   *int
	DueDate     *string
}
