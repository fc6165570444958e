package domain

// Hearing status lifecycle: pending -> assigned -> completed, with
// cancelled reachable from any non-terminal state.
const (
	HearingPending   = "pending"
	HearingAssigned  = "assigned"
	HearingCompleted = "completed"
	HearingCancelled = "cancelled"
)

const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentPaid       = "paid"
)

const (
	TaskPending   = "pending"
	TaskCompleted = "completed"
)

// Well-known task types. Task.Type is free-form; these are the kinds the
// engine derives and auto-completes.
const (
	TaskUploadMinutes      = "upload_minutes"
	TaskAssignProfessional = "assign_professional"
	TaskPayment            = "payment"
)

type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"createdAt" format:"date-time"`
}

type Professional struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	Type           string   `json:"type" enum:"lawyer,court_official"`
	Specialization string   `json:"specialization"`
	Jurisdictions  []string `json:"jurisdictions"`
	Active         bool     `json:"active"`
	CreatedAt      string   `json:"createdAt" format:"date-time"`
}

type Jurisdiction struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	City      string `json:"city"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt" format:"date-time"`
}

// Hearing keeps date and time as separate local strings ("2006-01-02" and
// "HH:MM"); they are never combined into a timestamp.
type Hearing struct {
	ID              int     `json:"id"`
	ProcessNumber   string  `json:"processNumber"`
	JurisdictionID  int     `json:"jurisdictionId"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Type            string  `json:"type" enum:"Conciliation,Instruction,Judgment,Administrative"`
	Area            string  `json:"area"`
	ProfessionalID  *int    `json:"professionalId,omitempty"`
	Status          string  `json:"status" enum:"pending,assigned,completed,cancelled"`
	Notes           string  `json:"notes,omitempty"`
	MinutesUploaded bool    `json:"minutesUploaded"`
	MinutesURL      string  `json:"minutesUrl,omitempty"`
	PaymentStatus   string  `json:"paymentStatus" enum:"pending,processing,paid"`
	PaymentAmount   float64 `json:"paymentAmount,omitempty"`
	CreatedAt       string  `json:"createdAt" format:"date-time"`
}

type Payment struct {
	ID             int     `json:"id"`
	HearingID      int     `json:"hearingId"`
	ProfessionalID int     `json:"professionalId"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status" enum:"pending,processing,paid"`
	PaymentDate    string  `json:"paymentDate,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt" format:"date-time"`
}

// Task is an administrative reminder. RelatedID points at a hearing for
// upload_minutes/assign_professional tasks and at a hearing or
// professional for payment tasks.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status" enum:"pending,completed"`
	Type        string `json:"type"`
	RelatedID   *int   `json:"relatedId,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	CreatedAt   string `json:"createdAt" format:"date-time"`
}
