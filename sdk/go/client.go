package lexboardsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal Lexboard HTTP API client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// New creates a client with sane defaults.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}

// Professional represents the API professional model.
type Professional struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	Type           string   `json:"type"`
	Specialization string   `json:"specialization"`
	Jurisdictions  []string `json:"jurisdictions"`
	Active         bool     `json:"active"`
	CreatedAt      string   `json:"createdAt"`
}

// Jurisdiction represents a court unit.
type Jurisdiction struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	City      string `json:"city"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// Hearing represents a scheduled hearing.
type Hearing struct {
	ID              int     `json:"id"`
	ProcessNumber   string  `json:"processNumber"`
	JurisdictionID  int     `json:"jurisdictionId"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Type            string  `json:"type"`
	Area            string  `json:"area"`
	ProfessionalID  *int    `json:"professionalId,omitempty"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes,omitempty"`
	MinutesUploaded bool    `json:"minutesUploaded"`
	MinutesURL      string  `json:"minutesUrl,omitempty"`
	PaymentStatus   string  `json:"paymentStatus"`
	PaymentAmount   float64 `json:"paymentAmount"`
	CreatedAt       string  `json:"createdAt"`
}

// Payment represents a fee payment record.
type Payment struct {
	ID             int     `json:"id"`
	HearingID      int     `json:"hearingId"`
	ProfessionalID int     `json:"professionalId"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	PaymentDate    string  `json:"paymentDate,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// Task represents a workflow task.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Type        string `json:"type"`
	RelatedID   *int   `json:"relatedId,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// HearingStats is the dashboard counters payload.
type HearingStats struct {
	Today           int `json:"today"`
	Pending         int `json:"pending"`
	AwaitingMinutes int `json:"awaitingMinutes"`
	AwaitingPayment int `json:"awaitingPayment"`
}

// FinancialSummary aggregates payments over a trailing period.
type FinancialSummary struct {
	Period  string  `json:"period"`
	Total   float64 `json:"total"`
	Pending float64 `json:"pending"`
	Paid    float64 `json:"paid"`
}

// APIError wraps non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// CreateHearing schedules a hearing.
func (c *Client) CreateHearing(ctx context.Context, processNumber string, jurisdictionID int, date, hearingTime, hearingType, area string) (Hearing, error) {
	body := map[string]any{
		"processNumber":  processNumber,
		"jurisdictionId": jurisdictionID,
		"date":           date,
		"time":           hearingTime,
		"type":           hearingType,
		"area":           area,
	}
	var resp Hearing
	err := c.do(ctx, http.MethodPost, "v0/hearings", body, &resp)
	return resp, err
}

// GetHearing fetches a hearing by id.
func (c *Client) GetHearing(ctx context.Context, id int) (Hearing, error) {
	var resp Hearing
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("v0/hearings/%d", id), nil, &resp)
	return resp, err
}

// ListHearings lists hearings, optionally filtered by status.
func (c *Client) ListHearings(ctx context.Context, status string) ([]Hearing, error) {
	endpoint := "v0/hearings"
	if status != "" {
		endpoint += "?status=" + url.QueryEscape(status)
	}
	var resp []Hearing
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

// EligibleProfessionals returns the candidates for a hearing.
func (c *Client) EligibleProfessionals(ctx context.Context, hearingID int) ([]Professional, error) {
	var resp []Professional
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("v0/hearings/%d/eligible-professionals", hearingID), nil, &resp)
	return resp, err
}

// AssignProfessional assigns a professional to a hearing.
func (c *Client) AssignProfessional(ctx context.Context, hearingID, professionalID int, force bool) (Hearing, error) {
	body := map[string]any{
		"professionalId": professionalID,
		"force":          force,
	}
	var resp Hearing
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("v0/hearings/%d/assign", hearingID), body, &resp)
	return resp, err
}

// UploadMinutes records a minutes upload for a hearing.
func (c *Client) UploadMinutes(ctx context.Context, hearingID int, fileName string) (Hearing, error) {
	body := map[string]any{"fileName": fileName}
	var resp Hearing
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("v0/hearings/%d/minutes", hearingID), body, &resp)
	return resp, err
}

// CreateProfessional registers a professional.
func (c *Client) CreateProfessional(ctx context.Context, name, email, proType, specialization string, jurisdictions []string) (Professional, error) {
	body := map[string]any{
		"name":           name,
		"email":          email,
		"type":           proType,
		"specialization": specialization,
		"jurisdictions":  jurisdictions,
	}
	var resp Professional
	err := c.do(ctx, http.MethodPost, "v0/professionals", body, &resp)
	return resp, err
}

// CreateJurisdiction registers a court unit.
func (c *Client) CreateJurisdiction(ctx context.Context, name, state, city string) (Jurisdiction, error) {
	body := map[string]any{
		"name":  name,
		"state": state,
		"city":  city,
	}
	var resp Jurisdiction
	err := c.do(ctx, http.MethodPost, "v0/jurisdictions", body, &resp)
	return resp, err
}

// RecordPayment records a payment for a hearing.
func (c *Client) RecordPayment(ctx context.Context, hearingID, professionalID int, amount float64, status string) (Payment, error) {
	body := map[string]any{
		"hearingId":      hearingID,
		"professionalId": professionalID,
		"amount":         amount,
	}
	if status != "" {
		body["status"] = status
	}
	var resp Payment
	err := c.do(ctx, http.MethodPost, "v0/payments", body, &resp)
	return resp, err
}

// DeriveTasks triggers a task derivation sweep and returns the new tasks.
func (c *Client) DeriveTasks(ctx context.Context) ([]Task, error) {
	var resp []Task
	err := c.do(ctx, http.MethodPost, "v0/tasks/derive", nil, &resp)
	return resp, err
}

// ListTasks lists tasks, optionally filtered by status.
func (c *Client) ListTasks(ctx context.Context, status string) ([]Task, error) {
	endpoint := "v0/tasks"
	if status != "" {
		endpoint += "?status=" + url.QueryEscape(status)
	}
	var resp []Task
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

// HearingStats returns the dashboard counters.
func (c *Client) HearingStats(ctx context.Context) (HearingStats, error) {
	var resp HearingStats
	err := c.do(ctx, http.MethodGet, "v0/stats/hearings", nil, &resp)
	return resp, err
}

// FinancialSummary returns the payment aggregates for a trailing period.
func (c *Client) FinancialSummary(ctx context.Context, period string) (FinancialSummary, error) {
	endpoint := "v0/stats/financial"
	if period != "" {
		endpoint += "?period=" + url.QueryEscape(period)
	}
	var resp FinancialSummary
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	url := c.base() + "/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) base() string {
	return strings.TrimRight(c.BaseURL, "/")
}
