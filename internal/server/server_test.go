package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"

	"lexboard/internal/config"
	"lexboard/internal/domain"
	"lexboard/internal/engine"
	"lexboard/internal/store"
)

type testServer struct {
	URL    string
	client *http.Client
	close  func()
}

func (s *testServer) Client() *http.Client { return s.client }
func (s *testServer) Close()               { s.close() }

func newTestServer(t *testing.T) (*testServer, func()) {
	t.Helper()
	cfg := config.Default("Tribunal de Justiça")
	e := engine.New(store.New(), cfg)
	handler, err := New(Config{Engine: e, BasePath: "/v0"})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := &http.Server{Handler: handler}
	go srv.Serve(ln)
	testSrv := &testServer{
		URL:    "http://" + ln.Addr().String(),
		client: &http.Client{},
		close: func() {
			srv.Shutdown(context.Background())
			ln.Close()
		},
	}
	return testSrv, func() { testSrv.Close() }
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res, data
}

func decodeInto[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("unmarshal %T: %v (%s)", v, err, string(data))
	}
	return v
}

func TestHearingLifecycleOverHTTP(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()
	client := srv.Client()

	res, data := doJSON(t, client, http.MethodPost, srv.URL+"/v0/jurisdictions", map[string]any{
		"name":  "1ª Vara Cível de São Paulo",
		"state": "SP",
		"city":  "São Paulo",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create jurisdiction status %d: %s", res.StatusCode, string(data))
	}
	jur := decodeInto[domain.Jurisdiction](t, data)

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/v0/professionals", map[string]any{
		"name":           "Ana Souza",
		"email":          "ana@souza.adv.br",
		"type":           "lawyer",
		"specialization": "Civil",
		"jurisdictions":  []string{"SP", "RJ"},
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create professional status %d: %s", res.StatusCode, string(data))
	}
	pro := decodeInto[domain.Professional](t, data)

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/v0/hearings", map[string]any{
		"processNumber":  "0001234-56.2024.8.26.0100",
		"jurisdictionId": jur.ID,
		"date":           "2024-03-20",
		"time":           "14:00",
		"type":           "Conciliation",
		"area":           "Civil",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create hearing status %d: %s", res.StatusCode, string(data))
	}
	hearing := decodeInto[domain.Hearing](t, data)
	if hearing.Status != domain.HearingPending {
		t.Fatalf("new hearing status = %q, want pending", hearing.Status)
	}
	hearingURL := srv.URL + "/v0/hearings/" + strconv.Itoa(hearing.ID)

	res, data = doJSON(t, client, http.MethodGet, hearingURL+"/eligible-professionals", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("eligible status %d: %s", res.StatusCode, string(data))
	}
	eligible := decodeInto[[]domain.Professional](t, data)
	if len(eligible) != 1 || eligible[0].ID != pro.ID {
		t.Fatalf("eligible = %+v, want [%d]", eligible, pro.ID)
	}

	res, data = doJSON(t, client, http.MethodPost, hearingURL+"/assign", map[string]any{
		"professionalId": pro.ID,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("assign status %d: %s", res.StatusCode, string(data))
	}
	hearing = decodeInto[domain.Hearing](t, data)
	if hearing.Status != domain.HearingAssigned {
		t.Fatalf("assigned hearing status = %q", hearing.Status)
	}
	if hearing.ProfessionalID == nil || *hearing.ProfessionalID != pro.ID {
		t.Fatalf("assigned professional = %v, want %d", hearing.ProfessionalID, pro.ID)
	}

	res, data = doJSON(t, client, http.MethodPost, hearingURL+"/minutes", map[string]any{
		"fileName": "ata-audiencia.pdf",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("minutes status %d: %s", res.StatusCode, string(data))
	}
	hearing = decodeInto[domain.Hearing](t, data)
	if hearing.Status != domain.HearingCompleted || !hearing.MinutesUploaded {
		t.Fatalf("after minutes: status=%q uploaded=%v", hearing.Status, hearing.MinutesUploaded)
	}
	if hearing.MinutesURL == "" {
		t.Fatal("minutes url not set")
	}

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/v0/payments", map[string]any{
		"hearingId":      hearing.ID,
		"professionalId": pro.ID,
		"amount":         350.0,
		"status":         "paid",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("payment status %d: %s", res.StatusCode, string(data))
	}
	payment := decodeInto[domain.Payment](t, data)
	if payment.Status != domain.PaymentPaid {
		t.Fatalf("payment status = %q", payment.Status)
	}

	res, data = doJSON(t, client, http.MethodGet, hearingURL, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get hearing status %d", res.StatusCode)
	}
	hearing = decodeInto[domain.Hearing](t, data)
	if hearing.PaymentStatus != domain.PaymentPaid || hearing.PaymentAmount != 350 {
		t.Fatalf("hearing payment sync: status=%q amount=%v", hearing.PaymentStatus, hearing.PaymentAmount)
	}

	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/v0/stats/financial?period=month", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("financial status %d: %s", res.StatusCode, string(data))
	}
	summary := decodeInto[engine.FinancialSummary](t, data)
	if summary.Total != 350 || summary.Paid != 350 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestHearingValidationAndErrors(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()
	client := srv.Client()

	res, data := doJSON(t, client, http.MethodGet, srv.URL+"/v0/hearings/99", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("missing hearing status %d: %s", res.StatusCode, string(data))
	}
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("unmarshal error envelope: %v (%s)", err, string(data))
	}
	if envelope.Error.Code != "not_found" {
		t.Fatalf("error code = %q, want not_found", envelope.Error.Code)
	}

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/v0/hearings", map[string]any{
		"processNumber":  "0001234-56.2024.8.26.0100",
		"jurisdictionId": 42,
		"date":           "2024-03-20",
		"time":           "14:00",
		"type":           "Judgment",
		"area":           "Civil",
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("dangling jurisdiction status %d: %s", res.StatusCode, string(data))
	}
}

func TestAssignRejectsIneligibleProfessional(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()
	client := srv.Client()

	_, data := doJSON(t, client, http.MethodPost, srv.URL+"/v0/jurisdictions", map[string]any{
		"name":  "Vara do Trabalho",
		"state": "MG",
		"city":  "Belo Horizonte",
	})
	jur := decodeInto[domain.Jurisdiction](t, data)

	// Wrong state: admitted only in SP, hearing sits in MG.
	_, data = doJSON(t, client, http.MethodPost, srv.URL+"/v0/professionals", map[string]any{
		"name":           "Bruno Lima",
		"email":          "bruno@lima.adv.br",
		"type":           "lawyer",
		"specialization": "Labor",
		"jurisdictions":  []string{"SP"},
	})
	pro := decodeInto[domain.Professional](t, data)

	_, data = doJSON(t, client, http.MethodPost, srv.URL+"/v0/hearings", map[string]any{
		"processNumber":  "0005555-11.2024.5.03.0001",
		"jurisdictionId": jur.ID,
		"date":           "2024-04-02",
		"time":           "09:30",
		"type":           "Instruction",
		"area":           "Labor",
	})
	hearing := decodeInto[domain.Hearing](t, data)

	res, data := doJSON(t, client, http.MethodPost, srv.URL+"/v0/hearings/"+strconv.Itoa(hearing.ID)+"/assign", map[string]any{
		"professionalId": pro.ID,
	})
	if res.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("ineligible assign status %d: %s", res.StatusCode, string(data))
	}

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/v0/hearings/"+strconv.Itoa(hearing.ID)+"/assign", map[string]any{
		"professionalId": pro.ID,
		"force":          true,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("forced assign status %d: %s", res.StatusCode, string(data))
	}
	hearing = decodeInto[domain.Hearing](t, data)
	if hearing.Status != domain.HearingAssigned {
		t.Fatalf("forced assign status = %q", hearing.Status)
	}
}

func TestTaskDerivationOverHTTP(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()
	client := srv.Client()

	_, data := doJSON(t, client, http.MethodPost, srv.URL+"/v0/jurisdictions", map[string]any{
		"name":  "2ª Vara Cível",
		"state": "RJ",
		"city":  "Rio de Janeiro",
	})
	jur := decodeInto[domain.Jurisdiction](t, data)

	_, data = doJSON(t, client, http.MethodPost, srv.URL+"/v0/hearings", map[string]any{
		"processNumber":  "0009999-00.2024.8.19.0001",
		"jurisdictionId": jur.ID,
		"date":           "2024-05-10",
		"time":           "11:00",
		"type":           "Conciliation",
		"area":           "Civil",
	})
	hearing := decodeInto[domain.Hearing](t, data)

	res, data := doJSON(t, client, http.MethodPost, srv.URL+"/v0/tasks/derive", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("derive status %d: %s", res.StatusCode, string(data))
	}
	derived := decodeInto[[]domain.Task](t, data)
	if len(derived) != 1 || derived[0].Type != domain.TaskAssignProfessional {
		t.Fatalf("derived = %+v, want one assign_professional task", derived)
	}
	if derived[0].RelatedID == nil || *derived[0].RelatedID != hearing.ID {
		t.Fatalf("derived relatedId = %v, want %d", derived[0].RelatedID, hearing.ID)
	}

	// Second sweep must not duplicate the open task.
	_, data = doJSON(t, client, http.MethodPost, srv.URL+"/v0/tasks/derive", nil)
	derived = decodeInto[[]domain.Task](t, data)
	if len(derived) != 0 {
		t.Fatalf("second derive produced %d tasks, want 0", len(derived))
	}
}
