package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/taninigeria-aa/mda-hr/internal/app/server"
	"github.com/taninigeria-aa/mda-hr/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func TestPromotionLifecycleJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:     dbURL,
		Environment:     "test",
		MigrationsDir:   "../../../../migrations",
		RunMigrations:   true,
		MaxBodyBytes:    1048576,
		DefaultMinYears: 3,
	}

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	client := ts.Client()

	fileNumber := fmt.Sprintf("MDA/%d", time.Now().UnixNano())
	employeeID := createEmployee(t, client, ts.URL, map[string]any{
		"fileNumber":                fileNumber,
		"surname":                   "Adebayo",
		"firstName":                 "Chinedu",
		"rank":                      "Senior Officer",
		"salaryGradeLevel":          "7",
		"salaryStructure":           "conpss",
		"appointmentType":           "permanent",
		"qualification":             "bsc",
		"dateOfBirth":               "1980-05-01T00:00:00Z",
		"dateFirstAppointment":      "2015-01-01T00:00:00Z",
		"datePresentAppointment":    "2018-01-01T00:00:00Z",
		"dateConfirmed":             "2018-01-01T00:00:00Z",
		"stateOfOrigin":             "lagos",
		"passedPromotionExam":       true,
		"promotionVacancyAvailable": true,
	})

	facts := getJSON(t, client, ts.URL+"/api/v1/employees/"+employeeID+"/facts")
	var factsData struct {
		IsConfirmed bool   `json:"isConfirmed"`
		GeoZone     string `json:"geoZone"`
	}
	if err := json.Unmarshal(facts, &factsData); err != nil {
		t.Fatalf("failed to decode facts: %v", err)
	}
	if !factsData.IsConfirmed {
		t.Fatal("expected employee to be confirmed")
	}
	if factsData.GeoZone != "south_west" {
		t.Fatalf("expected geo zone south_west, got %q", factsData.GeoZone)
	}

	eligibility := getJSON(t, client, ts.URL+"/api/v1/employees/"+employeeID+"/eligibility")
	var eligibilityData struct {
		Eligible bool     `json:"eligible"`
		Reasons  []string `json:"reasons"`
	}
	if err := json.Unmarshal(eligibility, &eligibilityData); err != nil {
		t.Fatalf("failed to decode eligibility: %v", err)
	}
	if !eligibilityData.Eligible {
		t.Fatalf("expected employee to be eligible, reasons: %v", eligibilityData.Reasons)
	}

	recordID := createDraft(t, client, ts.URL, employeeID)

	approved := postJSON(t, client, ts.URL+"/api/v1/promotions/"+recordID+"/approve", map[string]any{
		"approvedBy": "director@test.local",
	}, http.StatusOK)
	var approvedData struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal(approved, &approvedData); err != nil {
		t.Fatalf("failed to decode approval: %v", err)
	}
	if approvedData.State != "approved" {
		t.Fatalf("expected state approved, got %q", approvedData.State)
	}

	implemented := postJSON(t, client, ts.URL+"/api/v1/promotions/"+recordID+"/implement", map[string]any{}, http.StatusOK)
	var implementedData struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal(implemented, &implementedData); err != nil {
		t.Fatalf("failed to decode implementation: %v", err)
	}
	if implementedData.State != "implemented" {
		t.Fatalf("expected state implemented, got %q", implementedData.State)
	}

	emp := getJSON(t, client, ts.URL+"/api/v1/employees/"+employeeID)
	var empData struct {
		SalaryGradeLevel string `json:"salaryGradeLevel"`
		Rank             string `json:"rank"`
	}
	if err := json.Unmarshal(emp, &empData); err != nil {
		t.Fatalf("failed to decode employee: %v", err)
	}
	if empData.SalaryGradeLevel != "8" {
		t.Fatalf("expected grade 8 after implementation, got %q", empData.SalaryGradeLevel)
	}

	// Implemented records are terminal.
	resp := doPost(t, client, ts.URL+"/api/v1/promotions/"+recordID+"/implement", map[string]any{})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for repeated implementation, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestApproveRejectedForIneligibleEmployee(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:     dbURL,
		Environment:     "test",
		MigrationsDir:   "../../../../migrations",
		RunMigrations:   true,
		MaxBodyBytes:    1048576,
		DefaultMinYears: 3,
	}

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	client := ts.Client()

	fileNumber := fmt.Sprintf("MDA/D/%d", time.Now().UnixNano())
	employeeID := createEmployee(t, client, ts.URL, map[string]any{
		"fileNumber":                fileNumber,
		"surname":                   "Okafor",
		"firstName":                 "Amina",
		"rank":                      "Officer",
		"salaryGradeLevel":          "7",
		"appointmentType":           "permanent",
		"dateConfirmed":             "2018-01-01T00:00:00Z",
		"datePresentAppointment":    "2018-01-01T00:00:00Z",
		"hasDisciplinaryCase":       true,
		"passedPromotionExam":       true,
		"promotionVacancyAvailable": true,
	})

	recordID := createDraft(t, client, ts.URL, employeeID)

	resp := doPost(t, client, ts.URL+"/api/v1/promotions/"+recordID+"/approve", map[string]any{
		"approvedBy": "director@test.local",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for ineligible employee, got %d", resp.StatusCode)
	}

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Error == nil || body.Error.Code != "not_eligible" {
		t.Fatalf("expected not_eligible error, got %+v", body.Error)
	}

	var details struct {
		Reasons []string `json:"reasons"`
	}
	if err := json.Unmarshal(body.Error.Details, &details); err != nil {
		t.Fatalf("failed to decode details: %v", err)
	}
	found := false
	for _, reason := range details.Reasons {
		if reason == "Staff has disciplinary case(s)" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected disciplinary reason, got %v", details.Reasons)
	}

	// A failed approval leaves the record in draft.
	rec := getJSON(t, client, ts.URL+"/api/v1/promotions/"+recordID)
	var recData struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal(rec, &recData); err != nil {
		t.Fatalf("failed to decode record: %v", err)
	}
	if recData.State != "draft" {
		t.Fatalf("expected record to stay draft, got %q", recData.State)
	}
}

func createEmployee(t *testing.T, client *http.Client, baseURL string, payload map[string]any) string {
	t.Helper()
	data := postJSON(t, client, baseURL+"/api/v1/employees", payload, http.StatusCreated)
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("failed to decode created employee: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected employee id")
	}
	return created.ID
}

func createDraft(t *testing.T, client *http.Client, baseURL, employeeID string) string {
	t.Helper()
	data := postJSON(t, client, baseURL+"/api/v1/promotions", map[string]any{
		"employeeId":    employeeID,
		"newGradeLevel": "8",
		"newRank":       "Principal Officer",
		"effectiveDate": time.Now().UTC().Format("2006-01-02"),
	}, http.StatusCreated)
	var created struct {
		ID    string `json:"id"`
		State string `json:"state"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("failed to decode created record: %v", err)
	}
	if created.State != "draft" {
		t.Fatalf("expected new record in draft, got %q", created.State)
	}
	return created.ID
}

func doPost(t *testing.T, client *http.Client, url string, payload map[string]any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func postJSON(t *testing.T, client *http.Client, url string, payload map[string]any, wantStatus int) json.RawMessage {
	t.Helper()
	resp := doPost(t, client, url, payload)
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("expected status %d for %s, got %d", wantStatus, url, resp.StatusCode)
	}
	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body.Data
}

func getJSON(t *testing.T, client *http.Client, url string) json.RawMessage {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for %s, got %d", url, resp.StatusCode)
	}
	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body.Data
}
