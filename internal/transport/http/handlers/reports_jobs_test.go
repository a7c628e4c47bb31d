package handlers_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestExportsAndDashboard(t *testing.T) {
	_, ts := newTestServer(t, testConfig())
	client := ts.Client()
	base := ts.URL

	registerEmployee(t, client, base, "Ada Lovelace", time.Now().AddDate(0, 0, -3))
	registerEmployee(t, client, base, "Alan Turing", time.Now())
	sendJSON(t, client, http.MethodPost, path(base, "employees", "Ada Lovelace", "meetings"), map[string]string{
		"type": "Direct Manager 1:1", "scheduledAt": time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339), "duration": "30 min",
	}, http.StatusCreated)

	resp, raw := doRequest(t, client, http.MethodGet, path(base, "employees", "Ada Lovelace", "export", "summary.pdf"), nil, nil)
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "application/pdf" {
		t.Fatalf("unexpected pdf response: %d %s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatal("expected pdf body")
	}
	if !strings.Contains(resp.Header.Get("Content-Disposition"), `filename="ada-lovelace-onboarding.pdf"`) {
		t.Fatalf("unexpected disposition %q", resp.Header.Get("Content-Disposition"))
	}

	resp, raw = doRequest(t, client, http.MethodGet, path(base, "employees", "Ada Lovelace", "export", "meetings.ics"), nil, nil)
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/calendar") {
		t.Fatalf("unexpected ics response: %d", resp.StatusCode)
	}
	if strings.Count(string(raw), "BEGIN:VEVENT") != 1 {
		t.Fatalf("expected one event:\n%s", raw)
	}

	resp, raw = doRequest(t, client, http.MethodGet, path(base, "reports", "roster.xlsx"), nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected roster status %d", resp.StatusCode)
	}
	book, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open roster: %v", err)
	}
	defer book.Close()
	rows, err := book.GetRows("Roster")
	if err != nil {
		t.Fatalf("read roster: %v", err)
	}
	if len(rows) != 3 || rows[1][0] != "Ada Lovelace" {
		t.Fatalf("unexpected roster rows: %v", rows)
	}

	missing := sendJSON(t, client, http.MethodGet, path(base, "employees", "Nobody", "export", "summary.pdf"), nil, http.StatusNotFound)
	assertErrorCode(t, missing, "not_found")

	dashboard := decode[struct {
		ActiveEmployees   int `json:"activeEmployees"`
		PendingDocuments  int `json:"pendingDocuments"`
		AverageCompletion int `json:"averageCompletion"`
		Completion        []struct {
			Label string `json:"label"`
		} `json:"completion"`
	}](t, getJSON(t, client, path(base, "reports", "dashboard")))
	if dashboard.ActiveEmployees != 2 || dashboard.PendingDocuments != 16 || len(dashboard.Completion) != 2 {
		t.Fatalf("unexpected dashboard: %+v", dashboard)
	}

	catalog := decode[struct {
		Departments  []string `json:"departments"`
		MeetingTypes []string `json:"meetingTypes"`
		Equipment    []string `json:"equipment"`
	}](t, getJSON(t, client, path(base, "catalog")))
	if len(catalog.Departments) != 10 || len(catalog.MeetingTypes) != 10 || len(catalog.Equipment) != 7 {
		t.Fatalf("unexpected catalog: %+v", catalog)
	}

	resp, _ = doRequest(t, client, http.MethodGet, path(base, "employees")+"?q=ada", nil, nil)
	if resp.Header.Get("X-Total-Count") != "1" {
		t.Fatalf("expected one search match, got %s", resp.Header.Get("X-Total-Count"))
	}
}

func TestReminderSweepDeduplicates(t *testing.T) {
	_, ts := newTestServer(t, testConfig())
	client := ts.Client()
	base := ts.URL

	registerEmployee(t, client, base, "Grace Hopper", time.Now().AddDate(0, 0, -20))
	registerEmployee(t, client, base, "Katherine Johnson", time.Now().AddDate(0, 0, 30))

	type sweep struct {
		Reminders  int `json:"reminders"`
		Dispatched int `json:"dispatched"`
	}
	first := decode[sweep](t, postJSON(t, client, path(base, "reminders", "run"), nil))
	if first.Reminders != 6 || first.Dispatched != 6 {
		t.Fatalf("unexpected first sweep: %+v", first)
	}
	second := decode[sweep](t, postJSON(t, client, path(base, "reminders", "run"), nil))
	if second.Reminders != 6 || second.Dispatched != 0 {
		t.Fatalf("expected repeat sweep to add nothing, got %+v", second)
	}

	resp, raw := doRequest(t, client, http.MethodGet, path(base, "notifications")+"?employee=Grace%20Hopper&unread=true", nil, nil)
	if resp.StatusCode != http.StatusOK || resp.Header.Get("X-Total-Count") != "6" || resp.Header.Get("X-Unread-Count") != "6" {
		t.Fatalf("unexpected feed: %s %s", resp.Header.Get("X-Total-Count"), raw)
	}

	runs := decode[[]struct {
		Type   string `json:"type"`
		Status string `json:"status"`
	}](t, getJSON(t, client, path(base, "jobs", "runs")))
	if len(runs) != 2 || runs[0].Type != "compliance_reminder_sweep" || runs[0].Status != "completed" {
		t.Fatalf("unexpected runs: %+v", runs)
	}

	metrics := decode[map[string]any](t, getJSON(t, client, base+"/metrics"))
	if metrics["reminderSweepsTotal"].(float64) != 2 || metrics["remindersDispatchedTotal"].(float64) != 6 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}
}

func TestValidationErrors(t *testing.T) {
	_, ts := newTestServer(t, testConfig())
	client := ts.Client()
	base := ts.URL

	bad := sendJSON(t, client, http.MethodPost, path(base, "employees"), map[string]any{
		"name":       " ",
		"email":      "not-an-email",
		"department": "Astrology",
		"startDate":  "2026-02-30",
	}, http.StatusBadRequest)
	for _, field := range []string{"name", "email", "department", "role", "startDate"} {
		assertValidationErrorField(t, bad, field)
	}

	malformed := sendJSON(t, client, http.MethodPost, path(base, "employees"), `{"name":`, http.StatusBadRequest)
	assertErrorCode(t, malformed, "invalid_json")
	unknown := sendJSON(t, client, http.MethodPost, path(base, "employees"), `{"name":"A","salary":1}`, http.StatusBadRequest)
	assertErrorCode(t, unknown, "invalid_json")

	registerEmployee(t, client, base, "Barbara Liskov", time.Now())
	status := sendJSON(t, client, http.MethodGet, path(base, "employees", "Barbara Liskov", "documents")+"?status=Lost", nil, http.StatusBadRequest)
	assertValidationErrorField(t, status, "status")

	blank := sendJSON(t, client, http.MethodPost, path(base, "employees", "Barbara Liskov", "equipment", "Headset", "assign"), `{"assignedBy":"   "}`, http.StatusOK)
	if !blank.Success {
		t.Fatal("expected blank assigner to fall back to the actor")
	}
	again := sendJSON(t, client, http.MethodPost, path(base, "employees", "Barbara Liskov", "equipment", "Headset", "assign"), nil, http.StatusConflict)
	assertErrorCode(t, again, "invalid_state")
}

func TestDocumentReuploadFlag(t *testing.T) {
	cfg := testConfig()
	cfg.AllowDocumentReupload = true
	_, ts := newTestServer(t, cfg)
	client := ts.Client()
	base := ts.URL

	registerEmployee(t, client, base, "Edsger Dijkstra", time.Now())
	doc := path(base, "employees", "Edsger Dijkstra", "documents", "Signed Offer Letter")
	postJSON(t, client, doc+"/upload", nil)
	postJSON(t, client, doc+"/reject", nil)
	reuploaded := decode[documentItem](t, postJSON(t, client, doc+"/upload", nil))
	if reuploaded.Status != "Uploaded" {
		t.Fatalf("expected re-upload to succeed, got %s", reuploaded.Status)
	}
}

func TestIdempotentRegistration(t *testing.T) {
	app, ts := newTestServer(t, testConfig())
	client := ts.Client()

	body := map[string]string{
		"name": "Margaret Hamilton", "email": "margaret@example.com", "department": "Engineering",
		"role": "Flight Software Lead", "startDate": "2026-07-01",
	}
	headers := map[string]string{"Idempotency-Key": "register-margaret"}
	first, firstRaw := doRequest(t, client, http.MethodPost, path(ts.URL, "employees"), body, headers)
	if first.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", first.StatusCode, firstRaw)
	}
	replay, replayRaw := doRequest(t, client, http.MethodPost, path(ts.URL, "employees"), body, headers)
	if replay.StatusCode != http.StatusCreated || replay.Header.Get("Idempotent-Replay") != "true" {
		t.Fatalf("expected replayed 201, got %d: %s", replay.StatusCode, replayRaw)
	}
	if !bytes.Equal(firstRaw, replayRaw) {
		t.Fatal("expected identical replay body")
	}
	if app.Onboarding.Store.Len() != 1 {
		t.Fatalf("expected one employee, got %d", app.Onboarding.Store.Len())
	}

	body["role"] = "Director"
	conflict, raw := doRequest(t, client, http.MethodPost, path(ts.URL, "employees"), body, headers)
	if conflict.StatusCode != http.StatusConflict || !strings.Contains(string(raw), "idempotency_conflict") {
		t.Fatalf("expected idempotency conflict, got %d: %s", conflict.StatusCode, raw)
	}
}
