package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func TestSafeFilename(t *testing.T) {
	cases := map[string]string{
		"Ada Lovelace":     "ada-lovelace",
		"  O'Brien, Jr. ":  "o-brien-jr",
		"../../etc/passwd": "etc-passwd",
		"Zoë":              "zo",
		"":                 "employee",
		"***":              "employee",
	}
	for in, want := range cases {
		if got := SafeFilename(in); got != want {
			t.Fatalf("SafeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPathParamDecodesSlash(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Get("/docs/{doc}", func(w http.ResponseWriter, req *http.Request) {
		got = PathParam(req, "doc")
	})
	req := httptest.NewRequest(http.MethodGet, "/docs/Tax%20Forms%20%28W-4%2FW-9%29", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if got != "Tax Forms (W-4/W-9)" {
		t.Fatalf("unexpected param %q", got)
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	if DecodeJSON(rec, req, &dst, "req-1") {
		t.Fatal("expected unknown field to be rejected")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	if !DecodeJSON(rec, req, &dst, "req-2") {
		t.Fatal("expected empty body to be accepted")
	}
}

func TestValidatorCollectsSortedIssues(t *testing.T) {
	v := NewValidator()
	v.Required("name", " ", "is required")
	v.Email("email", "not-an-email")
	v.IntRange("ratings.support", 11, 1, 10)
	v.Enum("department", "Sales", []string{"Engineering"}, "unknown department")
	if _, ok := v.Date("startDate", "2026-13-01"); ok {
		t.Fatal("expected invalid date")
	}

	issues := v.Issues()
	if len(issues) != 5 {
		t.Fatalf("expected 5 issues, got %+v", issues)
	}
	if issues[0].Field != "department" || issues[len(issues)-1].Field != "startDate" {
		t.Fatalf("expected issues sorted by field, got %+v", issues)
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2026-03-12T14:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !got.Equal(time.Date(2026, 3, 12, 14, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", got)
	}
	if _, err := ParseDateTime("tomorrow"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParsePaginationBounds(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees?limit=900&offset=3", nil)
	page := ParsePagination(req, 100, 500)
	if page.Limit != 500 || page.Offset != 3 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if start, end := page.Bounds(2); start != 2 || end != 2 {
		t.Fatalf("expected empty window past the end, got %d..%d", start, end)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/employees?limit=-1&offset=abc", nil)
	page = ParsePagination(req, 2, 500)
	if page.Limit != 2 || page.Offset != 0 {
		t.Fatalf("expected defaults for malformed values, got %+v", page)
	}
	if start, end := page.Bounds(5); start != 0 || end != 2 {
		t.Fatalf("unexpected window %d..%d", start, end)
	}

	rec := httptest.NewRecorder()
	SetTotalCount(rec, 7)
	if rec.Header().Get(TotalCountHeader) != "7" {
		t.Fatalf("unexpected total header %q", rec.Header().Get(TotalCountHeader))
	}
}
