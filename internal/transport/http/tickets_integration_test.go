package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amandzaa/TiketQ-preVI/internal/app"
	"github.com/amandzaa/TiketQ-preVI/internal/clock"
	"github.com/amandzaa/TiketQ-preVI/internal/storage/postgres"
	"github.com/amandzaa/TiketQ-preVI/internal/testutil"
)

// TestTicketLifecycle_HTTPIntegration drives the whole surface end to end:
// create, mark used, filtered listing, delete, and the 404 afterlife.
func TestTicketLifecycle_HTTPIntegration(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateTickets(t, ctx, pool)

	now := time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC)
	repo := postgres.NewTicketRepository(pool)
	svc := app.NewTicketService(repo, clock.NewFixed(now))

	mux := http.NewServeMux()
	mux.HandleFunc("/health", HealthHandler)
	mux.Handle("/tickets", HandleTickets(svc))
	mux.Handle("/tickets/", HandleTicketByID(svc))

	do := func(method, path, body string) *httptest.ResponseRecorder {
		t.Helper()
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		}
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodPost, "/tickets", `{"eventName":"Rock Concert","location":"Stadium Arena","time":"2999-01-01T00:00:00","isUsed":false}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created ticketResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1 on fresh table, got %d", created.ID)
	}
	if created.IsUsed {
		t.Fatalf("expected isUsed false")
	}

	rec = do(http.MethodPatch, "/tickets/1", `{"isUsed":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var patched ticketResponse
	if err := json.NewDecoder(rec.Body).Decode(&patched); err != nil {
		t.Fatalf("decode patch response: %v", err)
	}
	if !patched.IsUsed {
		t.Fatalf("expected isUsed true after patch")
	}
	if patched.EventName != created.EventName || patched.Location != created.Location || !patched.Time.Equal(created.Time) {
		t.Fatalf("expected only isUsed to change: %+v vs %+v", patched, created)
	}

	rec = do(http.MethodGet, "/tickets?isUsed=false", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list unused: expected 200, got %d", rec.Code)
	}
	var unused []ticketResponse
	if err := json.NewDecoder(rec.Body).Decode(&unused); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(unused) != 0 {
		t.Fatalf("expected empty unused list, got %+v", unused)
	}

	rec = do(http.MethodGet, "/tickets?isUsed=true", "")
	var used []ticketResponse
	if err := json.NewDecoder(rec.Body).Decode(&used); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(used) != 1 || used[0].ID != 1 {
		t.Fatalf("expected ticket 1 in used list, got %+v", used)
	}

	rec = do(http.MethodDelete, "/tickets/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}

	if rec = do(http.MethodGet, "/tickets/1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
	if rec = do(http.MethodPatch, "/tickets/1", `{"isUsed":false}`); rec.Code != http.StatusNotFound {
		t.Fatalf("patch after delete: expected 404, got %d", rec.Code)
	}
	if rec = do(http.MethodDelete, "/tickets/1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("delete after delete: expected 404, got %d", rec.Code)
	}
}

// TestCreate_PastTimeRejected_HTTPIntegration pins the future-time rule to
// the injected clock rather than the wall clock.
func TestCreate_PastTimeRejected_HTTPIntegration(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateTickets(t, ctx, pool)

	now := time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC)
	svc := app.NewTicketService(postgres.NewTicketRepository(pool), clock.NewFixed(now))

	body := []byte(`{"eventName":"Rock Concert","location":"Stadium Arena","time":"2025-01-04T09:59:59"}`)
	req := httptest.NewRequest(http.MethodPost, "/tickets", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	HandleTickets(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp validationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Fields["time"] != "Time must be in the future." {
		t.Fatalf("unexpected field errors: %v", resp.Fields)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count); err != nil {
		t.Fatalf("count tickets: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no partial write, got %d rows", count)
	}
}
