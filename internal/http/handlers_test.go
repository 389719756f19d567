package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"khata/internal/core"
	"khata/internal/store/memory"
)

func newTestServer(t *testing.T) (*memory.Store, http.Handler) {
	t.Helper()
	st := memory.New()
	srv := NewServer(":0", st, st)
	return st, srv.Handler
}

func seedDebit(t *testing.T, st *memory.Store, paise int64, merchant string, ts time.Time) int64 {
	t.Helper()
	id, err := st.Insert(context.Background(), core.Transaction{
		Amount:    core.Money{Paise: paise},
		Merchant:  merchant,
		Type:      core.Debit,
		Timestamp: ts.UnixMilli(),
	})
	if err != nil {
		t.Fatalf("seed insert: %v", err)
	}
	return id
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func TestHealthz(t *testing.T) {
	_, h := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestDashboardMonth(t *testing.T) {
	st, h := newTestServer(t)
	march := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	seedDebit(t, st, 12000, "Zomato", march)
	seedDebit(t, st, 30000, "Uber", march.Add(time.Hour))
	seedDebit(t, st, 5000, "Swiggy", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))

	rec, body := doJSON(t, h, http.MethodGet, "/api/dashboard?year=2025&month=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	if body["total"] != "420.00" {
		t.Errorf("total = %v, want 420.00", body["total"])
	}
	if body["budget"] != "5000.00" {
		t.Errorf("budget = %v, want default 5000.00", body["budget"])
	}
	if body["remaining"] != "4580.00" {
		t.Errorf("remaining = %v, want 4580.00", body["remaining"])
	}

	insight, ok := body["insight"].(map[string]any)
	if !ok {
		t.Fatalf("insight missing: %v", body)
	}
	if insight["tier"] != "good" {
		t.Errorf("insight.tier = %v, want good", insight["tier"])
	}
	if insight["color"] != "#FFFFFF" {
		t.Errorf("insight.color = %v, want #FFFFFF", insight["color"])
	}

	recent, ok := body["recent"].([]any)
	if !ok || len(recent) != 2 {
		t.Fatalf("recent = %v, want 2 entries", body["recent"])
	}
	first := recent[0].(map[string]any)
	if first["merchant"] != "Uber" {
		t.Errorf("recent[0].merchant = %v, want newest first", first["merchant"])
	}
	if first["category"] != "Travel" {
		t.Errorf("recent[0].category = %v, want Travel", first["category"])
	}
	if first["color"] != "#4A90E2" {
		t.Errorf("recent[0].color = %v, want #4A90E2", first["color"])
	}
}

func TestDashboardRejectsPartialPeriod(t *testing.T) {
	_, h := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodGet, "/api/dashboard?year=2025", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when month is missing", rec.Code)
	}
}

func TestDashboardAllTime(t *testing.T) {
	st, h := newTestServer(t)
	seedDebit(t, st, 1000, "Zomato", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	seedDebit(t, st, 2000, "Uber", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

	rec, body := doJSON(t, h, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["total"] != "30.00" {
		t.Errorf("total = %v, want 30.00 across all months", body["total"])
	}
}

func TestAddTransaction(t *testing.T) {
	st, h := newTestServer(t)

	rec, body := doJSON(t, h, http.MethodPost, "/api/transactions",
		`{"description":"Chai with friends","amount":"45.50"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body["merchant"] != "Chai with friends" {
		t.Errorf("merchant = %v", body["merchant"])
	}
	if body["amount"] != "45.50" {
		t.Errorf("amount = %v, want 45.50", body["amount"])
	}
	if body["type"] != "DEBIT" {
		t.Errorf("type = %v, want DEBIT", body["type"])
	}

	count, err := st.Count(context.Background())
	if err != nil || count != 1 {
		t.Errorf("count = %d (%v), want 1", count, err)
	}
}

func TestAddTransactionRejectsBadAmount(t *testing.T) {
	_, h := newTestServer(t)

	for _, amount := range []string{"0", "-5", "abc", ""} {
		rec, _ := doJSON(t, h, http.MethodPost, "/api/transactions",
			`{"description":"x","amount":"`+amount+`"}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("amount %q: status = %d, want 422", amount, rec.Code)
		}
	}
}

func TestDeleteAndRestoreTransaction(t *testing.T) {
	st, h := newTestServer(t)
	ts := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	id := seedDebit(t, st, 12000, "Zomato", ts)

	rec, _ := doJSON(t, h, http.MethodDelete, "/api/transactions/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	if err := st.Delete(context.Background(), id); err == nil {
		t.Error("transaction still present after delete")
	}

	rec, body := doJSON(t, h, http.MethodPost, "/api/transactions/restore",
		`{"merchant":"Zomato","amount":"120.00","type":"DEBIT","timestamp":1741608000000}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("restore status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body["id"] == float64(id) {
		t.Error("restored transaction must get a fresh id")
	}
	if body["merchant"] != "Zomato" || body["amount"] != "120.00" {
		t.Errorf("restored payload mismatch: %v", body)
	}
}

func TestDeleteMissingTransaction(t *testing.T) {
	_, h := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodDelete, "/api/transactions/99", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestBudgetRoundTrip(t *testing.T) {
	_, h := newTestServer(t)

	rec, body := doJSON(t, h, http.MethodGet, "/api/budget", "")
	if rec.Code != http.StatusOK || body["budget"] != "5000.00" {
		t.Fatalf("default budget = %v (status %d), want 5000.00", body["budget"], rec.Code)
	}

	rec, body = doJSON(t, h, http.MethodPut, "/api/budget", `{"budget":"7500"}`)
	if rec.Code != http.StatusOK || body["budget"] != "7500.00" {
		t.Fatalf("set budget = %v (status %d), want 7500.00", body["budget"], rec.Code)
	}

	rec, body = doJSON(t, h, http.MethodGet, "/api/budget", "")
	if rec.Code != http.StatusOK || body["budget"] != "7500.00" {
		t.Errorf("budget after set = %v, want 7500.00", body["budget"])
	}
}

func TestSetBudgetRejectsInvalid(t *testing.T) {
	_, h := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodPut, "/api/budget", `{"budget":"-10"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}
