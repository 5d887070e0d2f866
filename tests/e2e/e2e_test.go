//go:build integration

package e2e

// End-to-end integration tests against real Postgres + Redis via
// testcontainers. Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"invtrack/internal/config"
	"invtrack/internal/infra"
	"invtrack/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test environment ─────────────────────────────────────────────────────────

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("invtrack_test"),
		tcPostgres.WithUsername("invtrack"),
		tcPostgres.WithPassword("invtrack"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		WorkerPoolSize:     1,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		CORSAllowedOrigins: "http://localhost:3000",
		ForecastTimeoutMS:  2000,
		ExpirySweepHours:   24,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)
	return srv
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_ItemLifecycleWithAlerts(t *testing.T) {
	srv := setupTestServer(t)

	// Create an item above its threshold: no alert.
	createResp := do(t, srv, "POST", "/items/", jsonBody(t, map[string]any{
		"itemName":          "Flour",
		"category":          "Baking",
		"quantity":          40,
		"unit":              "kg",
		"lowStockThreshold": 10,
	}))
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	var item struct {
		ID       int    `json:"id"`
		Name     string `json:"itemName"`
		Quantity int    `json:"quantity"`
	}
	decodeJSON(t, createResp, &item)
	require.NotZero(t, item.ID)

	alerts := listAlerts(t, srv)
	assert.Empty(t, alerts)

	// Drop the quantity below the threshold: exactly one Low Stock alert.
	updResp := do(t, srv, "PUT", "/items/"+itoa(item.ID), jsonBody(t, map[string]any{"quantity": 5}))
	require.Equal(t, http.StatusOK, updResp.StatusCode)
	updResp.Body.Close()

	alerts = listAlerts(t, srv)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Low Stock", alerts[0].Kind)

	// Restock: the alert clears.
	updResp = do(t, srv, "PUT", "/items/"+itoa(item.ID), jsonBody(t, map[string]any{"quantity": 50}))
	require.Equal(t, http.StatusOK, updResp.StatusCode)
	updResp.Body.Close()

	assert.Empty(t, listAlerts(t, srv))
}

func TestE2E_TransactionsMoveStock(t *testing.T) {
	srv := setupTestServer(t)

	createResp := do(t, srv, "POST", "/items/", jsonBody(t, map[string]any{
		"itemName":          "Sugar",
		"category":          "Baking",
		"quantity":          20,
		"unit":              "kg",
		"lowStockThreshold": 5,
	}))
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	var item struct {
		ID int `json:"id"`
	}
	decodeJSON(t, createResp, &item)

	// Sale of 8 takes stock to 12.
	saleResp := do(t, srv, "POST", "/transactions/", jsonBody(t, map[string]any{
		"date":        time.Now().Format("2006-01-02"),
		"description": "weekend sale",
		"amount":      "240.00",
		"quantity":    8,
		"type":        "sale",
		"itemId":      item.ID,
	}))
	require.Equal(t, http.StatusCreated, saleResp.StatusCode)
	var txn struct {
		ID       int    `json:"id"`
		Category string `json:"category"`
		Status   string `json:"status"`
	}
	decodeJSON(t, saleResp, &txn)
	assert.Equal(t, "General", txn.Category)
	assert.Equal(t, "Completed", txn.Status)

	getResp := do(t, srv, "GET", "/items/"+itoa(item.ID), nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var stored struct {
		Quantity int `json:"quantity"`
	}
	decodeJSON(t, getResp, &stored)
	assert.Equal(t, 12, stored.Quantity)

	// Deleting the transaction does not restore stock.
	delResp := do(t, srv, "DELETE", "/transactions/"+itoa(txn.ID), nil)
	require.Equal(t, http.StatusOK, delResp.StatusCode)
	delResp.Body.Close()

	getResp = do(t, srv, "GET", "/items/"+itoa(item.ID), nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	decodeJSON(t, getResp, &stored)
	assert.Equal(t, 12, stored.Quantity)
}

func TestE2E_OrphanTransactionPersists(t *testing.T) {
	srv := setupTestServer(t)

	resp := do(t, srv, "POST", "/transactions/", jsonBody(t, map[string]any{
		"date":        time.Now().Format("2006-01-02"),
		"description": "legacy import",
		"amount":      "99.50",
		"quantity":    3,
		"type":        "sale",
		"itemId":      424242,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	listResp := do(t, srv, "GET", "/transactions/", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var txns []struct {
		Description string `json:"description"`
	}
	decodeJSON(t, listResp, &txns)
	require.Len(t, txns, 1)
	assert.Equal(t, "legacy import", txns[0].Description)
}

func TestE2E_ForecastEndpoint(t *testing.T) {
	srv := setupTestServer(t)

	resp := do(t, srv, "POST", "/api/forecast", jsonBody(t, map[string]any{
		"product":      "Flour",
		"currentStock": 40,
		"salesData":    "10,12,11,13,14,15,16,15,17,18",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Product  string    `json:"product"`
		Forecast []float64 `json:"forecast"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Flour", body.Product)
	assert.Len(t, body.Forecast, 6)
}

func TestE2E_SupplierDefaults(t *testing.T) {
	srv := setupTestServer(t)

	resp := do(t, srv, "POST", "/suppliers/", jsonBody(t, map[string]any{
		"supplierName": "Acme Foods",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sup struct {
		Name   string `json:"supplierName"`
		Email  string `json:"email"`
		Status string `json:"status"`
	}
	decodeJSON(t, resp, &sup)
	assert.Equal(t, "Acme Foods", sup.Name)
	assert.Equal(t, "No email", sup.Email)
	assert.Equal(t, "Active", sup.Status)
}

// ── Small helpers ────────────────────────────────────────────────────────────

type alertView struct {
	Kind   string `json:"type"`
	Title  string `json:"title"`
	ItemID *int   `json:"itemId"`
}

func listAlerts(t *testing.T, srv *httptest.Server) []alertView {
	t.Helper()
	resp := do(t, srv, "GET", "/alerts/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var alerts []alertView
	decodeJSON(t, resp, &alerts)
	return alerts
}

func itoa(v int) string { return strconv.Itoa(v) }
