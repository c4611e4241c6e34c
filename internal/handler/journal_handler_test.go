package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"general-ledger/internal/config"
	"general-ledger/internal/database"
	"general-ledger/internal/router"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	app := fiber.New()
	router.Setup(app, db, nil, &config.Config{AppName: "ledger-test"})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	return resp.StatusCode, decoded
}

func seedChartOverHTTP(t *testing.T, app *fiber.App) (cashID, salesID float64) {
	t.Helper()

	status, resp := doJSON(t, app, http.MethodPost, "/api/v1/account-types", fiber.Map{
		"name":           "Asset",
		"normal_balance": "debit",
	})
	require.Equal(t, http.StatusCreated, status)
	assetType := resp["data"].(map[string]interface{})["id"].(float64)

	status, resp = doJSON(t, app, http.MethodPost, "/api/v1/account-types", fiber.Map{
		"name":               "Revenue",
		"normal_balance":     "credit",
		"cash_flow_category": "operating",
	})
	require.Equal(t, http.StatusCreated, status)
	revenueType := resp["data"].(map[string]interface{})["id"].(float64)

	status, resp = doJSON(t, app, http.MethodPost, "/api/v1/accounts", fiber.Map{
		"account_code":    "1000",
		"account_name":    "Cash",
		"account_type_id": assetType,
	})
	require.Equal(t, http.StatusCreated, status)
	cashID = resp["data"].(map[string]interface{})["id"].(float64)

	status, resp = doJSON(t, app, http.MethodPost, "/api/v1/accounts", fiber.Map{
		"account_code":    "4000",
		"account_name":    "Sales",
		"account_type_id": revenueType,
	})
	require.Equal(t, http.StatusCreated, status)
	salesID = resp["data"].(map[string]interface{})["id"].(float64)
	return cashID, salesID
}

func TestJournalEntryLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	cashID, salesID := seedChartOverHTTP(t, app)

	status, resp := doJSON(t, app, http.MethodPost, "/api/v1/journal-entries", fiber.Map{
		"entry_date":  "2024-01-05",
		"description": "Cash sale",
		"lines": []fiber.Map{
			{"account_id": cashID, "debit_amount": "100"},
			{"account_id": salesID, "credit_amount": "100"},
		},
	})
	require.Equal(t, http.StatusCreated, status)
	entry := resp["data"].(map[string]interface{})
	assert.Equal(t, "JE-001", entry["entry_number"])
	entryID := int(entry["id"].(float64))

	status, resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/journal-entries/%d", entryID), nil)
	require.Equal(t, http.StatusOK, status)
	fetched := resp["data"].(map[string]interface{})
	assert.Len(t, fetched["lines"], 2)

	status, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/journal-entries/%d/reverse", entryID), nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/journal-entries/424242", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUnbalancedEntryRejectedOverHTTP(t *testing.T) {
	app := newTestApp(t)
	cashID, salesID := seedChartOverHTTP(t, app)

	status, resp := doJSON(t, app, http.MethodPost, "/api/v1/journal-entries", fiber.Map{
		"entry_date":  "2024-01-05",
		"description": "Does not balance",
		"lines": []fiber.Map{
			{"account_id": cashID, "debit_amount": "50"},
			{"account_id": salesID, "credit_amount": "40"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, resp["success"])
}

func TestTrialBalanceOverHTTP(t *testing.T) {
	app := newTestApp(t)
	cashID, salesID := seedChartOverHTTP(t, app)

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/journal-entries", fiber.Map{
		"entry_date":  "2024-01-05",
		"description": "Cash sale",
		"lines": []fiber.Map{
			{"account_id": cashID, "debit_amount": "100"},
			{"account_id": salesID, "credit_amount": "100"},
		},
	})
	require.Equal(t, http.StatusCreated, status)

	status, resp := doJSON(t, app, http.MethodGet, "/api/v1/reports/trial-balance?end_date=2024-01-31", nil)
	require.Equal(t, http.StatusOK, status)
	report := resp["data"].(map[string]interface{})
	rows := report["rows"].([]interface{})
	require.Len(t, rows, 2)
	assert.Equal(t, "100", report["total_debit"])
	assert.Equal(t, "100", report["total_credit"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/reports/income-statement?start_date=2024-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, status, "missing end_date must be rejected")
}

func TestReparentCycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	cashID, salesID := seedChartOverHTTP(t, app)

	// Make sales a child of cash, then try to bend cash under sales.
	status, _ := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/accounts/%v/parent", salesID), fiber.Map{
		"parent_account_id": cashID,
	})
	require.Equal(t, http.StatusOK, status)

	status, resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/accounts/%v/parent", cashID), fiber.Map{
		"parent_account_id": salesID,
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, resp["success"])
}
