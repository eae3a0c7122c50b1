package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestListTransactions(t *testing.T) {
	r, dbMock, _, cleanup := newTestServer(t)
	defer cleanup()

	dbMock.ExpectQuery("SELECT (.+) FROM transactions ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tx_type", "amount", "currency", "counterparty", "date", "description", "created_at",
		}).AddRow(
			2, "received", 49.00, "USDT", "TK4y...n3qJ", "08 Feb - 01:41 PM", "Received",
			time.Date(2024, time.February, 8, 13, 41, 0, 0, time.UTC),
		))

	req, _ := http.NewRequest("GET", "/api/transactions", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var payload []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Len(t, payload, 1)
	assert.Equal(t, "received", payload[0]["tx_type"])
}

func TestCreateTransaction(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		r, dbMock, _, cleanup := newTestServer(t)
		defer cleanup()

		dbMock.ExpectQuery("INSERT INTO transactions").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		body := `{"tx_type":"received","amount":49.00,"currency":"USDT","counterparty":"TK4y...n3qJ","description":"Received"}`
		req, _ := http.NewRequest("POST", "/api/transactions", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
		assert.Equal(t, float64(5), payload["id"])
	})

	t.Run("unknown tx_type rejected", func(t *testing.T) {
		r, _, _, cleanup := newTestServer(t)
		defer cleanup()

		body := `{"tx_type":"refund","amount":1.00,"currency":"USD"}`
		req, _ := http.NewRequest("POST", "/api/transactions", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("missing row yields 404", func(t *testing.T) {
		r, dbMock, _, cleanup := newTestServer(t)
		defer cleanup()

		dbMock.ExpectExec(`DELETE FROM transactions WHERE id = \$1`).
			WithArgs(404).
			WillReturnResult(sqlmock.NewResult(0, 0))

		req, _ := http.NewRequest("DELETE", "/api/transactions/404", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		r, _, _, cleanup := newTestServer(t)
		defer cleanup()

		req, _ := http.NewRequest("DELETE", "/api/transactions/abc", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestClearTransactions(t *testing.T) {
	r, dbMock, _, cleanup := newTestServer(t)
	defer cleanup()

	dbMock.ExpectExec(`DELETE FROM transactions`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	req, _ := http.NewRequest("DELETE", "/api/transactions/clear", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, float64(3), payload["cleared"])
}

func TestGenerateTransactions_InvalidParams(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"min_count zero", "min_count=0"},
		{"min_count not a number", "min_count=ten"},
		{"max_amount zero", "max_amount=0"},
		{"min_sent_count negative", "min_sent_count=-1"},
		{"min_sent_count above min_count", "min_count=3&min_sent_count=4"},
		{"start_time in the future", "start_time=2999-01-01T00:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, dbMock, _, cleanup := newTestServer(t)
			defer cleanup()

			req, _ := http.NewRequest("POST", "/api/transactions/generate?"+tc.query, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			// Nothing must be persisted on rejected parameters.
			assert.NoError(t, dbMock.ExpectationsWereMet())
		})
	}
}

func TestGenerateTransactions_PersistsBatch(t *testing.T) {
	r, dbMock, _, cleanup := newTestServer(t)
	defer cleanup()

	// The exact number of generated rows is random, so expectations are
	// matched out of order and surplus insert expectations are tolerated.
	dbMock.MatchExpectationsInOrder(false)

	seedAccountRow(dbMock, "SELECT (.+) FROM accounts")
	dbMock.ExpectQuery("SELECT (.+) FROM transactions ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tx_type", "amount", "currency", "counterparty", "date", "description", "created_at",
		}))

	dbMock.ExpectBegin()
	for i := 0; i < 5; i++ {
		dbMock.ExpectQuery("INSERT INTO transactions").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(i + 1))
	}
	dbMock.ExpectCommit()

	req, _ := http.NewRequest("POST", "/api/transactions/generate?min_count=1&max_amount=100", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.GreaterOrEqual(t, payload["generated"], float64(1))
}
