// handler/health_handler_test.go
package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	r, _, _, cleanup := newTestServer(t)
	defer cleanup()

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	expectedBody := `{"status":"Bank admin API is healthy and running"}`
	assert.JSONEq(t, expectedBody, rr.Body.String())
}
