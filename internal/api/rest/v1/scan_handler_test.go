//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupScanRouter(t *testing.T, mockScanService *MockScanService) (*gin.Engine, string) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	issuer := token.NewIssuer("scan-test-secret", time.Hour)

	handler := NewScanHandler(mockScanService)
	r.GET("/validate_ticket", RequireAuth(issuer), handler.ValidateFromQuery)
	r.POST("/validate_ticket", RequireAuth(issuer), handler.ValidateFromBody)

	accessToken, err := issuer.Generate("scanner-1", "gate@example.com", "SECURITY")
	require.NoError(t, err)

	return r, accessToken
}

func TestScanHandler_ValidateFromQuery_Success(t *testing.T) {
	mockScanService := new(MockScanService)
	scannedAt := time.Now().UTC().Truncate(time.Second)
	mockScanService.On("ValidateQRCode", mock.Anything, "scanner-1", "signed-token").Return(&tickets.ScanResult{
		TicketID:  "ticket-1",
		EventID:   "event-1",
		ScannedAt: scannedAt,
		ScannedBy: "scanner-1",
	}, nil)

	r, accessToken := setupScanRouter(t, mockScanService)

	req, _ := http.NewRequest("GET", "/validate_ticket?id=signed-token", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ticket-1", response.TicketID)
	assert.Equal(t, "scanner-1", response.ScannedBy)
	mockScanService.AssertExpectations(t)
}

func TestScanHandler_ValidateFromQuery_MissingID(t *testing.T) {
	r, accessToken := setupScanRouter(t, new(MockScanService))

	req, _ := http.NewRequest("GET", "/validate_ticket", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScanHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"Already scanned maps to conflict", tickets.ErrAlreadyScanned, http.StatusConflict},
		{"Unknown ticket maps to not found", tickets.ErrTicketNotFound, http.StatusNotFound},
		{"Tampered code maps to bad request", tickets.ErrInvalidQRCode, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockScanService := new(MockScanService)
			mockScanService.On("ValidateQRCode", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.serviceErr)

			r, accessToken := setupScanRouter(t, mockScanService)

			body, _ := json.Marshal(ScanRequest{QRContent: "scanned-content"})
			req, _ := http.NewRequest("POST", "/validate_ticket", bytes.NewReader(body))
			req.Header.Set("Authorization", "Bearer "+accessToken)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestScanHandler_RejectsAnonymous(t *testing.T) {
	r, _ := setupScanRouter(t, new(MockScanService))

	req, _ := http.NewRequest("GET", "/validate_ticket?id=signed-token", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
