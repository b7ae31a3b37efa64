//go:build unit
// +build unit

package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dannykhan02/Ticketing-system/internal/domain/payments"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPaystack(t *testing.T, handler http.HandlerFunc) payments.Provider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider, err := NewPaystackConnector(&config.PaystackSettings{
		SecretKey: "sk_test_secret",
		BaseURL:   server.URL,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return provider
}

func TestPaystackConnector_Verify_Success(t *testing.T) {
	provider := setupPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/ref-123", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"status":true,"data":{"status":"success","amount":150000}}`))
	})

	verification, err := provider.Verify(context.Background(), "ref-123")
	require.NoError(t, err)
	assert.True(t, verification.Succeeded)
	assert.Equal(t, 1500.0, verification.Amount)
	assert.Equal(t, "ref-123", verification.Reference)
}

func TestPaystackConnector_Verify_Failed(t *testing.T) {
	provider := setupPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"data":{"status":"abandoned","amount":150000}}`))
	})

	verification, err := provider.Verify(context.Background(), "ref-123")
	require.NoError(t, err)
	assert.False(t, verification.Succeeded)
}

func TestPaystackConnector_Verify_ServerError(t *testing.T) {
	provider := setupPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	verification, err := provider.Verify(context.Background(), "ref-123")
	assert.Error(t, err)
	assert.Nil(t, verification)
}

func TestPaystackConnector_Refund(t *testing.T) {
	provider := setupPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/refund", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":true,"message":"Refund queued"}`))
	})

	err := provider.Refund(context.Background(), "ref-123", 500)
	require.NoError(t, err)
}

func TestPaystackConnector_Refund_Rejected(t *testing.T) {
	provider := setupPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":false,"message":"Transaction not found"}`))
	})

	err := provider.Refund(context.Background(), "ref-404", 500)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Transaction not found")
}

func TestNewPaystackConnector_MissingSecret(t *testing.T) {
	_, err := NewPaystackConnector(&config.PaystackSettings{}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestPaystackConnector_Name(t *testing.T) {
	provider := setupPaystack(t, func(w http.ResponseWriter, r *http.Request) {})
	assert.Equal(t, payments.MethodPaystack, provider.Name())
}
