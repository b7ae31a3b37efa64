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

func setupMpesa(t *testing.T, handler http.HandlerFunc) payments.Provider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider, err := NewMpesaConnector(&config.MpesaSettings{
		ConsumerKey:    "consumer-key",
		ConsumerSecret: "consumer-secret",
		ShortCode:      "174379",
		PassKey:        "pass-key",
		BaseURL:        server.URL,
		CallbackURL:    "https://tickets.example.com/callbacks/mpesa",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return provider
}

func TestMpesaConnector_Verify_Success(t *testing.T) {
	provider := setupMpesa(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v1/generate":
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "consumer-key", user)
			assert.Equal(t, "consumer-secret", pass)
			_, _ = w.Write([]byte(`{"access_token":"token-abc","expires_in":"3599"}`))
		case "/mpesa/stkpushquery/v1/query":
			assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"ResponseCode":"0","ResultCode":"0","ResultDesc":"Success","Amount":"2500"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	verification, err := provider.Verify(context.Background(), "ws_CO_123")
	require.NoError(t, err)
	assert.True(t, verification.Succeeded)
	assert.Equal(t, 2500.0, verification.Amount)
}

func TestMpesaConnector_Verify_Failed(t *testing.T) {
	provider := setupMpesa(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v1/generate":
			_, _ = w.Write([]byte(`{"access_token":"token-abc","expires_in":"3599"}`))
		default:
			_, _ = w.Write([]byte(`{"ResponseCode":"0","ResultCode":"1032","ResultDesc":"Cancelled by user"}`))
		}
	})

	verification, err := provider.Verify(context.Background(), "ws_CO_123")
	require.NoError(t, err)
	assert.False(t, verification.Succeeded)
}

func TestMpesaConnector_AuthFailure(t *testing.T) {
	provider := setupMpesa(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	verification, err := provider.Verify(context.Background(), "ws_CO_123")
	assert.Error(t, err)
	assert.Nil(t, verification)
}

func TestNewMpesaConnector_MissingCredentials(t *testing.T) {
	_, err := NewMpesaConnector(&config.MpesaSettings{}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestMpesaConnector_Name(t *testing.T) {
	provider := setupMpesa(t, func(w http.ResponseWriter, r *http.Request) {})
	assert.Equal(t, payments.MethodMpesa, provider.Name())
}
