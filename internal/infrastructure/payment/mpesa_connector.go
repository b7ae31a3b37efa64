package payment

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/payments"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/strutil"
)

const defaultMpesaBaseURL = "https://sandbox.safaricom.co.ke"

type mpesaConnector struct {
	settings *config.MpesaSettings
	baseURL  string
	client   *http.Client
	logger   logger.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewMpesaConnector creates a payments.Provider backed by the M-Pesa Daraja
// API.
func NewMpesaConnector(settings *config.MpesaSettings, logger logger.Logger) (payments.Provider, error) {
	if settings.ConsumerKey == "" || settings.ConsumerSecret == "" {
		return nil, fmt.Errorf("mpesa consumer credentials must not be empty")
	}

	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = defaultMpesaBaseURL
	}

	return &mpesaConnector{
		settings: settings,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}, nil
}

func (c *mpesaConnector) Name() string {
	return payments.MethodMpesa
}

func (c *mpesaConnector) Verify(ctx context.Context, reference string) (*payments.Verification, error) {
	token, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString(
		[]byte(c.settings.ShortCode + c.settings.PassKey + timestamp))

	body := map[string]string{
		"BusinessShortCode": c.settings.ShortCode,
		"Password":          password,
		"Timestamp":         timestamp,
		"CheckoutRequestID": reference,
	}

	var resp struct {
		ResponseCode string `json:"ResponseCode"`
		ResultCode   string `json:"ResultCode"`
		ResultDesc   string `json:"ResultDesc"`
		Amount       string `json:"Amount"`
	}

	url := c.baseURL + "/mpesa/stkpushquery/v1/query"
	if err := c.doJSON(ctx, url, token, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to query mpesa transaction: %w", err)
	}

	verification := &payments.Verification{
		Reference: reference,
		Amount:    strutil.ConvertToFloat64(resp.Amount),
		Succeeded: resp.ResultCode == "0",
	}

	c.logger.Info("Queried mpesa reference ", reference)
	return verification, nil
}

func (c *mpesaConnector) Refund(ctx context.Context, reference string, amount float64) error {
	token, err := c.authenticate(ctx)
	if err != nil {
		return err
	}

	body := map[string]interface{}{
		"Initiator":              c.settings.ShortCode,
		"CommandID":              "TransactionReversal",
		"TransactionID":          reference,
		"Amount":                 amount,
		"ReceiverParty":          c.settings.ShortCode,
		"RecieverIdentifierType": "11",
		"ResultURL":              c.settings.CallbackURL,
		"QueueTimeOutURL":        c.settings.CallbackURL,
		"Remarks":                "Ticket refund",
	}

	var resp struct {
		ResponseCode        string `json:"ResponseCode"`
		ResponseDescription string `json:"ResponseDescription"`
	}

	url := c.baseURL + "/mpesa/reversal/v1/request"
	if err := c.doJSON(ctx, url, token, body, &resp); err != nil {
		return fmt.Errorf("failed to reverse mpesa transaction: %w", err)
	}
	if resp.ResponseCode != "0" {
		return fmt.Errorf("mpesa reversal rejected: %s", resp.ResponseDescription)
	}

	c.logger.Info("Reversed mpesa reference ", reference)
	return nil
}

// authenticate fetches (and caches) a Daraja OAuth token.
func (c *mpesaConnector) authenticate(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	url := c.baseURL + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build auth request: %w", err)
	}
	req.SetBasicAuth(c.settings.ConsumerKey, c.settings.ConsumerSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to authenticate with mpesa: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mpesa auth returned status %d", resp.StatusCode)
	}

	var auth struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   string `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", fmt.Errorf("failed to decode auth response: %w", err)
	}

	expiresIn := strutil.ConvertToInt(auth.ExpiresIn)
	if expiresIn <= 0 {
		expiresIn = 3600
	}

	c.accessToken = auth.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(expiresIn-60) * time.Second)
	return c.accessToken, nil
}

func (c *mpesaConnector) doJSON(ctx context.Context, url, token string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
