package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/payments"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
)

const defaultPaystackBaseURL = "https://api.paystack.co"

type paystackConnector struct {
	secretKey string
	baseURL   string
	client    *http.Client
	logger    logger.Logger
}

// NewPaystackConnector creates a payments.Provider backed by the Paystack API.
func NewPaystackConnector(settings *config.PaystackSettings, logger logger.Logger) (payments.Provider, error) {
	if settings.SecretKey == "" {
		return nil, fmt.Errorf("paystack secret key must not be empty")
	}

	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = defaultPaystackBaseURL
	}

	return &paystackConnector{
		secretKey: settings.SecretKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
	}, nil
}

func (c *paystackConnector) Name() string {
	return payments.MethodPaystack
}

func (c *paystackConnector) Verify(ctx context.Context, reference string) (*payments.Verification, error) {
	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			Status string `json:"status"`
			// Paystack reports amounts in the currency subunit.
			Amount int64 `json:"amount"`
		} `json:"data"`
	}

	url := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, reference)
	if err := c.do(ctx, http.MethodGet, url, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to verify paystack transaction: %w", err)
	}

	verification := &payments.Verification{
		Reference: reference,
		Amount:    float64(resp.Data.Amount) / 100,
		Succeeded: resp.Status && resp.Data.Status == "success",
	}

	c.logger.Info("Verified paystack reference ", reference)
	return verification, nil
}

func (c *paystackConnector) Refund(ctx context.Context, reference string, amount float64) error {
	body := map[string]interface{}{
		"transaction": reference,
		"amount":      int64(amount * 100),
	}

	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}

	url := c.baseURL + "/refund"
	if err := c.do(ctx, http.MethodPost, url, body, &resp); err != nil {
		return fmt.Errorf("failed to refund paystack transaction: %w", err)
	}
	if !resp.Status {
		return fmt.Errorf("paystack refund rejected: %s", resp.Message)
	}

	c.logger.Info("Refunded paystack reference ", reference)
	return nil
}

func (c *paystackConnector) do(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	var reader *strings.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = strings.NewReader(string(data))
	} else {
		reader = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
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
