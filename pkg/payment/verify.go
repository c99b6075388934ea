package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// verifiedMessage is the sentinel the verification backend returns once it
// has confirmed the charge with the provider and saved the order.
const verifiedMessage = "Payment verified and saved"

// ErrUnverified is returned when the verification backend responds but does
// not confirm the payment. A client-reported success alone is never trusted.
var ErrUnverified = errors.New("payment not verified by backend")

// VerifyResponse is the verification backend's reply shape.
type VerifyResponse struct {
	Message string `json:"message"`
	Data    struct {
		Status string `json:"status"`
	} `json:"data"`
}

// Confirmed reports whether the response explicitly confirms the charge:
// the verified-and-saved sentinel plus a successful inner status.
func (r *VerifyResponse) Confirmed() bool {
	return r.Message == verifiedMessage && r.Data.Status == StatusSuccessful
}

// Verifier confirms a payment's final status server-side, independent of
// the client-reported result.
type Verifier interface {
	Verify(ctx context.Context, transactionID string) error
}

// VerificationClient calls the remote verify endpoint with the provider
// transaction id. All calls run through a circuit breaker; an open breaker
// surfaces the same way as any other verification failure.
type VerificationClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*VerifyResponse]
}

func NewVerificationClient(endpoint, apiKey string) *VerificationClient {
	return &VerificationClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker[*VerifyResponse](gobreaker.Settings{
			Name:    "payment-verify",
			Timeout: 30 * time.Second,
		}),
	}
}

// Verify returns nil only when the backend explicitly confirms the charge.
// Network failures, timeouts, non-2xx statuses, malformed bodies and
// unconfirmed responses all come back as errors wrapping ErrUnverified or
// the transport error.
func (c *VerificationClient) Verify(ctx context.Context, transactionID string) error {
	result, err := c.breaker.Execute(func() (*VerifyResponse, error) {
		return c.call(ctx, transactionID)
	})
	if err != nil {
		return fmt.Errorf("verify transaction %s: %w", transactionID, err)
	}
	if !result.Confirmed() {
		return fmt.Errorf("verify transaction %s: message=%q status=%q: %w",
			transactionID, result.Message, result.Data.Status, ErrUnverified)
	}
	return nil
}

func (c *VerificationClient) call(ctx context.Context, transactionID string) (*VerifyResponse, error) {
	body, err := json.Marshal(map[string]string{"transaction_id": transactionID})
	if err != nil {
		return nil, fmt.Errorf("marshal verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("verify endpoint returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read verify response: %w", err)
	}

	var parsed VerifyResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal verify response: %w", err)
	}
	return &parsed, nil
}
