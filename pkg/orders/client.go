package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Item is one normalized order line from the remote listing.
type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// ItemList normalizes the remote endpoint's polymorphic items field: some
// records carry a JSON array, others a string containing serialized items.
// Either shape decodes into one sequence; anything malformed becomes an
// empty list rather than an error.
type ItemList []Item

func (l *ItemList) UnmarshalJSON(b []byte) error {
	var arr []Item
	if err := json.Unmarshal(b, &arr); err == nil {
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		var inner []Item
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			*l = inner
			return nil
		}
	}

	log.Printf("orders: unparseable items field, falling back to empty list: %s", string(b))
	*l = ItemList{}
	return nil
}

// Order is one record from the remote order listing.
type Order struct {
	ID            string   `json:"id"`
	CustomerEmail string   `json:"customerEmail"`
	Items         ItemList `json:"items"`
	Total         float64  `json:"total"`
	Status        string   `json:"status"`
}

type listResponse struct {
	Orders []Order `json:"orders"`
}

// Client consumes the order-listing endpoint exposed by the verification
// backend, which is where confirmed orders live.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// List fetches all orders for the admin view.
func (c *Client) List(ctx context.Context) ([]Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build orders request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("orders request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("orders endpoint returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read orders response: %w", err)
	}

	var parsed listResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal orders response: %w", err)
	}
	return parsed.Orders, nil
}
