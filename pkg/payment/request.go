package payment

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"maasaicraft.co.ke/shop/api/pkg/cart"
	"maasaicraft.co.ke/shop/api/pkg/models"
)

// Method is the customer's chosen way to pay.
type Method string

const (
	MethodMpesa Method = "mpesa"
	MethodCard  Method = "card"
)

// OptionCode returns the provider's payment-option code for the method.
func (m Method) OptionCode() string {
	if m == MethodMpesa {
		return "mobilemoneykenya"
	}
	return "card"
}

// Customer is the provider's customer block.
type Customer struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
}

// Customization is the provider's widget branding block.
type Customization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// Meta carries the order snapshot sent to the provider for reconciliation
// and support lookups.
type Meta struct {
	OrderSummary     string `json:"order_summary"`
	OrderSummaryText string `json:"order_summary_text"`
	DeliveryAddress  string `json:"delivery_address"`
}

// Request is the payload handed to the payment widget. The cart contents
// and totals are snapshotted at build time and never re-derived, so cart
// edits made while a payment is pending cannot change the charge.
type Request struct {
	PublicKey      string        `json:"public_key"`
	TxRef          string        `json:"tx_ref"`
	Amount         float64       `json:"amount"`
	Currency       string        `json:"currency"`
	PaymentOptions string        `json:"payment_options"`
	Customer       Customer      `json:"customer"`
	Customizations Customization `json:"customizations"`
	Meta           Meta          `json:"meta"`
}

// NewTxRef generates a transaction reference for one payment attempt.
// Uniqueness is advisory (timestamp plus a random component); the
// verification step tolerates collisions.
func NewTxRef() string {
	return fmt.Sprintf("MC-%d-%d", time.Now().UnixMilli(), rand.IntN(1000))
}

// BuildRequest constructs the provider request from the cart snapshot,
// computed totals and frozen customer details.
func BuildRequest(publicKey string, lines []*cart.Line, totals cart.Totals, details models.CustomerDetails, method Method) Request {
	summaryJSON, _ := json.Marshal(lines)

	summaryParts := make([]string, 0, len(lines))
	for _, line := range lines {
		summaryParts = append(summaryParts, fmt.Sprintf("%s (%d x %.0f)", line.Name, line.Quantity, line.Price))
	}

	address := details.Address
	if address == "" {
		address = "Not provided"
	}

	return Request{
		PublicKey:      publicKey,
		TxRef:          NewTxRef(),
		Amount:         totals.Total,
		Currency:       "KES",
		PaymentOptions: method.OptionCode(),
		Customer: Customer{
			Email:       details.Email,
			PhoneNumber: details.Phone,
			Name:        details.Name,
		},
		Customizations: Customization{
			Title:       "Maasai Craft",
			Description: fmt.Sprintf("Payment for %d item(s)", len(lines)),
			Logo:        "https://maasaicraft.co.ke/logo.png",
		},
		Meta: Meta{
			OrderSummary:     string(summaryJSON),
			OrderSummaryText: strings.Join(summaryParts, ", "),
			DeliveryAddress:  address,
		},
	}
}
