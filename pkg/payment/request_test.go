package payment

import (
	"regexp"
	"strings"
	"testing"

	"maasaicraft.co.ke/shop/api/pkg/cart"
	"maasaicraft.co.ke/shop/api/pkg/models"
)

var txRefPattern = regexp.MustCompile(`^MC-\d+-\d{1,3}$`)

func TestNewTxRef_Format(t *testing.T) {
	ref := NewTxRef()
	if !txRefPattern.MatchString(ref) {
		t.Fatalf("tx ref %q does not match expected format", ref)
	}
}

func buildTestLines() ([]*cart.Line, cart.Totals) {
	c := cart.New()
	c.AddItem(&models.Product{ID: 1, Name: "Traditional Kiondo - Large", Price: 2500, Sizes: []string{"Large"}}, "Large")
	c.AddItem(&models.Product{ID: 1, Name: "Traditional Kiondo - Large", Price: 2500, Sizes: []string{"Large"}}, "Large")
	c.AddItem(&models.Product{ID: 6, Name: "Beaded Maasai Necklace", Price: 1500, Sizes: []string{"One Size"}}, "One Size")
	return c.Lines(), c.ComputeTotals()
}

func TestBuildRequest(t *testing.T) {
	lines, totals := buildTestLines()
	details := models.CustomerDetails{
		Name:    "Wanjiku Kamau",
		Email:   "wanjiku@example.com",
		Phone:   "0712345678",
		Address: "Ngong Road, Nairobi",
	}

	req := BuildRequest("FLWPUBK-test", lines, totals, details, MethodMpesa)

	if req.PublicKey != "FLWPUBK-test" {
		t.Fatalf("wrong public key: %q", req.PublicKey)
	}
	if req.Currency != "KES" {
		t.Fatalf("expected KES currency, got %q", req.Currency)
	}
	if req.Amount != 6500 {
		t.Fatalf("expected amount 6500, got %.0f", req.Amount)
	}
	if req.PaymentOptions != "mobilemoneykenya" {
		t.Fatalf("expected mobilemoneykenya for mpesa, got %q", req.PaymentOptions)
	}
	if req.Customer.Email != "wanjiku@example.com" || req.Customer.PhoneNumber != "0712345678" {
		t.Fatalf("customer block not populated: %+v", req.Customer)
	}
	if req.Customizations.Title != "Maasai Craft" {
		t.Fatalf("wrong widget title: %q", req.Customizations.Title)
	}
	if req.Meta.DeliveryAddress != "Ngong Road, Nairobi" {
		t.Fatalf("wrong delivery address: %q", req.Meta.DeliveryAddress)
	}
	if !strings.Contains(req.Meta.OrderSummaryText, "Traditional Kiondo - Large (2 x 2500)") {
		t.Fatalf("summary text missing line: %q", req.Meta.OrderSummaryText)
	}
	if !txRefPattern.MatchString(req.TxRef) {
		t.Fatalf("tx ref %q does not match expected format", req.TxRef)
	}
}

func TestBuildRequest_CardOption(t *testing.T) {
	lines, totals := buildTestLines()
	req := BuildRequest("pk", lines, totals, models.CustomerDetails{}, MethodCard)
	if req.PaymentOptions != "card" {
		t.Fatalf("expected card option, got %q", req.PaymentOptions)
	}
}

func TestBuildRequest_AddressFallback(t *testing.T) {
	lines, totals := buildTestLines()
	req := BuildRequest("pk", lines, totals, models.CustomerDetails{Name: "A", Email: "a@b.c", Phone: "0712345678"}, MethodMpesa)
	if req.Meta.DeliveryAddress != "Not provided" {
		t.Fatalf("expected address fallback, got %q", req.Meta.DeliveryAddress)
	}
}
