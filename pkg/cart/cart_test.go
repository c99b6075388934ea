package cart

import (
	"testing"

	"maasaicraft.co.ke/shop/api/pkg/models"
)

func kiondo() *models.Product {
	return &models.Product{
		ID:       1,
		Name:     "Traditional Kiondo - Large",
		Price:    2500,
		Image:    "https://example.com/kiondo.jpg",
		Category: "Kiondos",
		Sizes:    []string{"Large"},
		InStock:  15,
	}
}

func sandals() *models.Product {
	return &models.Product{
		ID:       4,
		Name:     "Maasai Leather Sandals - Men",
		Price:    3200,
		Category: "Sandals",
		Sizes:    []string{"40", "41", "42"},
		InStock:  12,
	}
}

func TestAddItem_NewLineStartsAtOne(t *testing.T) {
	c := New()
	c.AddItem(kiondo(), "Large")

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", lines[0].Quantity)
	}
	if lines[0].Name != "Traditional Kiondo - Large" || lines[0].Price != 2500 {
		t.Fatalf("line did not snapshot product fields: %+v", lines[0])
	}
}

func TestAddItem_SameProductAndSizeMerges(t *testing.T) {
	c := New()
	c.AddItem(kiondo(), "Large")
	c.AddItem(kiondo(), "Large")

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 after merge, got %d", lines[0].Quantity)
	}
}

func TestAddItem_SameProductDifferentSizeIsSeparateLine(t *testing.T) {
	c := New()
	c.AddItem(sandals(), "41")
	c.AddItem(sandals(), "42")

	if c.Len() != 2 {
		t.Fatalf("expected 2 lines for different sizes, got %d", c.Len())
	}
}

func TestUpdateQuantity_SetsValue(t *testing.T) {
	c := New()
	c.AddItem(kiondo(), "Large")
	c.UpdateQuantity(1, "Large", 5)

	if got := c.Lines()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(kiondo(), "Large")
	c.UpdateQuantity(1, "Large", 0)

	if !c.IsEmpty() {
		t.Fatal("expected cart to be empty after setting quantity to 0")
	}
}

func TestUpdateQuantity_MissingLineIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(kiondo(), "Large")
	c.UpdateQuantity(99, "Large", 3)

	if c.Len() != 1 || c.Lines()[0].Quantity != 1 {
		t.Fatalf("update of missing line changed the cart: %+v", c.Lines())
	}
}

func TestRemoveItem_IsIdempotent(t *testing.T) {
	c := New()
	c.AddItem(kiondo(), "Large")
	c.RemoveItem(1, "Large")
	c.RemoveItem(1, "Large")

	if !c.IsEmpty() {
		t.Fatal("expected empty cart after remove")
	}
}

func TestComputeTotals(t *testing.T) {
	c := New()
	c.AddItem(kiondo(), "Large")
	c.AddItem(kiondo(), "Large")
	c.AddItem(sandals(), "41")

	totals := c.ComputeTotals()
	if totals.Subtotal != 2*2500+3200 {
		t.Fatalf("expected subtotal 8200, got %.0f", totals.Subtotal)
	}
	if totals.Shipping != 0 {
		t.Fatalf("expected free shipping, got %.0f", totals.Shipping)
	}
	if totals.Total != totals.Subtotal {
		t.Fatalf("expected total %.0f, got %.0f", totals.Subtotal, totals.Total)
	}
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	a := New()
	a.AddItem(kiondo(), "Large")
	a.AddItem(sandals(), "41")

	b := New()
	b.AddItem(sandals(), "41")
	b.AddItem(kiondo(), "Large")

	if a.ComputeTotals() != b.ComputeTotals() {
		t.Fatalf("totals depend on insertion order: %+v vs %+v", a.ComputeTotals(), b.ComputeTotals())
	}
}

func TestTotalItems_SumsQuantities(t *testing.T) {
	c := New()
	c.AddItem(kiondo(), "Large")
	c.AddItem(kiondo(), "Large")
	c.AddItem(sandals(), "41")

	if got := c.TotalItems(); got != 3 {
		t.Fatalf("expected 3 total items, got %d", got)
	}
}

func TestLines_StableOrder(t *testing.T) {
	c := New()
	c.AddItem(sandals(), "42")
	c.AddItem(kiondo(), "Large")
	c.AddItem(sandals(), "41")

	lines := c.Lines()
	if lines[0].ProductID != 1 || lines[1].SelectedSize != "41" || lines[2].SelectedSize != "42" {
		t.Fatalf("lines not in (product, size) order: %+v", lines)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(kiondo(), "Large")
	c.Clear()

	if !c.IsEmpty() || c.TotalItems() != 0 {
		t.Fatal("expected cleared cart")
	}
}
