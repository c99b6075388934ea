package cart

import (
	"sort"
	"time"

	"maasaicraft.co.ke/shop/api/pkg/models"
)

// Line is one (product, selected size) pairing in the cart. Name, price and
// image are snapshotted from the product at add time so later catalog edits
// do not reprice an open cart.
type Line struct {
	ProductID    int     `json:"product_id"`
	SelectedSize string  `json:"selected_size"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Quantity     int     `json:"quantity"`
	AddedAt      string  `json:"added_at"`
}

// Subtotal returns price x quantity for this line.
func (l *Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

type lineKey struct {
	productID int
	size      string
}

// Totals is the computed financial breakdown of a cart. Shipping is a
// flat-rate policy, currently always free.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Cart holds the line items for one checkout session. It is owned by the
// session that created it and is only mutated through its methods; a line
// never exists with quantity below 1.
type Cart struct {
	lines map[lineKey]*Line
}

func New() *Cart {
	return &Cart{lines: make(map[lineKey]*Line)}
}

// AddItem merges the product into the cart: an existing (id, size) line has
// its quantity bumped by one, otherwise a new line is created with quantity 1.
func (c *Cart) AddItem(product *models.Product, selectedSize string) {
	key := lineKey{productID: product.ID, size: selectedSize}
	if line, ok := c.lines[key]; ok {
		line.Quantity++
		return
	}
	c.lines[key] = &Line{
		ProductID:    product.ID,
		SelectedSize: selectedSize,
		Name:         product.Name,
		Price:        product.Price,
		Image:        product.Image,
		Quantity:     1,
		AddedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

// UpdateQuantity sets the quantity on the matching line. A quantity of zero
// or less removes the line. Missing lines are a no-op.
func (c *Cart) UpdateQuantity(productID int, selectedSize string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID, selectedSize)
		return
	}
	if line, ok := c.lines[lineKey{productID: productID, size: selectedSize}]; ok {
		line.Quantity = quantity
	}
}

// RemoveItem deletes the matching line if present; idempotent.
func (c *Cart) RemoveItem(productID int, selectedSize string) {
	delete(c.lines, lineKey{productID: productID, size: selectedSize})
}

// Lines returns the cart lines in a stable order for rendering.
func (c *Cart) Lines() []*Line {
	out := make([]*Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].SelectedSize < out[j].SelectedSize
	})
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ComputeTotals recomputes the totals from scratch on every call.
func (c *Cart) ComputeTotals() Totals {
	var subtotal float64
	for _, line := range c.lines {
		subtotal += line.Subtotal()
	}
	totals := Totals{
		Subtotal: subtotal,
		Shipping: 0,
	}
	totals.Total = totals.Subtotal + totals.Shipping
	return totals
}

// TotalItems returns the summed quantity across all lines, used for the
// cart badge.
func (c *Cart) TotalItems() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Clear empties the cart. Called after a fully verified successful payment.
func (c *Cart) Clear() {
	c.lines = make(map[lineKey]*Line)
}
