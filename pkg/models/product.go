package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product represents a catalog item in the Maasai Craft store.
// Prices are whole Kenyan shillings.
type Product struct {
	ObjectID    bson.ObjectID `json:"-" bson:"_id,omitempty"`
	ID          int           `json:"id" bson:"id" validate:"required,gt=0"`
	Name        string        `json:"name" bson:"name" validate:"required,min=2,max=200"`
	Price       float64       `json:"price" bson:"price" validate:"required,gt=0"`
	Image       string        `json:"image" bson:"image"`
	Category    string        `json:"category" bson:"category" validate:"required,min=2,max=100"`
	Description string        `json:"description" bson:"description" validate:"max=2000"`
	Sizes       []string      `json:"sizes" bson:"sizes" validate:"required,min=1,dive,min=1"`
	InStock     int           `json:"inStock" bson:"in_stock" validate:"gte=0"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// HasSize reports whether the given size variant is offered for this product.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p *Product) IsInStock() bool {
	return p.InStock > 0
}

func (p *Product) IsLowStock(threshold int) bool {
	return p.InStock <= threshold && p.InStock > 0
}

// SetTimestamps sets created_at on first call and always updates updated_at
func (p *Product) SetTimestamps() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// CreateProductRequest is the admin payload for adding a product.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Image       string   `json:"image"`
	Category    string   `json:"category" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"max=2000"`
	Sizes       []string `json:"sizes" validate:"required,min=1,dive,min=1"`
	InStock     int      `json:"inStock" validate:"gte=0"`
}

func (req *CreateProductRequest) ToProduct(id int) *Product {
	product := &Product{
		ObjectID:    bson.NewObjectID(),
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Description: req.Description,
		Sizes:       req.Sizes,
		InStock:     req.InStock,
	}
	product.SetTimestamps()
	return product
}

// AdjustStockRequest is the admin payload for a relative stock change.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}
