package model

import "time"

// Product is a document in the product collection. InStock is derived from
// StockQuantity and is never taken from client input; every write path
// recomputes it before persisting.
type Product struct {
	ID            string    `bson:"_id,omitempty" json:"_id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description,omitempty"`
	Price         float64   `bson:"price" json:"price"`
	Image         []string  `bson:"image" json:"image"`
	StockQuantity int64     `bson:"stockQuantity" json:"stockQuantity"`
	InStock       bool      `bson:"inStock" json:"inStock"`
	Bestseller    bool      `bson:"bestseller" json:"bestseller"`
	Sizes         []string  `bson:"sizes" json:"sizes"`
	Category      string    `bson:"category" json:"category"`
	SubCategory   string    `bson:"subCategory" json:"subCategory"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// RecomputeInStock keeps the derived flag consistent with the quantity.
func (p *Product) RecomputeInStock() {
	p.InStock = p.StockQuantity > 0
}

// InStockFor is the single derivation rule for the in-stock flag.
func InStockFor(stockQuantity int64) bool {
	return stockQuantity > 0
}

// ProductAddRequest carries the full product payload from the admin panel.
// InStock is accepted but ignored; the server derives it.
type ProductAddRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Image         []string `json:"image"`
	StockQuantity int64    `json:"stockQuantity" validate:"gte=0"`
	InStock       bool     `json:"inStock"`
	Bestseller    bool     `json:"bestseller"`
	Sizes         []string `json:"sizes"`
	Category      string   `json:"category"`
	SubCategory   string   `json:"subCategory"`
}

// ProductUpdateRequest is the inline-edit payload: price and stock only.
type ProductUpdateRequest struct {
	ID            string  `json:"id" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	StockQuantity int64   `json:"stockQuantity" validate:"gte=0"`
}

type ProductRemoveRequest struct {
	ID string `json:"id" validate:"required"`
}

type ProductListResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
}

type ProductResponse struct {
	Success bool    `json:"success"`
	Product Product `json:"product"`
}
