package models

import "time"

// Product is the model for the 'products' table.
// Address is a pointer because the column is nullable.
type Product struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	Price        float64   `json:"price" db:"price"`
	CategoryID   int64     `json:"categoryId" db:"category_id"`
	ImageURL     string    `json:"imageUrl" db:"image_url"`
	AffiliateURL string    `json:"affiliateUrl" db:"affiliate_url"`
	Address      *string   `json:"address,omitempty" db:"address"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
