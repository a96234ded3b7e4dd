package models

import "time"

// ProductRequest statuses. A request is created 'pending' and moves
// exactly once to 'approved' or 'rejected'.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// ProductRequest is the model for the 'product_requests' table.
// It carries the proposed Product field set plus the submitting user.
type ProductRequest struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	Price        float64   `json:"price" db:"price"`
	CategoryID   int64     `json:"categoryId" db:"category_id"`
	ImageURL     string    `json:"imageUrl" db:"image_url"`
	AffiliateURL string    `json:"affiliateUrl" db:"affiliate_url"`
	Address      *string   `json:"address,omitempty" db:"address"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
