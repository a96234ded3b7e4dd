package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shoplyne/catalog-api/internal/models"
)

const requestColumns = "id, user_id, name, description, price, category_id, image_url, affiliate_url, address, status, created_at, updated_at"

const (
	insertRequestSQL       = "INSERT INTO product_requests (user_id, name, description, price, category_id, image_url, affiliate_url, address, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	listRequestsSQL        = "SELECT " + requestColumns + " FROM product_requests ORDER BY created_at ASC"
	lockRequestSQL         = "SELECT " + requestColumns + " FROM product_requests WHERE id = ? FOR UPDATE"
	updateRequestStatusSQL = "UPDATE product_requests SET status = ?, updated_at = ? WHERE id = ?"
)

// ProductRequestInput is the request body for submitting a product request.
type ProductRequestInput struct {
	UserID       int64   `json:"userId" binding:"required,gt=0"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	CategoryID   int64   `json:"categoryId" binding:"required,gt=0"`
	ImageURL     string  `json:"imageUrl" binding:"required,url"`
	AffiliateURL string  `json:"affiliateUrl" binding:"required,url"`
	Address      *string `json:"address"`
}

// CreateProductRequest is the handler for POST /product-requests.
// New requests always start in 'pending' status.
func (h *Handlers) CreateProductRequest(c *gin.Context) {
	var input ProductRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}

	now := time.Now()
	result, err := h.DB.ExecContext(c.Request.Context(), insertRequestSQL,
		input.UserID, input.Name, input.Description, input.Price, input.CategoryID,
		input.ImageURL, input.AffiliateURL, input.Address, models.RequestStatusPending, now, now,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert product request", "details": err.Error()})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get inserted ID", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ProductRequest{
		ID:           id,
		UserID:       input.UserID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		CategoryID:   input.CategoryID,
		ImageURL:     input.ImageURL,
		AffiliateURL: input.AffiliateURL,
		Address:      input.Address,
		Status:       models.RequestStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// GetProductRequests is the handler for GET /product-requests.
// It returns every request regardless of status, for admin review.
func (h *Handlers) GetProductRequests(c *gin.Context) {
	rows, err := h.DB.QueryContext(c.Request.Context(), listRequestsSQL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed", "details": err.Error()})
		return
	}
	defer rows.Close()

	requests := []models.ProductRequest{}
	for rows.Next() {
		var r models.ProductRequest
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.Name, &r.Description, &r.Price, &r.CategoryID,
			&r.ImageURL, &r.AffiliateURL, &r.Address, &r.Status, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product request row", "details": err.Error()})
			return
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating product request rows", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// DecideRequestInput is the request body for PUT /product-requests/:id.
type DecideRequestInput struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// DecideProductRequest is the handler for PUT /product-requests/:id.
// Approval creates the product and marks the request approved inside
// one transaction, so the two writes succeed or fail together.
func (h *Handlers) DecideProductRequest(c *gin.Context) {
	requestID := c.Param("id")

	var input DecideRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}

	ctx := c.Request.Context()
	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction", "details": err.Error()})
		return
	}
	defer tx.Rollback()

	var request models.ProductRequest
	err = tx.QueryRowContext(ctx, lockRequestSQL, requestID).Scan(
		&request.ID, &request.UserID, &request.Name, &request.Description,
		&request.Price, &request.CategoryID, &request.ImageURL,
		&request.AffiliateURL, &request.Address, &request.Status,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product request", "details": err.Error()})
		return
	}

	if request.Status != models.RequestStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "This product request has already been processed"})
		return
	}

	now := time.Now()
	if input.Status == models.RequestStatusApproved {
		if _, err := tx.ExecContext(ctx, createProductSQL,
			request.Name, request.Description, request.Price, request.CategoryID,
			request.ImageURL, request.AffiliateURL, request.Address, now, now,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product from request", "details": err.Error()})
			return
		}
	}

	if _, err := tx.ExecContext(ctx, updateRequestStatusSQL, input.Status, now, requestID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request status", "details": err.Error()})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Product request %s successfully", input.Status)})
}
