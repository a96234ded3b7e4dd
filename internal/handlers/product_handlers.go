package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shoplyne/catalog-api/internal/models"
)

const productColumns = "id, name, description, price, category_id, image_url, affiliate_url, address, created_at, updated_at"

const (
	createProductSQL = "INSERT INTO products (name, description, price, category_id, image_url, affiliate_url, address, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	updateProductSQL = "UPDATE products SET name = ?, description = ?, price = ?, category_id = ?, image_url = ?, affiliate_url = ?, address = ?, updated_at = ? WHERE id = ?"
	deleteProductSQL = "DELETE FROM products WHERE id = ?"
	getProductSQL    = "SELECT " + productColumns + " FROM products WHERE id = ?"
	searchProductSQL = "SELECT " + productColumns + " FROM products WHERE name LIKE ? OR description LIKE ?"
	byCategorySQL    = "SELECT " + productColumns + " FROM products WHERE category_id = ?"
)

// sortColumns is the allow-list for the sort_by parameter. Caller
// input never reaches the query text directly; unknown values fall
// back to the id column.
var sortColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"price":       "price",
	"category_id": "category_id",
	"created_at":  "created_at",
}

// invalidParamError names the query parameter that failed to parse.
type invalidParamError struct {
	field string
}

func (e *invalidParamError) Error() string {
	return "invalid value for " + e.field
}

// buildListQuery translates the optional listing filters into a
// parameterized SELECT. Filter clauses are ANDed in a fixed order and
// their arguments bound positionally, followed by limit and offset.
func buildListQuery(categoryID, minPrice, maxPrice, sortBy, order string, page, limit int) (string, []interface{}, error) {
	var qb strings.Builder
	var args []interface{}

	qb.WriteString("SELECT " + productColumns + " FROM products")

	var clauses []string
	if categoryID != "" {
		clauses = append(clauses, "category_id = ?")
		args = append(args, categoryID)
	}
	if minPrice != "" {
		v, err := strconv.ParseFloat(minPrice, 64)
		if err != nil || v < 0 {
			return "", nil, &invalidParamError{"min_price"}
		}
		clauses = append(clauses, "price >= ?")
		args = append(args, v)
	}
	if maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil || v < 0 {
			return "", nil, &invalidParamError{"max_price"}
		}
		clauses = append(clauses, "price <= ?")
		args = append(args, v)
	}
	if len(clauses) > 0 {
		qb.WriteString(" WHERE " + strings.Join(clauses, " AND "))
	}

	column, ok := sortColumns[sortBy]
	if !ok {
		column = "id"
	}
	direction := "ASC"
	if strings.EqualFold(order, "DESC") {
		direction = "DESC"
	}
	qb.WriteString(" ORDER BY " + column + " " + direction)

	qb.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, limit, (page-1)*limit)

	return qb.String(), args, nil
}

func parsePositiveInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// GetProducts is the handler for GET /products.
// It supports category_id, min_price and max_price filters plus
// sort_by/order and page/limit pagination.
func (h *Handlers) GetProducts(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), 10)

	query, args, err := buildListQuery(
		c.Query("category_id"),
		c.Query("min_price"),
		c.Query("max_price"),
		c.DefaultQuery("sort_by", "id"),
		c.DefaultQuery("order", "ASC"),
		page, limit,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.DB.QueryContext(c.Request.Context(), query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed", "details": err.Error()})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID,
			&p.ImageURL, &p.AffiliateURL, &p.Address, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product row", "details": err.Error()})
			return
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating product rows", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// SearchProducts is the handler for GET /products/search.
// The query parameter is mandatory; matching is a case-insensitive
// substring match on name and description.
func (h *Handlers) SearchProducts(c *gin.Context) {
	q := c.Query("query")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	term := "%" + q + "%"
	rows, err := h.DB.QueryContext(c.Request.Context(), searchProductSQL, term, term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed", "details": err.Error()})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID,
			&p.ImageURL, &p.AffiliateURL, &p.Address, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product row", "details": err.Error()})
			return
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating product rows", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductsByCategory is the handler for GET /products/category/:categoryId.
// No other filters, sorting or pagination apply.
func (h *Handlers) GetProductsByCategory(c *gin.Context) {
	categoryID := c.Param("categoryId")

	rows, err := h.DB.QueryContext(c.Request.Context(), byCategorySQL, categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed", "details": err.Error()})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID,
			&p.ImageURL, &p.AffiliateURL, &p.Address, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product row", "details": err.Error()})
			return
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating product rows", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// ProductInput is the request body for creating or updating a product.
type ProductInput struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	CategoryID   int64   `json:"categoryId" binding:"required,gt=0"`
	ImageURL     string  `json:"imageUrl" binding:"required,url"`
	AffiliateURL string  `json:"affiliateUrl" binding:"required,url"`
	Address      *string `json:"address"`
}

// CreateProduct is the handler for POST /products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}

	now := time.Now()
	result, err := h.DB.ExecContext(c.Request.Context(), createProductSQL,
		input.Name, input.Description, input.Price, input.CategoryID,
		input.ImageURL, input.AffiliateURL, input.Address, now, now,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert product", "details": err.Error()})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get inserted ID", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Product{
		ID:           id,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		CategoryID:   input.CategoryID,
		ImageURL:     input.ImageURL,
		AffiliateURL: input.AffiliateURL,
		Address:      input.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// UpdateProduct is the handler for PUT /products/:id.
// All mutable fields are replaced. An unknown id is a 404.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}

	now := time.Now()
	result, err := h.DB.ExecContext(c.Request.Context(), updateProductSQL,
		input.Name, input.Description, input.Price, input.CategoryID,
		input.ImageURL, input.AffiliateURL, input.Address, now, id,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product", "details": err.Error()})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows", "details": err.Error()})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var p models.Product
	err = h.DB.QueryRowContext(c.Request.Context(), getProductSQL, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID,
		&p.ImageURL, &p.AffiliateURL, &p.Address, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read updated product", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeleteProduct is the handler for DELETE /products/:id.
// Deletion reports success whether or not a row matched.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.DB.ExecContext(c.Request.Context(), deleteProductSQL, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
