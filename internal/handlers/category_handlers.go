package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shoplyne/catalog-api/internal/models"
)

const listCategoriesSQL = "SELECT id, name, attributes FROM categories ORDER BY name ASC"

const (
	categoriesCacheKey = "categories:all"
	categoriesCacheTTL = 5 * time.Minute
)

// GetAllCategories is the handler for GET /categories.
// Categories are read-only here, so the list is served from Redis when
// available; any cache failure falls through to the database.
func (h *Handlers) GetAllCategories(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Cache != nil {
		data, err := h.Cache.Get(ctx, categoriesCacheKey).Bytes()
		switch {
		case err == nil:
			var cached []models.Category
			if err := json.Unmarshal(data, &cached); err == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
			log.Printf("Failed to unmarshal cached categories (continuing with DB): %v", err)
		case errors.Is(err, redis.Nil):
		default:
			log.Printf("Redis error (continuing with DB): %v", err)
		}
	}

	rows, err := h.DB.QueryContext(ctx, listCategoriesSQL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed", "details": err.Error()})
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		var attrJSON []byte
		if err := rows.Scan(&cat.ID, &cat.Name, &attrJSON); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan category row", "details": err.Error()})
			return
		}
		cat.Attributes = []string{}
		if len(attrJSON) > 0 {
			json.Unmarshal(attrJSON, &cat.Attributes)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating category rows", "details": err.Error()})
		return
	}

	if h.Cache != nil {
		if data, err := json.Marshal(categories); err == nil {
			if err := h.Cache.Set(ctx, categoriesCacheKey, data, categoriesCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache categories: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, categories)
}
