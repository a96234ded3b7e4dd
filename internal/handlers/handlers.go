package handlers

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// Handlers holds all dependencies injected at startup.
type Handlers struct {
	DB    *sql.DB       // Primary connection pool
	Cache *redis.Client // Optional; nil disables caching
}

// bindingErrorResponse turns a ShouldBindJSON failure into a response
// body. Validator failures become a per-field message map; anything
// else (malformed JSON) is passed through as-is.
func bindingErrorResponse(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		return gin.H{"error": "Validation failed", "fields": fields}
	}
	return gin.H{"error": err.Error()}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "invalid value"
	}
}
