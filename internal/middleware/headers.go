package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/windoze95/pantrychef-api/internal/apperrors"
)

const (
	// CollectionHeader names the caller's saved-recipe collection.
	CollectionHeader = "X-PantryChef-Collection"

	collectionIDKey = "collection_id"
)

// RequireCollectionID checks the X-PantryChef-Collection header for a UUID
// and stores it in the context.
func RequireCollectionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(CollectionHeader))
		if err != nil || id == uuid.Nil {
			// If the header is absent or not a UUID, reject the request
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": CollectionHeader + " header must be a UUID.",
				"code":  apperrors.CodeValidation,
			})
			return
		}
		c.Set(collectionIDKey, id)
		c.Next()
	}
}

// CollectionIDFromContext returns the collection ID stored by
// RequireCollectionID, or uuid.Nil.
func CollectionIDFromContext(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(collectionIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
