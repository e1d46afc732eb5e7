package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SavedRecipe is a recipe snapshot kept in a caller's saved collection.
type SavedRecipe struct {
	gorm.Model
	CollectionID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_saved_collection_meal"`
	MealID       string         `gorm:"not null;uniqueIndex:idx_saved_collection_meal"`
	Name         string
	Area         string
	Category     string
	Tags         pq.StringArray `gorm:"type:text[]"`
	Recipe       *Recipe        `gorm:"type:jsonb"`
}

// NewSavedRecipe snapshots recipe into collectionID.
func NewSavedRecipe(collectionID uuid.UUID, recipe *Recipe) *SavedRecipe {
	return &SavedRecipe{
		CollectionID: collectionID,
		MealID:       recipe.ID,
		Name:         recipe.Name,
		Area:         recipe.Area,
		Category:     recipe.Category,
		Tags:         pq.StringArray(recipe.Tags),
		Recipe:       recipe,
	}
}
