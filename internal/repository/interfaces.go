package repository

import (
	"github.com/google/uuid"
	"github.com/windoze95/pantrychef-api/internal/models"
)

// SavedRecipeRepo is the interface for saved recipe repository operations.
type SavedRecipeRepo interface {
	ListSavedRecipes(collectionID uuid.UUID) ([]models.SavedRecipe, error)
	GetSavedRecipe(collectionID uuid.UUID, mealID string) (*models.SavedRecipe, error)
	CreateSavedRecipe(saved *models.SavedRecipe) error
	DeleteSavedRecipe(collectionID uuid.UUID, mealID string) error
}
