package repository

import (
	"github.com/google/uuid"
	"github.com/windoze95/pantrychef-api/internal/logger"
	"github.com/windoze95/pantrychef-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SavedRecipeRepository is a repository for interacting with saved recipes.
type SavedRecipeRepository struct {
	DB *gorm.DB
}

var _ SavedRecipeRepo = (*SavedRecipeRepository)(nil)

// NewSavedRecipeRepository creates a new SavedRecipeRepository.
func NewSavedRecipeRepository(db *gorm.DB) *SavedRecipeRepository {
	return &SavedRecipeRepository{DB: db}
}

// ListSavedRecipes returns a collection's saved recipes, newest first.
func (r *SavedRecipeRepository) ListSavedRecipes(collectionID uuid.UUID) ([]models.SavedRecipe, error) {
	var saved []models.SavedRecipe
	err := r.DB.Where("collection_id = ?", collectionID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		logger.Get().Error("failed to list saved recipes", zap.Stringer("collection_id", collectionID), zap.Error(err))
		return nil, translateError(err, "saved recipes")
	}
	return saved, nil
}

// GetSavedRecipe retrieves one saved recipe by its upstream meal ID.
func (r *SavedRecipeRepository) GetSavedRecipe(collectionID uuid.UUID, mealID string) (*models.SavedRecipe, error) {
	var saved models.SavedRecipe
	err := r.DB.Where("collection_id = ? AND meal_id = ?", collectionID, mealID).
		First(&saved).Error
	if err != nil {
		return nil, translateError(err, "saved recipe")
	}
	return &saved, nil
}

// CreateSavedRecipe stores a recipe snapshot. Saving the same meal twice in
// one collection is a conflict.
func (r *SavedRecipeRepository) CreateSavedRecipe(saved *models.SavedRecipe) error {
	if err := r.DB.Create(saved).Error; err != nil {
		logger.Get().Error("failed to save recipe",
			zap.Stringer("collection_id", saved.CollectionID),
			zap.String("meal_id", saved.MealID),
			zap.Error(err))
		return translateError(err, "saved recipe")
	}
	return nil
}

// DeleteSavedRecipe permanently removes a saved recipe so it can be saved again.
func (r *SavedRecipeRepository) DeleteSavedRecipe(collectionID uuid.UUID, mealID string) error {
	result := r.DB.Unscoped().
		Where("collection_id = ? AND meal_id = ?", collectionID, mealID).
		Delete(&models.SavedRecipe{})
	if result.Error != nil {
		logger.Get().Error("failed to delete saved recipe", zap.String("meal_id", mealID), zap.Error(result.Error))
		return translateError(result.Error, "saved recipe")
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "saved recipe")
	}
	return nil
}
