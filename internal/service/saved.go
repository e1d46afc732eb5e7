package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/windoze95/pantrychef-api/internal/apperrors"
	"github.com/windoze95/pantrychef-api/internal/mealdb"
	"github.com/windoze95/pantrychef-api/internal/models"
	"github.com/windoze95/pantrychef-api/internal/repository"
)

// SavedRecipeService manages a caller's collection of saved recipes.
type SavedRecipeService struct {
	Repo   repository.SavedRecipeRepo
	Source mealdb.RecipeSource
}

// NewSavedRecipeService creates a new SavedRecipeService.
func NewSavedRecipeService(repo repository.SavedRecipeRepo, source mealdb.RecipeSource) *SavedRecipeService {
	return &SavedRecipeService{
		Repo:   repo,
		Source: source,
	}
}

// ListSaved returns the recipes saved in a collection, newest first.
func (s *SavedRecipeService) ListSaved(collectionID uuid.UUID) ([]models.Recipe, error) {
	saved, err := s.Repo.ListSavedRecipes(collectionID)
	if err != nil {
		return nil, err
	}

	recipes := make([]models.Recipe, 0, len(saved))
	for _, sr := range saved {
		if sr.Recipe == nil {
			continue
		}
		recipe := *sr.Recipe
		recipe.EstimatedCookTime = EstimateCookTime(&recipe)
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// SaveRecipe fetches mealID from the upstream source and stores a snapshot
// of it in the collection.
func (s *SavedRecipeService) SaveRecipe(ctx context.Context, collectionID uuid.UUID, mealID string) (*models.Recipe, error) {
	mealID = strings.TrimSpace(mealID)
	if mealID == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "mealId is required.")
	}

	if _, err := s.Repo.GetSavedRecipe(collectionID, mealID); err == nil {
		return nil, apperrors.New(apperrors.CodeConflict, "Recipe is already saved.")
	} else if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return nil, err
	}

	recipe, err := s.Source.FetchDetail(ctx, mealID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.CreateSavedRecipe(models.NewSavedRecipe(collectionID, recipe)); err != nil {
		return nil, err
	}

	result := *recipe
	result.EstimatedCookTime = EstimateCookTime(recipe)
	return &result, nil
}

// RemoveSaved deletes mealID from the collection.
func (s *SavedRecipeService) RemoveSaved(collectionID uuid.UUID, mealID string) error {
	return s.Repo.DeleteSavedRecipe(collectionID, mealID)
}
