package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windoze95/pantrychef-api/internal/apperrors"
	"github.com/windoze95/pantrychef-api/internal/testutil"
)

func TestSaveRecipe(t *testing.T) {
	repo := testutil.NewMockSavedRecipeRepo()
	source := testutil.NewCatalogSource(testutil.Catalog()...)
	svc := NewSavedRecipeService(repo, source)
	collection := uuid.New()

	recipe, err := svc.SaveRecipe(context.Background(), collection, " 52772 ")
	require.NoError(t, err)
	assert.Equal(t, "Teriyaki Chicken Casserole", recipe.Name)
	assert.Equal(t, 15, recipe.EstimatedCookTime)

	require.Len(t, repo.Saved, 1)
	for _, saved := range repo.Saved {
		assert.Equal(t, collection, saved.CollectionID)
		assert.Equal(t, "52772", saved.MealID)
		assert.Equal(t, "Japanese", saved.Area)
	}
}

func TestSaveRecipe_AlreadySaved(t *testing.T) {
	repo := testutil.NewMockSavedRecipeRepo()
	source := testutil.NewCatalogSource(testutil.Catalog()...)
	svc := NewSavedRecipeService(repo, source)
	collection := uuid.New()

	_, err := svc.SaveRecipe(context.Background(), collection, "52772")
	require.NoError(t, err)

	_, err = svc.SaveRecipe(context.Background(), collection, "52772")
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, int32(1), source.DetailCalls.Load(), "second save should not reach upstream")

	// another collection may save the same meal
	_, err = svc.SaveRecipe(context.Background(), uuid.New(), "52772")
	assert.NoError(t, err)
}

func TestSaveRecipe_Errors(t *testing.T) {
	collection := uuid.New()

	t.Run("blank meal id", func(t *testing.T) {
		source := testutil.NewCatalogSource()
		svc := NewSavedRecipeService(testutil.NewMockSavedRecipeRepo(), source)
		_, err := svc.SaveRecipe(context.Background(), collection, "  ")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
		assert.Zero(t, source.TotalCalls())
	})

	t.Run("unknown meal", func(t *testing.T) {
		repo := testutil.NewMockSavedRecipeRepo()
		svc := NewSavedRecipeService(repo, testutil.NewCatalogSource())
		_, err := svc.SaveRecipe(context.Background(), collection, "1")
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
		assert.Empty(t, repo.Saved)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := testutil.NewMockSavedRecipeRepo()
		repo.Err = apperrors.New(apperrors.CodeInternal, "saved recipe query failed")
		svc := NewSavedRecipeService(repo, testutil.NewCatalogSource(testutil.Catalog()...))
		_, err := svc.SaveRecipe(context.Background(), collection, "52772")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInternal))
	})
}

func TestListSaved(t *testing.T) {
	repo := testutil.NewMockSavedRecipeRepo()
	svc := NewSavedRecipeService(repo, testutil.NewCatalogSource(testutil.Catalog()...))
	mine, theirs := uuid.New(), uuid.New()

	for _, id := range []string{"52772", "52795"} {
		_, err := svc.SaveRecipe(context.Background(), mine, id)
		require.NoError(t, err)
	}
	_, err := svc.SaveRecipe(context.Background(), theirs, "52874")
	require.NoError(t, err)

	recipes, err := svc.ListSaved(mine)
	require.NoError(t, err)
	assert.Equal(t, []string{"52795", "52772"}, recipeIDs(recipes), "newest first")
	assert.Equal(t, 25, recipes[0].EstimatedCookTime)

	recipes, err = svc.ListSaved(uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestRemoveSaved(t *testing.T) {
	repo := testutil.NewMockSavedRecipeRepo()
	svc := NewSavedRecipeService(repo, testutil.NewCatalogSource(testutil.Catalog()...))
	collection := uuid.New()

	_, err := svc.SaveRecipe(context.Background(), collection, "52772")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveSaved(collection, "52772"))
	assert.Empty(t, repo.Saved)

	err = svc.RemoveSaved(collection, "52772")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
