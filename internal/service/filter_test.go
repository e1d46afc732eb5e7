package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/windoze95/pantrychef-api/internal/models"
	"github.com/windoze95/pantrychef-api/internal/testutil"
)

func chickenAndRice() *models.Recipe {
	return &models.Recipe{
		ID:           "1",
		Area:         "Japanese",
		Instructions: testutil.Instructions(100),
		Ingredients:  testutil.Ingredients("Chicken Breast", "Rice"),
	}
}

func TestHasAllIngredients(t *testing.T) {
	names := chickenAndRice().IngredientNames()

	assert.True(t, HasAllIngredients(names, []string{"chicken", "rice"}))
	assert.True(t, HasAllIngredients(names, []string{"CHICKEN"}))
	assert.True(t, HasAllIngredients(names, []string{"breast"}))
	assert.False(t, HasAllIngredients(names, []string{"chicken", "beef"}))
	assert.False(t, HasAllIngredients(nil, []string{"chicken"}))
}

func TestMatchesCuisine(t *testing.T) {
	r := chickenAndRice()

	assert.True(t, MatchesCuisine(r, "japanese"))
	assert.True(t, MatchesCuisine(r, "JAPANESE"))
	assert.False(t, MatchesCuisine(r, "Japan"), "exact match, not substring")
	assert.False(t, MatchesCuisine(r, "Thai"))

	r.Area = ""
	assert.False(t, MatchesCuisine(r, "Japanese"), "absent area never matches")
}

func TestHasExcludedIngredient(t *testing.T) {
	names := chickenAndRice().IngredientNames()

	assert.True(t, HasExcludedIngredient(names, []string{"RICE"}))
	assert.True(t, HasExcludedIngredient(names, []string{"nuts", "breast"}))
	assert.False(t, HasExcludedIngredient(names, []string{"nuts"}))
	assert.False(t, HasExcludedIngredient(names, nil))
}

func TestWithinTime(t *testing.T) {
	r := testutil.TeriyakiChicken() // 15 minutes

	assert.True(t, WithinTime(r, 15))
	assert.True(t, WithinTime(r, 20))
	assert.False(t, WithinTime(r, 10))
	assert.False(t, WithinTime(testutil.RoastChicken(), 100))
}

func TestMatchesCriteria_OptionalConstraintsInactiveByDefault(t *testing.T) {
	ok, failed := MatchesCriteria(testutil.RoastChicken(), models.NewSearchCriteria("chicken"))

	assert.True(t, ok)
	assert.Empty(t, failed)
}

func TestMatchesCriteria_ReportsFirstFailingConstraint(t *testing.T) {
	tests := []struct {
		name     string
		recipe   *models.Recipe
		criteria models.SearchCriteria
		want     string
	}{
		{
			name:     "ingredient missing",
			recipe:   chickenAndRice(),
			criteria: models.SearchCriteria{Ingredients: []string{"beef"}, Cuisine: "Thai", MaxTime: 5},
			want:     "ingredients",
		},
		{
			name:     "cuisine differs",
			recipe:   chickenAndRice(),
			criteria: models.SearchCriteria{Ingredients: []string{"rice"}, Cuisine: "Thai", Exclusions: []string{"rice"}, MaxTime: 5},
			want:     "cuisine",
		},
		{
			name:     "absent area with cuisine",
			recipe:   testutil.RoastChicken(),
			criteria: models.SearchCriteria{Ingredients: []string{"chicken"}, Cuisine: "British", MaxTime: models.NoTimeLimit},
			want:     "cuisine",
		},
		{
			name:     "excluded ingredient",
			recipe:   chickenAndRice(),
			criteria: models.SearchCriteria{Ingredients: []string{"chicken"}, Cuisine: "japanese", Exclusions: []string{"rice"}, MaxTime: 5},
			want:     "exclusions",
		},
		{
			name:     "too slow",
			recipe:   testutil.ChickenCurry(),
			criteria: models.SearchCriteria{Ingredients: []string{"chicken"}, MaxTime: 20},
			want:     "max_time",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, failed := MatchesCriteria(tt.recipe, tt.criteria)
			assert.False(t, ok)
			assert.Equal(t, tt.want, failed)
		})
	}
}

func TestMatchesCriteria_AllConstraintsPass(t *testing.T) {
	criteria := models.SearchCriteria{
		Ingredients: []string{"chicken", "rice"},
		Cuisine:     "Japanese",
		Exclusions:  []string{"peanut"},
		MaxTime:     15,
	}

	ok, _ := MatchesCriteria(testutil.TeriyakiChicken(), criteria)
	assert.True(t, ok)
}

func TestMatchesCriteria_NilRecipe(t *testing.T) {
	ok, _ := MatchesCriteria(nil, models.NewSearchCriteria("chicken"))
	assert.False(t, ok)
}
