package testutil

import (
	"strings"

	"github.com/windoze95/pantrychef-api/internal/models"
)

// Instructions returns ASCII instruction text exactly n characters long.
func Instructions(n int) string {
	return strings.Repeat("Stir well. ", n/11+1)[:n]
}

// Ingredients builds ingredient slots from names.
func Ingredients(names ...string) []models.Ingredient {
	out := make([]models.Ingredient, len(names))
	for i, name := range names {
		out[i] = models.Ingredient{Name: name, Measure: "1"}
	}
	return out
}

// TeriyakiChicken has 3 ingredients and 200 characters of instructions:
// an estimated 15 minutes.
func TeriyakiChicken() *models.Recipe {
	return &models.Recipe{
		ID:           "52772",
		Name:         "Teriyaki Chicken Casserole",
		Thumbnail:    "https://www.themealdb.com/images/media/meals/wvpsxx1468256321.jpg",
		Area:         "Japanese",
		Category:     "Chicken",
		Instructions: Instructions(200),
		Tags:         []string{"Meat", "Casserole"},
		Ingredients:  Ingredients("soy sauce", "Chicken Breasts", "brown rice"),
	}
}

// ChickenCurry has 6 ingredients and 300 characters of instructions: an
// estimated 25 minutes.
func ChickenCurry() *models.Recipe {
	return &models.Recipe{
		ID:           "52795",
		Name:         "Chicken Handi",
		Area:         "Indian",
		Category:     "Chicken",
		Instructions: Instructions(300),
		Ingredients:  Ingredients("Chicken", "Onion", "Tomatoes", "Garlic", "Ginger paste", "Peanuts"),
	}
}

// RoastChicken has no instructions, so its estimate is the no-instructions
// sentinel. It has no area either.
func RoastChicken() *models.Recipe {
	return &models.Recipe{
		ID:          "53001",
		Name:        "Roast Chicken",
		Category:    "Chicken",
		Ingredients: Ingredients("Whole Chicken", "Butter", "Lemon", "Thyme"),
	}
}

// BeefStew contains no chicken.
func BeefStew() *models.Recipe {
	return &models.Recipe{
		ID:           "52874",
		Name:         "Beef and Mustard Pie",
		Area:         "British",
		Category:     "Beef",
		Instructions: Instructions(120),
		Ingredients:  Ingredients("Beef", "Plain Flour", "Mustard"),
	}
}

// Arrabiata contains no chicken.
func Arrabiata() *models.Recipe {
	return &models.Recipe{
		ID:           "52771",
		Name:         "Spicy Arrabiata Penne",
		Area:         "Italian",
		Category:     "Vegetarian",
		Instructions: Instructions(100),
		Ingredients:  Ingredients("penne rigate", "olive oil", "garlic", "chopped tomatoes"),
	}
}

// Catalog returns five recipes, three of which contain chicken.
func Catalog() []*models.Recipe {
	return []*models.Recipe{TeriyakiChicken(), BeefStew(), ChickenCurry(), Arrabiata(), RoastChicken()}
}
