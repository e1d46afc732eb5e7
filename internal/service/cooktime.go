package service

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/windoze95/pantrychef-api/internal/models"
)

const (
	minutesPerIngredient = 3
	charsPerMinute       = 50.0
	cookTimeRoundingStep = 5.0
)

// EstimateCookTime guesses a recipe's preparation time in minutes, since the
// upstream source does not provide one: 3 minutes per ingredient plus one
// minute per 50 characters of instructions, rounded up to a multiple of 5.
// A recipe without instructions gets models.NoInstructionsCookTime.
func EstimateCookTime(recipe *models.Recipe) int {
	if recipe == nil || strings.TrimSpace(recipe.Instructions) == "" {
		return models.NoInstructionsCookTime
	}

	ingredientCount := len(recipe.Ingredients)
	instructionLength := utf8.RuneCountInString(recipe.Instructions)

	raw := float64(ingredientCount*minutesPerIngredient) + float64(instructionLength)/charsPerMinute
	return int(math.Ceil(raw/cookTimeRoundingStep) * cookTimeRoundingStep)
}
