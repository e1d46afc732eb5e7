package service

import (
	"strings"

	"github.com/windoze95/pantrychef-api/internal/models"
)

// recipePredicate reports whether a recipe satisfies one search constraint.
type recipePredicate struct {
	name string
	// active reports whether the constraint applies to these criteria.
	active func(c models.SearchCriteria) bool
	match  func(r *models.Recipe, names []string, c models.SearchCriteria) bool
}

// predicates are evaluated in order; the first failure excludes the recipe.
var predicates = []recipePredicate{
	{
		name:   "ingredients",
		active: func(models.SearchCriteria) bool { return true },
		match: func(_ *models.Recipe, names []string, c models.SearchCriteria) bool {
			return HasAllIngredients(names, c.Ingredients)
		},
	},
	{
		name:   "cuisine",
		active: func(c models.SearchCriteria) bool { return c.Cuisine != "" },
		match: func(r *models.Recipe, _ []string, c models.SearchCriteria) bool {
			return MatchesCuisine(r, c.Cuisine)
		},
	},
	{
		name:   "exclusions",
		active: func(c models.SearchCriteria) bool { return len(c.Exclusions) > 0 },
		match: func(_ *models.Recipe, names []string, c models.SearchCriteria) bool {
			return !HasExcludedIngredient(names, c.Exclusions)
		},
	},
	{
		name:   "max_time",
		active: func(c models.SearchCriteria) bool { return c.HasTimeLimit() },
		match: func(r *models.Recipe, _ []string, c models.SearchCriteria) bool {
			return WithinTime(r, c.MaxTime)
		},
	},
}

// MatchesCriteria reports whether recipe passes every active constraint in
// criteria. It returns the name of the first failing constraint, or "" on a
// match.
func MatchesCriteria(recipe *models.Recipe, criteria models.SearchCriteria) (bool, string) {
	if recipe == nil {
		return false, "missing"
	}
	names := recipe.IngredientNames()
	for _, p := range predicates {
		if !p.active(criteria) {
			continue
		}
		if !p.match(recipe, names, criteria) {
			return false, p.name
		}
	}
	return true, ""
}

// HasAllIngredients reports whether every required ingredient is a
// case-insensitive substring of at least one of the lower-cased recipe
// ingredient names.
func HasAllIngredients(recipeIngredients []string, required []string) bool {
	for _, want := range required {
		if !containsAny(recipeIngredients, strings.ToLower(want)) {
			return false
		}
	}
	return true
}

// MatchesCuisine reports whether the recipe's area equals cuisine, ignoring
// case. A recipe without an area never matches.
func MatchesCuisine(recipe *models.Recipe, cuisine string) bool {
	return recipe.Area != "" && strings.EqualFold(recipe.Area, cuisine)
}

// HasExcludedIngredient reports whether any exclusion is a case-insensitive
// substring of one of the lower-cased recipe ingredient names.
func HasExcludedIngredient(recipeIngredients []string, exclusions []string) bool {
	for _, excl := range exclusions {
		if containsAny(recipeIngredients, strings.ToLower(excl)) {
			return true
		}
	}
	return false
}

// WithinTime reports whether the recipe's estimated cook time is at most maxTime.
func WithinTime(recipe *models.Recipe, maxTime models.Minutes) bool {
	return EstimateCookTime(recipe) <= int(maxTime)
}

func containsAny(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
