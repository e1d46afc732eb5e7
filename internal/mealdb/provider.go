// Package mealdb is the client for TheMealDB, the upstream recipe source.
package mealdb

import (
	"context"

	"github.com/windoze95/pantrychef-api/internal/models"
)

// RecipeSource is the upstream recipe data source.
//
// Errors are always *apperrors.Error: CodeNotFound when the source has no
// record, CodeUpstreamUnavailable when the call itself failed. Raw transport
// errors are only reachable through Unwrap.
type RecipeSource interface {
	// DiscoverCandidates lists recipe stubs for a search. A non-empty cuisine
	// is queried by area; otherwise only the first ingredient is queried.
	// No matches is an empty slice, not an error.
	DiscoverCandidates(ctx context.Context, criteria models.SearchCriteria) ([]models.RecipeStub, error)
	// FetchDetail returns the full record for one recipe id.
	FetchDetail(ctx context.Context, id string) (*models.Recipe, error)
	// SearchByName returns full records whose name contains name.
	SearchByName(ctx context.Context, name string) ([]models.Recipe, error)
}
