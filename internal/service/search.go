package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/windoze95/pantrychef-api/internal/apperrors"
	"github.com/windoze95/pantrychef-api/internal/config"
	"github.com/windoze95/pantrychef-api/internal/logger"
	"github.com/windoze95/pantrychef-api/internal/mealdb"
	"github.com/windoze95/pantrychef-api/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultDetailConcurrency = 8

// SearchService finds recipes on the upstream source and filters them
// against the caller's criteria.
type SearchService struct {
	Cfg      *config.Config
	Source   mealdb.RecipeSource
	validate *validator.Validate
}

// NewSearchService creates a new SearchService.
func NewSearchService(cfg *config.Config, source mealdb.RecipeSource) *SearchService {
	return &SearchService{
		Cfg:      cfg,
		Source:   source,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// AdvancedSearch returns the recipes that contain every requested
// ingredient and satisfy the optional cuisine, exclusion and time
// constraints.
//
// Candidates come from one upstream query (by cuisine if given, else by the
// first ingredient); their details are fetched concurrently and candidates
// whose lookup fails are dropped. Only a failed discovery query fails the
// search. An empty result is not an error.
func (s *SearchService) AdvancedSearch(ctx context.Context, criteria models.SearchCriteria) ([]models.Recipe, error) {
	start := time.Now()
	recipes, err := s.advancedSearch(ctx, criteria)
	searchDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		searchesTotal.WithLabelValues(string(apperrors.CodeOf(err))).Inc()
	case len(recipes) == 0:
		searchesTotal.WithLabelValues("empty").Inc()
	default:
		searchesTotal.WithLabelValues("ok").Inc()
	}
	return recipes, err
}

func (s *SearchService) advancedSearch(ctx context.Context, criteria models.SearchCriteria) ([]models.Recipe, error) {
	criteria = criteria.Normalized()
	if err := s.ValidateCriteria(criteria); err != nil {
		return nil, err
	}

	log := logger.With(
		zap.Strings("ingredients", criteria.Ingredients),
		zap.String("cuisine", criteria.Cuisine),
		zap.Int("max_time", int(criteria.MaxTime)),
	)

	stubs, err := s.Source.DiscoverCandidates(ctx, criteria)
	if err != nil {
		log.Error("candidate discovery failed", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "Failed to perform advanced search.", err)
	}
	searchCandidates.Observe(float64(len(stubs)))
	if len(stubs) == 0 {
		return []models.Recipe{}, nil
	}

	details := s.fetchDetails(ctx, log, stubs)
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "Search was cancelled.", err)
	}

	results := make([]models.Recipe, 0, len(details))
	for _, recipe := range details {
		if recipe == nil {
			continue
		}
		ok, failed := MatchesCriteria(recipe, criteria)
		if !ok {
			filterRejections.WithLabelValues(failed).Inc()
			continue
		}
		result := *recipe
		result.EstimatedCookTime = EstimateCookTime(recipe)
		results = append(results, result)
	}

	log.Debug("advanced search complete",
		zap.Int("candidates", len(stubs)),
		zap.Int("matches", len(results)))

	return results, nil
}

// fetchDetails looks up every stub concurrently and waits for all of them.
// The result is in stub order; a nil entry is a candidate whose lookup
// failed or found nothing. Lookup errors are logged and counted per
// candidate and never returned to the group, so Wait is only a barrier.
func (s *SearchService) fetchDetails(ctx context.Context, log *zap.Logger, stubs []models.RecipeStub) []*models.Recipe {
	details := make([]*models.Recipe, len(stubs))

	var g errgroup.Group
	g.SetLimit(s.detailConcurrency())
	for i, stub := range stubs {
		g.Go(func() error {
			recipe, err := s.Source.FetchDetail(ctx, stub.ID)
			if err != nil {
				detailFetchFailures.WithLabelValues(string(apperrors.CodeOf(err))).Inc()
				log.Warn("dropping candidate", zap.String("meal_id", stub.ID), zap.Error(err))
				return nil
			}
			details[i] = recipe
			return nil
		})
	}
	_ = g.Wait()

	return details
}

func (s *SearchService) detailConcurrency() int {
	if s.Cfg != nil && s.Cfg.EnvVars.DetailConcurrency > 0 {
		return s.Cfg.EnvVars.DetailConcurrency
	}
	return defaultDetailConcurrency
}

// ValidateCriteria checks normalized criteria before any upstream call.
func (s *SearchService) ValidateCriteria(criteria models.SearchCriteria) error {
	err := s.validate.Struct(criteria)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Wrap(apperrors.CodeValidation, "Invalid search criteria.", err)
	}
	switch field := verrs[0].StructField(); {
	case field == "Ingredients" || strings.HasPrefix(field, "Ingredients["):
		return apperrors.Wrap(apperrors.CodeValidation, "At least one ingredient is required.", err)
	case field == "MaxTime":
		return apperrors.Wrap(apperrors.CodeValidation, "maxTime must not be negative.", err)
	default:
		return apperrors.Wrap(apperrors.CodeValidation, "Invalid search criteria.", err)
	}
}

// SearchByName returns upstream recipes whose name matches query.
func (s *SearchService) SearchByName(ctx context.Context, query string) ([]models.Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "Query parameter 'q' is required.")
	}

	recipes, err := s.Source.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i].EstimatedCookTime = EstimateCookTime(&recipes[i])
	}
	return recipes, nil
}

// GetRecipe returns the full upstream record for id.
func (s *SearchService) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	recipe, err := s.Source.FetchDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	result := *recipe
	result.EstimatedCookTime = EstimateCookTime(recipe)
	return &result, nil
}

// Options returns the choices offered by the search form.
func (s *SearchService) Options() *config.SearchOptions {
	if s.Cfg != nil && s.Cfg.SearchOptions != nil {
		return s.Cfg.SearchOptions
	}
	return config.DefaultSearchOptions()
}
