package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/windoze95/pantrychef-api/internal/apperrors"
	"github.com/windoze95/pantrychef-api/internal/config"
	"github.com/windoze95/pantrychef-api/internal/logger"
	"github.com/windoze95/pantrychef-api/internal/models"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 10 * time.Second
	// Responses are a few KB per meal; anything past this is not TheMealDB.
	maxResponseBytes = 4 << 20

	endpointFilter = "filter.php"
	endpointLookup = "lookup.php"
	endpointSearch = "search.php"
)

// Options configures a Client.
type Options struct {
	BaseURL string
	// Timeout bounds each call, including rate limiter waits and retries.
	Timeout time.Duration
	// RPS caps outbound requests per second across all searches. Zero or
	// less disables the cap.
	RPS int
	// RetryMax is the number of retries for failed idempotent calls.
	RetryMax int
	Logger   *zap.Logger
}

// Client implements RecipeSource against TheMealDB's JSON API. It is safe
// for concurrent use; the connection pool and rate limiter are shared by
// all callers.
type Client struct {
	baseURL    string
	timeout    time.Duration
	limiter    *rate.Limiter
	httpClient *retryablehttp.Client
}

var _ RecipeSource = (*Client)(nil)

// NewClient creates a Client.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.BaseURL == "" {
		opts.BaseURL = config.DefaultMealDBBaseURL
	}

	limit := rate.Inf
	burst := 1
	if opts.RPS > 0 {
		limit = rate.Limit(opts.RPS)
		burst = opts.RPS
	}

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = opts.RetryMax
	httpClient.HTTPClient.Timeout = opts.Timeout
	httpClient.Logger = logger.NewLeveled(opts.Logger)
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		timeout:    opts.Timeout,
		limiter:    rate.NewLimiter(limit, burst),
		httpClient: httpClient,
	}
}

// NewClientFromConfig creates a Client from the application config.
func NewClientFromConfig(cfg *config.Config) *Client {
	return NewClient(Options{
		BaseURL:  cfg.EnvVars.MealDBBaseURL,
		Timeout:  cfg.EnvVars.UpstreamTimeout,
		RPS:      cfg.EnvVars.UpstreamRPS,
		RetryMax: cfg.EnvVars.UpstreamRetryMax,
		Logger:   logger.With(zap.String("component", "mealdb")),
	})
}

type stubsResponse struct {
	Meals []models.RecipeStub `json:"meals"`
}

type recipesResponse struct {
	Meals []models.Recipe `json:"meals"`
}

// DiscoverCandidates lists stubs by cuisine when one is given, otherwise by
// the first ingredient. The narrower query is refined later by filtering.
func (c *Client) DiscoverCandidates(ctx context.Context, criteria models.SearchCriteria) ([]models.RecipeStub, error) {
	params := url.Values{}
	switch {
	case criteria.Cuisine != "":
		params.Set("a", criteria.Cuisine)
	case len(criteria.Ingredients) > 0:
		params.Set("i", criteria.Ingredients[0])
	default:
		return nil, apperrors.New(apperrors.CodeValidation, "no cuisine or ingredient to discover by")
	}

	var resp stubsResponse
	if err := c.get(ctx, endpointFilter, params, &resp); err != nil {
		return nil, err
	}

	stubs := make([]models.RecipeStub, 0, len(resp.Meals))
	for _, stub := range resp.Meals {
		if stub.ID != "" {
			stubs = append(stubs, stub)
		}
	}
	return stubs, nil
}

// FetchDetail looks up one recipe by id.
func (c *Client) FetchDetail(ctx context.Context, id string) (*models.Recipe, error) {
	var resp recipesResponse
	if err := c.get(ctx, endpointLookup, url.Values{"i": {id}}, &resp); err != nil {
		return nil, err
	}

	if len(resp.Meals) == 0 || resp.Meals[0].ID == "" {
		return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("recipe %s not found", id))
	}
	recipe := resp.Meals[0]
	return &recipe, nil
}

// SearchByName returns recipes whose name matches name.
func (c *Client) SearchByName(ctx context.Context, name string) ([]models.Recipe, error) {
	var resp recipesResponse
	if err := c.get(ctx, endpointSearch, url.Values{"s": {name}}, &resp); err != nil {
		return nil, err
	}

	recipes := make([]models.Recipe, 0, len(resp.Meals))
	for _, r := range resp.Meals {
		if r.ID != "" {
			recipes = append(recipes, r)
		}
	}
	return recipes, nil
}

// get performs one JSON GET and decodes the body into out. Every failure is
// returned as CodeUpstreamUnavailable.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) (err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		observeUpstream(endpoint, err, time.Since(start))
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return apperrors.Wrap(apperrors.CodeUpstreamUnavailable, endpoint+" rate limit wait cancelled", err)
	}

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "failed to create "+endpoint+" request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUpstreamUnavailable, endpoint+" request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "failed to read "+endpoint+" response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.Wrap(apperrors.CodeUpstreamUnavailable, endpoint+" returned an error",
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200)))
	}

	// empty body: no meals
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "failed to parse "+endpoint+" response", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
