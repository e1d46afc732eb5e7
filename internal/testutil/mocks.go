package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/windoze95/pantrychef-api/internal/apperrors"
	"github.com/windoze95/pantrychef-api/internal/mealdb"
	"github.com/windoze95/pantrychef-api/internal/models"
	"github.com/windoze95/pantrychef-api/internal/repository"
)

// --- MockRecipeSource ---

// MockRecipeSource is a mock implementation of mealdb.RecipeSource. Calls
// are counted so tests can assert that no upstream request was made.
type MockRecipeSource struct {
	DiscoverCandidatesFunc func(ctx context.Context, criteria models.SearchCriteria) ([]models.RecipeStub, error)
	FetchDetailFunc        func(ctx context.Context, id string) (*models.Recipe, error)
	SearchByNameFunc       func(ctx context.Context, name string) ([]models.Recipe, error)

	DiscoverCalls atomic.Int32
	DetailCalls   atomic.Int32
	SearchCalls   atomic.Int32
}

var _ mealdb.RecipeSource = (*MockRecipeSource)(nil)

func (m *MockRecipeSource) DiscoverCandidates(ctx context.Context, criteria models.SearchCriteria) ([]models.RecipeStub, error) {
	m.DiscoverCalls.Add(1)
	if m.DiscoverCandidatesFunc != nil {
		return m.DiscoverCandidatesFunc(ctx, criteria)
	}
	return nil, fmt.Errorf("DiscoverCandidates not configured")
}

func (m *MockRecipeSource) FetchDetail(ctx context.Context, id string) (*models.Recipe, error) {
	m.DetailCalls.Add(1)
	if m.FetchDetailFunc != nil {
		return m.FetchDetailFunc(ctx, id)
	}
	return nil, fmt.Errorf("FetchDetail not configured")
}

func (m *MockRecipeSource) SearchByName(ctx context.Context, name string) ([]models.Recipe, error) {
	m.SearchCalls.Add(1)
	if m.SearchByNameFunc != nil {
		return m.SearchByNameFunc(ctx, name)
	}
	return nil, fmt.Errorf("SearchByName not configured")
}

// TotalCalls returns the number of upstream calls of any kind.
func (m *MockRecipeSource) TotalCalls() int {
	return int(m.DiscoverCalls.Load() + m.DetailCalls.Load() + m.SearchCalls.Load())
}

// NewCatalogSource returns a MockRecipeSource whose discovery returns stubs
// for every recipe in catalog, in order, and whose detail lookups are served
// from catalog. Unknown ids are reported as not found.
func NewCatalogSource(catalog ...*models.Recipe) *MockRecipeSource {
	byID := make(map[string]*models.Recipe, len(catalog))
	stubs := make([]models.RecipeStub, 0, len(catalog))
	for _, r := range catalog {
		byID[r.ID] = r
		stubs = append(stubs, r.Stub())
	}

	return &MockRecipeSource{
		DiscoverCandidatesFunc: func(ctx context.Context, criteria models.SearchCriteria) ([]models.RecipeStub, error) {
			return stubs, nil
		},
		FetchDetailFunc: func(ctx context.Context, id string) (*models.Recipe, error) {
			if r, ok := byID[id]; ok {
				return r, nil
			}
			return nil, apperrors.New(apperrors.CodeNotFound, "recipe "+id+" not found")
		},
	}
}

// --- MockSavedRecipeRepo ---

// MockSavedRecipeRepo is an in-memory implementation of repository.SavedRecipeRepo.
type MockSavedRecipeRepo struct {
	mu     sync.Mutex
	nextID uint
	Saved  map[string]*models.SavedRecipe

	// Err, when set, is returned by every method.
	Err error
}

var _ repository.SavedRecipeRepo = (*MockSavedRecipeRepo)(nil)

// NewMockSavedRecipeRepo creates an empty MockSavedRecipeRepo.
func NewMockSavedRecipeRepo() *MockSavedRecipeRepo {
	return &MockSavedRecipeRepo{Saved: make(map[string]*models.SavedRecipe)}
}

func savedKey(collectionID uuid.UUID, mealID string) string {
	return collectionID.String() + "/" + mealID
}

func (m *MockSavedRecipeRepo) ListSavedRecipes(collectionID uuid.UUID) ([]models.SavedRecipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	var out []models.SavedRecipe
	for _, s := range m.Saved {
		if s.CollectionID == collectionID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MockSavedRecipeRepo) GetSavedRecipe(collectionID uuid.UUID, mealID string) (*models.SavedRecipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	if s, ok := m.Saved[savedKey(collectionID, mealID)]; ok {
		return s, nil
	}
	return nil, apperrors.New(apperrors.CodeNotFound, "saved recipe not found")
}

func (m *MockSavedRecipeRepo) CreateSavedRecipe(saved *models.SavedRecipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	key := savedKey(saved.CollectionID, saved.MealID)
	if _, ok := m.Saved[key]; ok {
		return apperrors.New(apperrors.CodeConflict, "saved recipe already exists")
	}
	m.nextID++
	saved.ID = m.nextID
	m.Saved[key] = saved
	return nil
}

func (m *MockSavedRecipeRepo) DeleteSavedRecipe(collectionID uuid.UUID, mealID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	key := savedKey(collectionID, mealID)
	if _, ok := m.Saved[key]; !ok {
		return apperrors.New(apperrors.CodeNotFound, "saved recipe not found")
	}
	delete(m.Saved, key)
	return nil
}
