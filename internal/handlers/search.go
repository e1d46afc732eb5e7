package handlers

import (
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/windoze95/pantrychef-api/internal/apperrors"
	"github.com/windoze95/pantrychef-api/internal/models"
	"github.com/windoze95/pantrychef-api/internal/service"
)

// SearchHandler handles recipe search requests.
type SearchHandler struct {
	Service *service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{Service: searchService}
}

// AdvancedSearch handles POST /api/recipes/advanced-search.
func (h *SearchHandler) AdvancedSearch(c *gin.Context) {
	criteria := models.NewSearchCriteria()
	if err := c.ShouldBindJSON(&criteria); err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeValidation, "Invalid request body.", err), "")
		return
	}

	meals, err := h.Service.AdvancedSearch(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err, "Failed to perform advanced search.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// SearchByName handles GET /api/search?q=...
func (h *SearchHandler) SearchByName(c *gin.Context) {
	meals, err := h.Service.SearchByName(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to search recipes.")
		return
	}

	if meals == nil {
		meals = []models.Recipe{}
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// GetRecipe handles GET /api/recipe/:mealId.
func (h *SearchHandler) GetRecipe(c *gin.Context) {
	mealID := c.Param("mealId")
	if !govalidator.IsNumeric(mealID) {
		respondError(c, apperrors.New(apperrors.CodeValidation, "Invalid meal ID."), "")
		return
	}

	meal, err := h.Service.GetRecipe(c.Request.Context(), mealID)
	if err != nil {
		respondError(c, err, "Failed to load recipe.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// SearchOptions handles GET /api/search/options.
func (h *SearchHandler) SearchOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Options())
}
