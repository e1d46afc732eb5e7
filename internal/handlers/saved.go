package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/pantrychef-api/internal/apperrors"
	"github.com/windoze95/pantrychef-api/internal/middleware"
	"github.com/windoze95/pantrychef-api/internal/service"
)

// SavedHandler handles a collection's saved recipes. Routes using it must
// run behind middleware.RequireCollectionID.
type SavedHandler struct {
	Service *service.SavedRecipeService
}

// NewSavedHandler creates a new SavedHandler.
func NewSavedHandler(savedService *service.SavedRecipeService) *SavedHandler {
	return &SavedHandler{Service: savedService}
}

type saveRecipeRequest struct {
	MealID string `json:"mealId" binding:"required,numeric"`
}

// ListSaved handles GET /api/saved.
func (h *SavedHandler) ListSaved(c *gin.Context) {
	collectionID := middleware.CollectionIDFromContext(c)

	meals, err := h.Service.ListSaved(collectionID)
	if err != nil {
		respondError(c, err, "Failed to list saved recipes.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// SaveRecipe handles POST /api/saved.
func (h *SavedHandler) SaveRecipe(c *gin.Context) {
	collectionID := middleware.CollectionIDFromContext(c)

	var req saveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeValidation, "A numeric mealId is required.", err), "")
		return
	}

	meal, err := h.Service.SaveRecipe(c.Request.Context(), collectionID, req.MealID)
	if err != nil {
		respondError(c, err, "Failed to save recipe.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

// RemoveSaved handles DELETE /api/saved/:mealId.
func (h *SavedHandler) RemoveSaved(c *gin.Context) {
	collectionID := middleware.CollectionIDFromContext(c)

	if err := h.Service.RemoveSaved(collectionID, c.Param("mealId")); err != nil {
		respondError(c, err, "Failed to remove saved recipe.")
		return
	}

	c.Status(http.StatusNoContent)
}
