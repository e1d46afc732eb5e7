package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/windoze95/pantrychef-api/internal/config"
	"github.com/windoze95/pantrychef-api/internal/handlers"
	"github.com/windoze95/pantrychef-api/internal/logger"
	"github.com/windoze95/pantrychef-api/internal/mealdb"
	"github.com/windoze95/pantrychef-api/internal/middleware"
	"github.com/windoze95/pantrychef-api/internal/repository"
	"github.com/windoze95/pantrychef-api/internal/service"
	"gorm.io/gorm"
)

// SetupRouter sets up the Gin router. Saved-recipe routes are registered
// only when database is non-nil.
func SetupRouter(cfg *config.Config, source mealdb.RecipeSource, database *gorm.DB) *gin.Engine {
	// Create default Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.EnvVars.AllowedOrigins) == 0 || cfg.EnvVars.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.EnvVars.AllowedOrigins
	}
	corsConfig.AddAllowHeaders(middleware.CollectionHeader)
	corsConfig.AddExposeHeaders("X-Request-ID")
	r.Use(cors.New(corsConfig))

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())
	r.Use(middleware.Metrics())

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Search-related routes setup
	searchService := service.NewSearchService(cfg, source)
	searchHandler := handlers.NewSearchHandler(searchService)

	api := r.Group("/api")
	api.Use(middleware.RateLimitByIP(cfg.EnvVars.RateLimitRPS, time.Minute, 10*time.Minute))
	{
		// Search by ingredients with optional cuisine, exclusions and time limit
		api.POST("/recipes/advanced-search", searchHandler.AdvancedSearch)
		// Search by recipe name
		api.GET("/search", searchHandler.SearchByName)
		// Cuisine list and time slider choices
		api.GET("/search/options", searchHandler.SearchOptions)
		// Get a single recipe by its meal ID
		api.GET("/recipe/:mealId", searchHandler.GetRecipe)
	}

	if database == nil {
		logger.Get().Info("no database configured, saved recipe routes disabled")
		return r
	}

	// Saved-recipe routes setup
	savedRepo := repository.NewSavedRecipeRepository(database)
	savedService := service.NewSavedRecipeService(savedRepo, source)
	savedHandler := handlers.NewSavedHandler(savedService)

	saved := api.Group("/saved", middleware.RequireCollectionID())
	{
		saved.GET("", savedHandler.ListSaved)
		saved.POST("", savedHandler.SaveRecipe)
		saved.DELETE("/:mealId", savedHandler.RemoveSaved)
	}

	return r
}
