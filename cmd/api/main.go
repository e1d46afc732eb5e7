package main

import (
	"os"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/pantrychef-api/internal/config"
	"github.com/windoze95/pantrychef-api/internal/db"
	"github.com/windoze95/pantrychef-api/internal/logger"
	"github.com/windoze95/pantrychef-api/internal/mealdb"
	"github.com/windoze95/pantrychef-api/internal/router"
	"go.uber.org/zap"
)

// init is called before the main function.
func init() {
	// Initialize structured logger (dev mode only when GIN_MODE asks for it)
	logger.Init(isDevMode())

	// Configure the runtime
	ConfigureRuntime()
}

// Entry point for the API.
func main() {
	defer logger.Sync()

	// Load the config
	var cfg *config.Config
	if c, err := config.LoadConfig(); err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	} else {
		cfg = c
	}

	// Check that all ENV variables are set
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("invalid config", zap.Error(err))
	}

	// Load search form options from YAML
	options, err := config.LoadSearchOptions(cfg.EnvVars.SearchOptionsPath)
	if err != nil {
		logger.Get().Fatal("failed to load search options", zap.Error(err))
	}
	cfg.SearchOptions = options

	// Connect to the database, if one is configured
	database, err := db.New(cfg)
	if err != nil {
		logger.Get().Fatal("failed to connect to database", zap.Error(err))
	}
	if database != nil {
		sqlDB, err := database.DB()
		if err != nil {
			logger.Get().Fatal("failed to get underlying sql.DB", zap.Error(err))
		}
		defer sqlDB.Close()
	}

	// Create the upstream recipe source
	source := mealdb.NewClientFromConfig(cfg)

	// Create a new gin router
	if !isDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := router.SetupRouter(cfg, source, database)

	// Run the server
	logger.Get().Info("starting server",
		zap.String("port", cfg.EnvVars.Port),
		zap.String("mealdb", cfg.EnvVars.MealDBBaseURL))
	if err := r.Run(":" + cfg.EnvVars.Port); err != nil {
		logger.Get().Fatal("server stopped", zap.Error(err))
	}
}

// isDevMode reports whether GIN_MODE selects debug or test. Unset means
// release, for both gin and the logger.
func isDevMode() bool {
	mode := os.Getenv("GIN_MODE")
	return mode == gin.DebugMode || mode == gin.TestMode
}

// ConfigureRuntime sets the number of operating system threads.
func ConfigureRuntime() {
	nuCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(nuCPU)
	logger.Get().Info("runtime configured", zap.Int("cpus", nuCPU))
}
