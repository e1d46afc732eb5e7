package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultMealDBBaseURL is TheMealDB's public v1 API using the test key.
const DefaultMealDBBaseURL = "https://www.themealdb.com/api/json/v1/1"

// Config holds the application configuration.
type Config struct {
	EnvVars       EnvVars        `json:"env"`
	SearchOptions *SearchOptions `json:"-"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Port              string        `env:"PORT" envDefault:"8080"`
	MealDBBaseURL     string        `env:"MEALDB_BASE_URL" envDefault:"https://www.themealdb.com/api/json/v1/1"`
	UpstreamTimeout   time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
	UpstreamRPS       int           `env:"UPSTREAM_RPS" envDefault:"20" optional:"true"`
	UpstreamRetryMax  int           `env:"UPSTREAM_RETRY_MAX" envDefault:"0" optional:"true"`
	DetailConcurrency int           `env:"DETAIL_CONCURRENCY" envDefault:"8"`
	AllowedOrigins    []string      `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	RateLimitRPS      int           `env:"RATE_LIMIT_RPS" envDefault:"10" optional:"true"`
	DatabaseUrl       string        `env:"DATABASE_URL" optional:"true"`
	SearchOptionsPath string        `env:"SEARCH_OPTIONS_PATH" envDefault:"configs/search.yaml" optional:"true"`
}

// LoadConfig parses environment variables into the Config struct. A .env
// file in the working directory is read first when present; variables
// already set in the environment win.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// CheckConfigEnvFields validates that all required EnvVars fields are set
// and that the upstream base URL is usable.
func (c *Config) CheckConfigEnvFields() error {
	if err := checkFieldsRecursive(reflect.ValueOf(c.EnvVars)); err != nil {
		return err
	}
	if !govalidator.IsURL(c.EnvVars.MealDBBaseURL) {
		return fmt.Errorf("$MealDBBaseURL is not a valid URL: %q", c.EnvVars.MealDBBaseURL)
	}
	if c.EnvVars.DetailConcurrency < 1 {
		return fmt.Errorf("$DetailConcurrency must be at least 1")
	}
	return nil
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if field.IsZero() {
			return fmt.Errorf("$%s must be set", fieldType.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}
