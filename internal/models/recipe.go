package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MaxIngredientSlots is the number of ingredient/measure slots a recipe carries upstream.
const MaxIngredientSlots = 20

// Ingredient is one (name, measure) slot of a recipe.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// RecipeStub is the minimal identity returned by a candidate-discovery query.
// It carries no ingredient or instruction data.
type RecipeStub struct {
	ID        string `json:"idMeal"`
	Name      string `json:"strMeal"`
	Thumbnail string `json:"strMealThumb"`
}

// Recipe is a full recipe record fetched by id.
//
// Ingredients holds only the present slots, in order; the first empty slot
// upstream ends the list. A zero-value Area or Instructions means the field
// was absent. Instructions are kept verbatim, surrounding whitespace included.
type Recipe struct {
	ID           string
	Name         string
	Thumbnail    string
	Area         string
	Category     string
	Instructions string
	Tags         []string
	YouTube      string
	Source       string
	Ingredients  []Ingredient

	// EstimatedCookTime is filled in for responses only and is never read
	// back by the search pipeline.
	EstimatedCookTime int
}

// IngredientNames returns the lower-cased names of the present ingredient slots.
func (r *Recipe) IngredientNames() []string {
	names := make([]string, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		names[i] = strings.ToLower(ing.Name)
	}
	return names
}

// Stub returns the recipe's identity fields.
func (r *Recipe) Stub() RecipeStub {
	return RecipeStub{ID: r.ID, Name: r.Name, Thumbnail: r.Thumbnail}
}

// UnmarshalJSON decodes a recipe from TheMealDB's flat field layout
// (strIngredient1..strIngredient20 and friends). Null or missing fields
// decode as empty strings.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		// null
		return nil
	}

	text := func(key string) string {
		switch v := raw[key].(type) {
		case string:
			return v
		case float64:
			return fmt.Sprintf("%.0f", v)
		default:
			return ""
		}
	}
	field := func(key string) string {
		return strings.TrimSpace(text(key))
	}

	*r = Recipe{
		ID:           field("idMeal"),
		Name:         field("strMeal"),
		Thumbnail:    field("strMealThumb"),
		Area:         field("strArea"),
		Category:     field("strCategory"),
		Instructions: text("strInstructions"),
		Tags:         splitTags(field("strTags")),
		YouTube:      field("strYoutube"),
		Source:       field("strSource"),
	}

	for i := 1; i <= MaxIngredientSlots; i++ {
		name := field(fmt.Sprintf("strIngredient%d", i))
		if name == "" {
			break
		}
		r.Ingredients = append(r.Ingredients, Ingredient{
			Name:    name,
			Measure: field(fmt.Sprintf("strMeasure%d", i)),
		})
	}

	return nil
}

// MarshalJSON encodes the recipe in TheMealDB's field layout so clients
// written against the upstream API can render it unchanged. Unused slots
// are emitted as null, as upstream does.
func (r Recipe) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"idMeal":          r.ID,
		"strMeal":         r.Name,
		"strMealThumb":    r.Thumbnail,
		"strArea":         nullable(r.Area),
		"strCategory":     nullable(r.Category),
		"strInstructions": nullable(r.Instructions),
		"strTags":         nullable(strings.Join(r.Tags, ",")),
		"strYoutube":      nullable(r.YouTube),
		"strSource":       nullable(r.Source),
	}
	for i := 1; i <= MaxIngredientSlots; i++ {
		var name, measure any
		if i <= len(r.Ingredients) {
			name = r.Ingredients[i-1].Name
			measure = r.Ingredients[i-1].Measure
		}
		out[fmt.Sprintf("strIngredient%d", i)] = name
		out[fmt.Sprintf("strMeasure%d", i)] = measure
	}
	if r.EstimatedCookTime > 0 {
		out["estimatedCookTime"] = r.EstimatedCookTime
	}
	return json.Marshal(out)
}

// Scan is a GORM hook that scans jsonb into a Recipe.
func (r *Recipe) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, r)
}

// Value is a GORM hook that returns the json value of a Recipe.
func (r Recipe) Value() (driver.Value, error) {
	snapshot := r
	snapshot.EstimatedCookTime = 0
	return json.Marshal(snapshot)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
