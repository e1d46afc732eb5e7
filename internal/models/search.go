package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	// NoTimeLimit is the maxTime value meaning "no time constraint". It is
	// the top of the client's cook-time slider.
	NoTimeLimit Minutes = 105

	// NoInstructionsCookTime is the estimate for a recipe without
	// instructions. It is larger than any usable maxTime.
	NoInstructionsCookTime = 999
)

// Minutes is a duration in whole minutes. It decodes from a JSON number or
// a numeric string, since range inputs submit their value as a string.
type Minutes int

// UnmarshalJSON implements json.Unmarshaler.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid minutes value %s", data)
	}
	*m = Minutes(n)
	return nil
}

// SearchCriteria is the caller's input for one advanced search.
type SearchCriteria struct {
	Ingredients []string `json:"ingredients" validate:"min=1,dive,required"`
	Cuisine     string   `json:"cuisine"`
	Exclusions  []string `json:"exclusions" validate:"dive,required"`
	MaxTime     Minutes  `json:"maxTime" validate:"min=0"`
}

// NewSearchCriteria returns criteria with defaults applied: no cuisine, no
// exclusions and no time limit.
func NewSearchCriteria(ingredients ...string) SearchCriteria {
	return SearchCriteria{
		Ingredients: ingredients,
		MaxTime:     NoTimeLimit,
	}
}

// HasTimeLimit reports whether MaxTime constrains the search.
func (c SearchCriteria) HasTimeLimit() bool {
	return c.MaxTime < NoTimeLimit
}

// Normalized returns a copy with surrounding whitespace trimmed and blank
// ingredients and exclusions removed. The receiver's slices are not modified.
func (c SearchCriteria) Normalized() SearchCriteria {
	return SearchCriteria{
		Ingredients: compact(c.Ingredients),
		Cuisine:     strings.TrimSpace(c.Cuisine),
		Exclusions:  compact(c.Exclusions),
		MaxTime:     c.MaxTime,
	}
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
