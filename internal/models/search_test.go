package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCriteria_DecodeMaxTimeNumberOrString(t *testing.T) {
	var fromNumber, fromString SearchCriteria
	require.NoError(t, json.Unmarshal([]byte(`{"ingredients":["chicken"],"maxTime":45}`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`{"ingredients":["chicken"],"maxTime":"45"}`), &fromString))

	assert.Equal(t, Minutes(45), fromNumber.MaxTime)
	assert.Equal(t, Minutes(45), fromString.MaxTime)
}

func TestSearchCriteria_DecodeMaxTimeAbsentKeepsDefault(t *testing.T) {
	c := NewSearchCriteria()
	require.NoError(t, json.Unmarshal([]byte(`{"ingredients":["rice"],"maxTime":null}`), &c))

	assert.Equal(t, NoTimeLimit, c.MaxTime)
	assert.False(t, c.HasTimeLimit())
}

func TestSearchCriteria_DecodeMaxTimeInvalid(t *testing.T) {
	var c SearchCriteria
	assert.Error(t, json.Unmarshal([]byte(`{"maxTime":"soon"}`), &c))
}

func TestSearchCriteria_Normalized(t *testing.T) {
	ingredients := []string{"  Chicken ", "", "rice"}
	c := SearchCriteria{
		Ingredients: ingredients,
		Cuisine:     " Italian ",
		Exclusions:  []string{" ", "nuts"},
		MaxTime:     30,
	}

	n := c.Normalized()

	assert.Equal(t, []string{"Chicken", "rice"}, n.Ingredients)
	assert.Equal(t, "Italian", n.Cuisine)
	assert.Equal(t, []string{"nuts"}, n.Exclusions)
	assert.Equal(t, Minutes(30), n.MaxTime)
	assert.True(t, n.HasTimeLimit())
	// caller's slice untouched
	assert.Equal(t, []string{"  Chicken ", "", "rice"}, ingredients)
}
