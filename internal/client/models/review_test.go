package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReview_Unmarshal(t *testing.T) {
	input := `{
		"id": "xAG4O7l-t1ubbwVAlPnDKg",
		"rating": 5,
		"text": "Went back again...",
		"time_created": "2016-08-29 00:41:13",
		"user": {"name": "Ella A.", "image_url": "http://example.com/ella.jpg"}
	}`
	var r Review
	require.NoError(t, json.Unmarshal([]byte(input), &r))

	assert.Equal(t, "xAG4O7l-t1ubbwVAlPnDKg", r.ID)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, time.Date(2016, 8, 29, 0, 41, 13, 0, time.UTC), r.CreatedAt)
	assert.Equal(t, "Ella A.", r.User.Name)
	require.NotNil(t, r.User.ImageURL)
}

func TestReview_Unmarshal_Degrades(t *testing.T) {
	input := `{"id": "x", "rating": 4, "text": "ok", "time_created": "yesterday", "user": {"name": "Bo"}}`
	var r Review
	require.NoError(t, json.Unmarshal([]byte(input), &r))
	assert.True(t, r.CreatedAt.IsZero())
	assert.Nil(t, r.User.ImageURL)
}
