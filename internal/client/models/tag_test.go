package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_Unmarshal(t *testing.T) {
	input := `{
		"id": 5,
		"display_text": "date night",
		"alias": "romantic",
		"first_used": "2016-09-28 08-55:29",
		"last_used": "garbage",
		"usage_count": 3
	}`
	var tag Tag
	require.NoError(t, json.Unmarshal([]byte(input), &tag))

	require.NotNil(t, tag.ID)
	assert.Equal(t, int64(5), *tag.ID)
	assert.Equal(t, "date night", tag.DisplayText)
	assert.False(t, tag.FirstUsed.IsZero())
	// unparseable optional date degrades, it does not fail the decode
	assert.True(t, tag.LastUsed.IsZero())
	assert.Equal(t, 3, tag.UsageCount)
}

func TestTag_Unmarshal_Unpersisted(t *testing.T) {
	var tag Tag
	require.NoError(t, json.Unmarshal([]byte(`{"display_text": "brunch"}`), &tag))
	assert.Nil(t, tag.ID)
	assert.Nil(t, tag.Alias)
}

func TestTag_Equal(t *testing.T) {
	base := Tag{ID: int64Ptr(1), DisplayText: "brunch", Alias: strPtr("b"), UsageCount: 5}

	same := Tag{ID: int64Ptr(1), DisplayText: "brunch", Alias: strPtr("b"), UsageCount: 99}
	assert.True(t, base.Equal(same), "usage statistics must not participate")

	assert.False(t, base.Equal(Tag{ID: int64Ptr(2), DisplayText: "brunch", Alias: strPtr("b")}))
	assert.False(t, base.Equal(Tag{ID: int64Ptr(1), DisplayText: "dinner", Alias: strPtr("b")}))
	assert.False(t, base.Equal(Tag{ID: int64Ptr(1), DisplayText: "brunch"}))
	assert.True(t, Tag{DisplayText: "x"}.Equal(Tag{DisplayText: "x"}))
}
