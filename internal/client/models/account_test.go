package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Unmarshal(t *testing.T) {
	input := `{
		"id": 7,
		"username": "ann42",
		"email": "ann@example.com",
		"token": "d4f1a2b3",
		"phone_number": "+15551234567",
		"color": "#1976D2"
	}`
	var a Account
	require.NoError(t, json.Unmarshal([]byte(input), &a))

	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, "ann42", a.Username)
	assert.Equal(t, "ann@example.com", a.Email)
	assert.Equal(t, "d4f1a2b3", a.Token)
	require.NotNil(t, a.Phone)
	assert.Equal(t, "+15551234567", *a.Phone)
	assert.Nil(t, a.ProfileImageURL)
}

// "phone" is not the wire name; only "phone_number" populates the field.
func TestAccount_Unmarshal_RenameTable(t *testing.T) {
	var a Account
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"phone":"+15551234567"}`), &a))
	assert.Nil(t, a.Phone)
}

func TestAccount_DisplayColor(t *testing.T) {
	stored := &Account{Username: "ann42", Color: strPtr("#AABBCC")}
	assert.Equal(t, "#AABBCC", stored.DisplayColor())

	fallback := &Account{Username: "ann42"}
	first := fallback.DisplayColor()
	assert.NotEmpty(t, first)
	// deterministic: same account always renders the same color
	assert.Equal(t, first, fallback.DisplayColor())

	empty := &Account{Username: "ann42", Color: strPtr("")}
	assert.Equal(t, first, empty.DisplayColor())
}
