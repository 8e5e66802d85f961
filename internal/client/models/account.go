package models

import "hash/fnv"

// Account is the authenticated identity returned by login and register.
// Token is opaque; the client never inspects it.
type Account struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	Token           string  `json:"token"`
	Phone           *string `json:"phone_number"`
	Color           *string `json:"color"`
	ProfileImageURL *string `json:"profile_image"`
}

// fallbackColors is the palette used when an account has no stored color.
var fallbackColors = []string{
	"#D32F2F", "#7B1FA2", "#1976D2", "#00796B",
	"#F57C00", "#455A64", "#C2185B", "#388E3C",
}

// DisplayColor returns the stored hex color, or a fallback picked
// deterministically from the username so the same account always renders
// the same color.
func (a *Account) DisplayColor() string {
	if a.Color != nil && *a.Color != "" {
		return *a.Color
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(a.Username))
	return fallbackColors[h.Sum32()%uint32(len(fallbackColors))]
}
