package models

// Tag is a label attached to visits. ID is nil until the backend persists
// the tag. FirstUsed and LastUsed decode tolerantly: an unparseable date is
// simply absent.
type Tag struct {
	ID          *int64     `json:"id"`
	DisplayText string     `json:"display_text"`
	Alias       *string    `json:"alias"`
	FirstUsed   ServerTime `json:"first_used"`
	LastUsed    ServerTime `json:"last_used"`
	UsageCount  int        `json:"usage_count"`
}

// Equal reports structural equality by display text, alias, and id.
// Usage statistics do not participate.
func (t Tag) Equal(other Tag) bool {
	if t.DisplayText != other.DisplayText {
		return false
	}
	if !eqStrPtr(t.Alias, other.Alias) {
		return false
	}
	return eqInt64Ptr(t.ID, other.ID)
}

func eqStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
