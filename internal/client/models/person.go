package models

// FriendStatus describes the relationship between the current account and a
// person.
type FriendStatus int

const (
	FriendStatusNone FriendStatus = iota
	FriendStatusRequestSent
	FriendStatusRequestReceived
	FriendStatusFriends
)

// Person is another user, or a phone contact who has not joined yet
// (Username nil). In a consistent record at most one of SentRequestID,
// ReceivedRequestID, and FriendshipID is non-nil.
type Person struct {
	ID                *int64  `json:"id"`
	Username          *string `json:"username"`
	DisplayName       *string `json:"display_name"`
	Phone             *string `json:"phone_number"`
	SentRequestID     *int64  `json:"sent_request_id"`
	ReceivedRequestID *int64  `json:"received_request_id"`
	FriendshipID      *int64  `json:"friendship_id"`
}

// FriendStatus derives the relationship from whichever id is set. Friendship
// wins over pending requests when the record is inconsistent.
func (p *Person) FriendStatus() FriendStatus {
	switch {
	case p.FriendshipID != nil:
		return FriendStatusFriends
	case p.ReceivedRequestID != nil:
		return FriendStatusRequestReceived
	case p.SentRequestID != nil:
		return FriendStatusRequestSent
	default:
		return FriendStatusNone
	}
}

// Name returns the best displayable name for the person.
func (p *Person) Name() string {
	if p.DisplayName != nil && *p.DisplayName != "" {
		return *p.DisplayName
	}
	if p.Username != nil {
		return *p.Username
	}
	if p.Phone != nil {
		return *p.Phone
	}
	return ""
}
