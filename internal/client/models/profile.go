package models

// Profile is the server-shaped read model returned by the profile endpoint:
// a person plus optional detail lists, with the friendship ids duplicated at
// the top level. It is a composite, not an independently owned entity.
type Profile struct {
	Person            Person          `json:"person"`
	Establishments    []Establishment `json:"establishments"`
	Visits            []Visit         `json:"visits"`
	Tags              []Tag           `json:"tags"`
	SentRequestID     *int64          `json:"sent_request_id"`
	ReceivedRequestID *int64          `json:"received_request_id"`
	FriendshipID      *int64          `json:"friendship_id"`
}
