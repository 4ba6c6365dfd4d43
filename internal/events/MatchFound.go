package events

var MatchFoundTopic = "MatchFoundEvent"

// MatchFound is published when a profile/listing pair scores at or
// above the recommendation threshold for the first time.
type MatchFound struct {
	ProfileID string
	ListingID string
	Score     float64
	Summary   []string
}

var ProfileDeletedTopic = "ProfileDeletedEvent"

type ProfileDeleted struct {
	ProfileID string
}
