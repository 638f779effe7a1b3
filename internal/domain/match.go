package domain

import "time"

type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
)

// Match is a compatibility record for an unordered pair of users.
type Match struct {
	ID         string
	UserID1    string
	UserID2    string
	MatchScore int
	MatchDate  time.Time
	Status     MatchStatus
}

// MatchID builds the composite identifier for a pair of users. The ids are
// sorted first, so both orderings resolve to the same record.
func MatchID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}

// RedactedProfile is the view of another user exposed by match results.
// It never carries the email address.
type RedactedProfile struct {
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoURL"`
	Level        int    `json:"level"`
	CurrentPhase Phase  `json:"currentPhase"`
}

// Redacted returns the profile view safe to show to other users.
func (p *UserProfile) Redacted() RedactedProfile {
	return RedactedProfile{
		DisplayName:  p.DisplayName,
		PhotoURL:     p.PhotoURL,
		Level:        p.Level,
		CurrentPhase: p.CurrentPhase,
	}
}
