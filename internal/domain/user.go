package domain

import "time"

// Phase is the coarse life-stage tag used across profiles and quests.
type Phase string

const (
	PhaseSer   Phase = "SER"
	PhaseHacer Phase = "HACER"
	PhaseTener Phase = "TENER"
)

// XPPerLevel is how much experience one level spans.
const XPPerLevel = 100

// LevelForXP computes the level that corresponds to accumulated experience.
// Level 1 starts at 0 XP, level 2 at 100 XP, and so on.
func LevelForXP(xp int) int {
	return xp/XPPerLevel + 1
}

// UserProfile is the main user record. IDs come from the external identity
// provider, so they are opaque strings, not UUIDs.
type UserProfile struct {
	UserID              string
	Email               string
	DisplayName         string
	PhotoURL            string
	CompletedOnboarding bool
	CurrentPhase        Phase
	Level               int
	XP                  int
	Badges              []string
	Streak              int
	LastActiveDate      time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Avatar mirrors the profile's level and XP and carries the cosmetic state.
type Avatar struct {
	UserID               string
	FaceType             string
	EyeStyle             string
	EyeColor             string
	MouthStyle           string
	HairStyle            string
	HairColor            string
	SkinColor            string
	Outfit               string
	Accessories          []string
	Level                int
	XP                   int
	Badges               []string
	Manifesto            string
	ManifestoGeneratedAt time.Time
	LastUpdated          time.Time
}

// NewDefaultAvatar returns the cosmetic configuration every new user starts with.
func NewDefaultAvatar(userID string) *Avatar {
	return &Avatar{
		UserID:      userID,
		FaceType:    "round",
		EyeStyle:    "normal",
		EyeColor:    "#4A5568",
		MouthStyle:  "smile",
		HairStyle:   "short",
		HairColor:   "#1A202C",
		SkinColor:   "#FBD38D",
		Outfit:      "casual",
		Accessories: []string{},
		Level:       1,
		XP:          0,
		Badges:      []string{},
	}
}

// UserStats are monotonic activity counters, one row per user.
type UserStats struct {
	UserID                string
	TotalQuestsCompleted  int
	TotalContentGenerated int
	TotalMatches          int
	TotalMessages         int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ProgressionResult is what an XP award reports back to the caller.
type ProgressionResult struct {
	Amount    int
	NewXP     int
	NewLevel  int
	LeveledUp bool
}
