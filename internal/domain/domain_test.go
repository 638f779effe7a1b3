package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{110, 2},
		{199, 2},
		{200, 3},
		{1050, 11},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelForXP(tc.xp), "xp=%d", tc.xp)
	}
}

func TestMatchIDSymmetric(t *testing.T) {
	assert.Equal(t, MatchID("alice", "bob"), MatchID("bob", "alice"))
	assert.Equal(t, "alice_bob", MatchID("bob", "alice"))
	assert.Equal(t, "a_a", MatchID("a", "a"))
}

func TestRedactedProfileHidesEmail(t *testing.T) {
	p := &UserProfile{
		UserID:       "u1",
		Email:        "secret@example.com",
		DisplayName:  "Ana",
		PhotoURL:     "https://cdn/p.png",
		Level:        3,
		CurrentPhase: PhaseHacer,
	}
	r := p.Redacted()
	assert.Equal(t, "Ana", r.DisplayName)
	assert.Equal(t, "https://cdn/p.png", r.PhotoURL)
	assert.Equal(t, 3, r.Level)
	assert.Equal(t, PhaseHacer, r.CurrentPhase)
}

func TestNewDefaultAvatar(t *testing.T) {
	a := NewDefaultAvatar("u1")
	assert.Equal(t, "u1", a.UserID)
	assert.Equal(t, "round", a.FaceType)
	assert.Equal(t, "casual", a.Outfit)
	assert.Empty(t, a.Accessories)
	assert.Equal(t, 1, a.Level)
	assert.Zero(t, a.XP)
}

func TestQuestCatalog(t *testing.T) {
	assert.Len(t, QuestCatalog, 3)
	for _, def := range QuestCatalog {
		assert.NotEmpty(t, def.Title)
		assert.Greater(t, def.XPReward, 0)
	}
}
