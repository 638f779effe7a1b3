// Package repository persists LifeVibes entities. The interfaces below are
// what the usecases depend on; Postgres implementations live next to them,
// and an in-memory implementation backs the tests.
package repository

import (
	"context"
	"time"

	"lifevibes/internal/domain"

	"github.com/google/uuid"
)

// ProfileRepository manages the per-user triple (profile, avatar, stats).
type ProfileRepository interface {
	// CreateBundle creates all three records in one transaction.
	CreateBundle(ctx context.Context, p *domain.UserProfile, a *domain.Avatar, s *domain.UserStats) error
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	GetAvatar(ctx context.Context, userID string) (*domain.Avatar, error)
	GetStats(ctx context.Context, userID string) (*domain.UserStats, error)
	SetManifesto(ctx context.Context, userID, manifesto string, generatedAt time.Time) error
	IncrementMatches(ctx context.Context, userID string) error
	IncrementMessages(ctx context.Context, userID string) error
	IncrementContentGenerated(ctx context.Context, userID string) error
}

// QuestRepository manages daily quests.
type QuestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quest, error)
	GetByUserAndDate(ctx context.Context, userID, date string) (*domain.Quest, error)
	// Create inserts a quest; the (user_id, date) unique index makes it fail
	// with domain.ErrQuestExists when the day already has one.
	Create(ctx context.Context, q *domain.Quest) error
}

// ProgressionRepository is the transactional ledger over the user triple.
type ProgressionRepository interface {
	// AwardXP applies a non-negative delta to the user's XP, recomputes the
	// level, bumps the streak, mirrors the avatar and increments the
	// quest-completed counter. All writes commit atomically or not at all.
	AwardXP(ctx context.Context, userID string, delta int) (*domain.ProgressionResult, error)
	// CompleteQuest marks the quest completed and applies its reward inside
	// the same transaction, so a committed quest always has its XP granted.
	CompleteQuest(ctx context.Context, userID string, questID uuid.UUID) (*domain.Quest, *domain.ProgressionResult, error)
}

// MatchRepository stores compatibility results keyed by the sorted pair id.
type MatchRepository interface {
	// Upsert refreshes score and date; status is only written on first insert.
	Upsert(ctx context.Context, m *domain.Match) error
	Get(ctx context.Context, id string) (*domain.Match, error)
}

// CoachRepository is the append-only conversation log.
type CoachRepository interface {
	AppendMessage(ctx context.Context, m *domain.CoachMessage) error
	ListMessages(ctx context.Context, userID string, limit int) ([]domain.CoachMessage, error)
}

var (
	_ ProfileRepository     = (*PostgresProfileRepository)(nil)
	_ QuestRepository       = (*PostgresQuestRepository)(nil)
	_ ProgressionRepository = (*PostgresProgressionRepository)(nil)
	_ MatchRepository       = (*PostgresMatchRepository)(nil)
	_ CoachRepository       = (*PostgresCoachRepository)(nil)

	_ ProfileRepository     = (*Memory)(nil)
	_ QuestRepository       = (*Memory)(nil)
	_ ProgressionRepository = (*Memory)(nil)
	_ MatchRepository       = (*Memory)(nil)
	_ CoachRepository       = (*Memory)(nil)
)
