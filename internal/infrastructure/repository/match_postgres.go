package repository

import (
	"context"
	"errors"
	"time"

	"lifevibes/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchGorm struct {
	ID         string `gorm:"primaryKey;size:260"`
	UserID1    string `gorm:"size:128"`
	UserID2    string `gorm:"size:128"`
	MatchScore int
	MatchDate  time.Time
	Status     string `gorm:"size:20"`
}

func (MatchGorm) TableName() string { return "matches" }

func toDomainMatch(m *MatchGorm) *domain.Match {
	return &domain.Match{
		ID:         m.ID,
		UserID1:    m.UserID1,
		UserID2:    m.UserID2,
		MatchScore: m.MatchScore,
		MatchDate:  m.MatchDate,
		Status:     domain.MatchStatus(m.Status),
	}
}

type PostgresMatchRepository struct {
	db *gorm.DB
}

func NewPostgresMatchRepository(db *gorm.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

// Upsert refreshes the score and date for an existing pair. Status is written
// only on insert, so an accepted or rejected match keeps its state when the
// pair is scored again.
func (r *PostgresMatchRepository) Upsert(ctx context.Context, m *domain.Match) error {
	model := &MatchGorm{
		ID:         m.ID,
		UserID1:    m.UserID1,
		UserID2:    m.UserID2,
		MatchScore: m.MatchScore,
		MatchDate:  m.MatchDate,
		Status:     string(m.Status),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id1", "user_id2", "match_score", "match_date"}),
		}).
		Create(model).Error
}

func (r *PostgresMatchRepository) Get(ctx context.Context, id string) (*domain.Match, error) {
	var model MatchGorm
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return toDomainMatch(&model), nil
}
