package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifevibes/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresProgressionRepository keeps the (profile, avatar, stats) triple
// consistent. Every mutation runs in one transaction with the profile row
// locked, so concurrent awards serialize instead of losing updates.
type PostgresProgressionRepository struct {
	db *gorm.DB
}

func NewPostgresProgressionRepository(db *gorm.DB) *PostgresProgressionRepository {
	return &PostgresProgressionRepository{db: db}
}

func (r *PostgresProgressionRepository) AwardXP(ctx context.Context, userID string, delta int) (*domain.ProgressionResult, error) {
	if delta < 0 {
		return nil, fmt.Errorf("negative xp delta: %d", delta)
	}
	var result *domain.ProgressionResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = applyAward(tx, userID, delta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresProgressionRepository) CompleteQuest(ctx context.Context, userID string, questID uuid.UUID) (*domain.Quest, *domain.ProgressionResult, error) {
	var (
		quest  *domain.Quest
		result *domain.ProgressionResult
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model QuestGorm
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, "id = ?", questID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrQuestNotFound
			}
			return err
		}
		if model.UserID != userID {
			return domain.ErrQuestNotOwned
		}
		// Re-checked under the row lock: two racing completions cannot both
		// pass this guard.
		if model.Status == string(domain.QuestStatusCompleted) {
			return domain.ErrQuestAlreadyCompleted
		}

		now := time.Now()
		if err := tx.Model(&QuestGorm{}).
			Where("id = ?", questID).
			Updates(map[string]interface{}{
				"status":       string(domain.QuestStatusCompleted),
				"completed_at": now,
			}).Error; err != nil {
			return err
		}
		model.Status = string(domain.QuestStatusCompleted)
		model.CompletedAt = &now
		quest = toDomainQuest(&model)

		result, err = applyAward(tx, userID, model.XPReward)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return quest, result, nil
}

// applyAward does the ledger writes inside an open transaction.
func applyAward(tx *gorm.DB, userID string, delta int) (*domain.ProgressionResult, error) {
	var profile ProfileGorm
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	newXP := profile.XP + delta
	newLevel := domain.LevelForXP(newXP)
	leveledUp := newLevel > profile.Level
	now := time.Now()

	if err := tx.Model(&ProfileGorm{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"xp":               newXP,
			"level":            newLevel,
			"streak":           gorm.Expr("streak + ?", 1),
			"last_active_date": now,
			"updated_at":       now,
		}).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&AvatarGorm{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"xp":           newXP,
			"level":        newLevel,
			"last_updated": now,
		}).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&StatsGorm{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_quests_completed": gorm.Expr("total_quests_completed + ?", 1),
			"updated_at":             now,
		}).Error; err != nil {
		return nil, err
	}

	return &domain.ProgressionResult{
		Amount:    delta,
		NewXP:     newXP,
		NewLevel:  newLevel,
		LeveledUp: leveledUp,
	}, nil
}
