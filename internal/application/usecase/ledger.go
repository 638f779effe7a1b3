package usecase

import (
	"context"

	"lifevibes/internal/domain"
	"lifevibes/internal/infrastructure/repository"
	"lifevibes/internal/logging"

	"github.com/google/uuid"
)

// LedgerUseCase owns XP awarding. Level computation and the mirroring of
// profile, avatar and stats happen inside a single store transaction; the
// ledger never retries on its own beyond what the store does for write
// conflicts.
type LedgerUseCase struct {
	progressionRepo repository.ProgressionRepository
	logger          logging.Logger
}

func NewLedgerUseCase(pr repository.ProgressionRepository, logger logging.Logger) *LedgerUseCase {
	return &LedgerUseCase{progressionRepo: pr, logger: logger}
}

// Award grants a non-negative XP delta to the user.
func (uc *LedgerUseCase) Award(ctx context.Context, userID string, delta int) (*domain.ProgressionResult, error) {
	result, err := uc.progressionRepo.AwardXP(ctx, userID, delta)
	if err != nil {
		return nil, err
	}
	if result.LeveledUp {
		uc.logger.Info(ctx, "level up", "user", userID, "level", result.NewLevel)
	}
	return result, nil
}

// CompleteQuest marks the quest completed and grants its reward in the same
// transaction, so a quest can never end up completed without its XP.
func (uc *LedgerUseCase) CompleteQuest(ctx context.Context, userID string, questID uuid.UUID) (*domain.Quest, *domain.ProgressionResult, error) {
	quest, result, err := uc.progressionRepo.CompleteQuest(ctx, userID, questID)
	if err != nil {
		return nil, nil, err
	}
	if result.LeveledUp {
		uc.logger.Info(ctx, "level up", "user", userID, "level", result.NewLevel)
	}
	return quest, result, nil
}
