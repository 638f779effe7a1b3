package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"lifevibes/internal/domain"
	"lifevibes/internal/infrastructure/repository"
	"lifevibes/internal/logging"

	"github.com/google/uuid"
)

// QuestUseCase assigns one quest per user per UTC calendar day and validates
// completions through the ledger.
type QuestUseCase struct {
	questRepo repository.QuestRepository
	ledger    *LedgerUseCase
	logger    logging.Logger
	now       func() time.Time
	rng       *rand.Rand
}

func NewQuestUseCase(qr repository.QuestRepository, ledger *LedgerUseCase, logger logging.Logger) *QuestUseCase {
	return &QuestUseCase{
		questRepo: qr,
		ledger:    ledger,
		logger:    logger,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// questDay is the assignment key granularity: a UTC calendar day.
func (uc *QuestUseCase) questDay() string {
	return uc.now().UTC().Format("2006-01-02")
}

// AssignDaily returns today's quest for the user, creating one from the
// catalog on first call. Safe to call repeatedly: a concurrent duplicate
// insert loses against the (user, date) unique index and the winner's row
// is returned instead.
func (uc *QuestUseCase) AssignDaily(ctx context.Context, userID string) (*domain.Quest, error) {
	date := uc.questDay()

	quest, err := uc.questRepo.GetByUserAndDate(ctx, userID, date)
	if err == nil {
		return quest, nil
	}
	if !errors.Is(err, domain.ErrQuestNotFound) {
		return nil, err
	}

	def := domain.QuestCatalog[uc.rng.Intn(len(domain.QuestCatalog))]
	quest = &domain.Quest{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       def.Title,
		Description: def.Description,
		Phase:       def.Phase,
		XPReward:    def.XPReward,
		Date:        date,
		Status:      domain.QuestStatusPending,
		CreatedAt:   uc.now(),
	}

	if err := uc.questRepo.Create(ctx, quest); err != nil {
		if errors.Is(err, domain.ErrQuestExists) {
			// Lost the race; somebody else assigned today's quest first.
			return uc.questRepo.GetByUserAndDate(ctx, userID, date)
		}
		return nil, err
	}

	uc.logger.Info(ctx, "quest assigned", "user", userID, "quest", quest.ID, "title", quest.Title)
	return quest, nil
}

// ValidateCompletion completes the quest and reports what the ledger
// granted. Ownership and status are verified under the ledger transaction's
// row lock.
func (uc *QuestUseCase) ValidateCompletion(ctx context.Context, userID string, questID uuid.UUID) (*domain.ProgressionResult, error) {
	_, result, err := uc.ledger.CompleteQuest(ctx, userID, questID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info(ctx, "quest completed", "user", userID, "quest", questID, "xp", result.Amount)
	return result, nil
}
