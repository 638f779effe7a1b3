package usecase

import (
	"context"
	"math/rand"
	"time"

	"lifevibes/internal/domain"
	"lifevibes/internal/infrastructure/repository"
	"lifevibes/internal/logging"
)

// MatchResult is what calculateMatch returns to the caller.
type MatchResult struct {
	MatchScore int                    `json:"matchScore"`
	MatchID    string                 `json:"matchId"`
	TargetUser domain.RedactedProfile `json:"targetUser"`
}

// MatchUseCase scores compatibility between two users. The score is still
// the placeholder policy: uniform random in [60,100]. The weighted Softvibes
// blend (40% values, 30% purpose, 20% skills, 10% interests) is future work.
type MatchUseCase struct {
	profileRepo repository.ProfileRepository
	matchRepo   repository.MatchRepository
	logger      logging.Logger
	now         func() time.Time
	rng         *rand.Rand
}

func NewMatchUseCase(pr repository.ProfileRepository, mr repository.MatchRepository, logger logging.Logger) *MatchUseCase {
	return &MatchUseCase{
		profileRepo: pr,
		matchRepo:   mr,
		logger:      logger,
		now:         time.Now,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Calculate scores the caller against the target and upserts the pair's
// match record. Repeated calls refresh the score but never duplicate the
// record or reset an accepted/rejected status.
func (uc *MatchUseCase) Calculate(ctx context.Context, callerID, targetID string) (*MatchResult, error) {
	if _, err := uc.profileRepo.GetProfile(ctx, callerID); err != nil {
		return nil, err
	}
	target, err := uc.profileRepo.GetProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}

	score := 60 + uc.rng.Intn(41)
	matchID := domain.MatchID(callerID, targetID)

	match := &domain.Match{
		ID:         matchID,
		UserID1:    callerID,
		UserID2:    targetID,
		MatchScore: score,
		MatchDate:  uc.now(),
		Status:     domain.MatchStatusPending,
	}
	if err := uc.matchRepo.Upsert(ctx, match); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.IncrementMatches(ctx, callerID); err != nil {
		uc.logger.Warn(ctx, "failed to bump match counter", "user", callerID, "err", err)
	}

	uc.logger.Info(ctx, "match calculated", "match", matchID, "score", score)
	return &MatchResult{
		MatchScore: score,
		MatchID:    matchID,
		TargetUser: target.Redacted(),
	}, nil
}
