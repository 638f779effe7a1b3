// Package usecase implements the LifeVibes operations on top of the
// repository layer: profile bootstrap, match scoring, the daily quest
// registry, the progression ledger and the coach/manifesto flows.
package usecase

import (
	"context"
	"time"

	"lifevibes/internal/domain"
	"lifevibes/internal/infrastructure/repository"
	"lifevibes/internal/logging"
)

// ProfileUseCase creates the per-user record triple when the identity
// provider reports a new account.
type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	logger      logging.Logger
	now         func() time.Time
}

func NewProfileUseCase(pr repository.ProfileRepository, logger logging.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: pr,
		logger:      logger,
		now:         time.Now,
	}
}

// Bootstrap creates profile, avatar and stats for a new account in one
// transaction. The event fires once per account; a failure is returned so
// the provider's redelivery can retry the whole unit.
func (uc *ProfileUseCase) Bootstrap(ctx context.Context, userID, email, displayName, photoURL string) error {
	now := uc.now()

	profile := &domain.UserProfile{
		UserID:         userID,
		Email:          email,
		DisplayName:    displayName,
		PhotoURL:       photoURL,
		CurrentPhase:   domain.PhaseSer,
		Level:          1,
		XP:             0,
		Badges:         []string{},
		Streak:         0,
		LastActiveDate: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	avatar := domain.NewDefaultAvatar(userID)
	avatar.LastUpdated = now
	stats := &domain.UserStats{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.profileRepo.CreateBundle(ctx, profile, avatar, stats); err != nil {
		uc.logger.Error(ctx, "failed to bootstrap profile", "user", userID, "err", err)
		return err
	}

	uc.logger.Info(ctx, "profile created", "user", userID)
	return nil
}
