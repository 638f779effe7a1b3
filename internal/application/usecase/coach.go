package usecase

import (
	"context"
	"time"

	"lifevibes/internal/domain"
	"lifevibes/internal/infrastructure/ai"
	"lifevibes/internal/infrastructure/repository"
	"lifevibes/internal/logging"

	"github.com/google/uuid"
)

// CoachUseCase fronts the text-generation collaborator: chat replies go to
// the append-only conversation log, manifestos onto the avatar.
type CoachUseCase struct {
	coachRepo   repository.CoachRepository
	profileRepo repository.ProfileRepository
	generator   ai.Generator
	logger      logging.Logger
	now         func() time.Time
}

func NewCoachUseCase(cr repository.CoachRepository, pr repository.ProfileRepository, g ai.Generator, logger logging.Logger) *CoachUseCase {
	return &CoachUseCase{
		coachRepo:   cr,
		profileRepo: pr,
		generator:   g,
		logger:      logger,
		now:         time.Now,
	}
}

// Chat generates a coach reply, appends the exchange to the user's
// conversation and bumps the message counter.
func (uc *CoachUseCase) Chat(ctx context.Context, userID, message string) (string, error) {
	response, err := uc.generator.CoachReply(ctx, message)
	if err != nil {
		return "", err
	}

	if err := uc.coachRepo.AppendMessage(ctx, &domain.CoachMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		Response:  response,
		CreatedAt: uc.now(),
	}); err != nil {
		return "", err
	}

	if err := uc.profileRepo.IncrementMessages(ctx, userID); err != nil {
		uc.logger.Warn(ctx, "failed to bump message counter", "user", userID, "err", err)
	}

	return response, nil
}

// GenerateManifesto writes the generated text and its timestamp onto the
// user's avatar.
func (uc *CoachUseCase) GenerateManifesto(ctx context.Context, userID string, in ai.ManifestoInput) (string, error) {
	manifesto, err := uc.generator.Manifesto(ctx, in)
	if err != nil {
		return "", err
	}

	if err := uc.profileRepo.SetManifesto(ctx, userID, manifesto, uc.now()); err != nil {
		return "", err
	}

	if err := uc.profileRepo.IncrementContentGenerated(ctx, userID); err != nil {
		uc.logger.Warn(ctx, "failed to bump content counter", "user", userID, "err", err)
	}

	return manifesto, nil
}
