package usecase

import (
	"context"
	"errors"
	"testing"

	"lifevibes/internal/infrastructure/ai"
	"lifevibes/internal/infrastructure/repository"
	"lifevibes/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoachEnv(t *testing.T, g ai.Generator) (*repository.Memory, *CoachUseCase) {
	t.Helper()
	mem := repository.NewMemory()
	logger := logging.NewDiscard()
	profile := NewProfileUseCase(mem, logger)
	require.NoError(t, profile.Bootstrap(context.Background(), "u1", "u1@example.com", "U1", ""))
	return mem, NewCoachUseCase(mem, mem, g, logger)
}

func TestChatAppendsMessage(t *testing.T) {
	mem, uc := newCoachEnv(t, ai.NewTemplateGenerator())
	ctx := context.Background()

	response, err := uc.Chat(ctx, "u1", "quiero mejorar mi enfoque")
	require.NoError(t, err)
	assert.Contains(t, response, "quiero mejorar mi enfoque")

	messages, err := mem.ListMessages(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "quiero mejorar mi enfoque", messages[0].Message)
	assert.Equal(t, response, messages[0].Response)

	stats, err := mem.GetStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalMessages)
}

func TestManifestoUpdatesAvatar(t *testing.T) {
	mem, uc := newCoachEnv(t, ai.NewTemplateGenerator())
	ctx := context.Background()

	text, err := uc.GenerateManifesto(ctx, "u1", ai.ManifestoInput{
		Usuario:    "Ana",
		Valores:    "curiosidad",
		Proposito:  "crear",
		Superpoder: "foco",
	})
	require.NoError(t, err)

	avatar, err := mem.GetAvatar(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, text, avatar.Manifesto)
	assert.False(t, avatar.ManifestoGeneratedAt.IsZero())

	stats, err := mem.GetStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalContentGenerated)
}

type failingGenerator struct{}

func (failingGenerator) CoachReply(context.Context, string) (string, error) {
	return "", errors.New("generation backend down")
}

func (failingGenerator) Manifesto(context.Context, ai.ManifestoInput) (string, error) {
	return "", errors.New("generation backend down")
}

func TestChatGeneratorFailureLeavesNoTrace(t *testing.T) {
	mem, uc := newCoachEnv(t, failingGenerator{})
	ctx := context.Background()

	_, err := uc.Chat(ctx, "u1", "hola")
	assert.Error(t, err)

	messages, err := mem.ListMessages(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)

	stats, err := mem.GetStats(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalMessages)
}
