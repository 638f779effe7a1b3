package usecase

import (
	"context"
	"testing"

	"lifevibes/internal/domain"
	"lifevibes/internal/infrastructure/repository"
	"lifevibes/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardKeepsLevelInvariant(t *testing.T) {
	mem := repository.NewMemory()
	logger := logging.NewDiscard()
	profile := NewProfileUseCase(mem, logger)
	ledger := NewLedgerUseCase(mem, logger)
	ctx := context.Background()

	require.NoError(t, profile.Bootstrap(ctx, "u1", "u1@example.com", "U1", ""))

	for _, delta := range []int{0, 30, 75, 120, 10, 99, 1} {
		_, err := ledger.Award(ctx, "u1", delta)
		require.NoError(t, err)

		p, err := mem.GetProfile(ctx, "u1")
		require.NoError(t, err)
		a, err := mem.GetAvatar(ctx, "u1")
		require.NoError(t, err)

		assert.Equal(t, domain.LevelForXP(p.XP), p.Level)
		assert.Equal(t, p.XP, a.XP)
		assert.Equal(t, p.Level, a.Level)
	}
}

func TestAwardReportsLevelUp(t *testing.T) {
	mem := repository.NewMemory()
	logger := logging.NewDiscard()
	profile := NewProfileUseCase(mem, logger)
	ledger := NewLedgerUseCase(mem, logger)
	ctx := context.Background()

	require.NoError(t, profile.Bootstrap(ctx, "u1", "u1@example.com", "U1", ""))

	first, err := ledger.Award(ctx, "u1", 50)
	require.NoError(t, err)
	assert.False(t, first.LeveledUp)
	assert.Equal(t, 1, first.NewLevel)
	assert.Equal(t, 50, first.NewXP)

	second, err := ledger.Award(ctx, "u1", 60)
	require.NoError(t, err)
	assert.True(t, second.LeveledUp)
	assert.Equal(t, 2, second.NewLevel)
	assert.Equal(t, 110, second.NewXP)
}

func TestAwardRejectsNegativeDelta(t *testing.T) {
	mem := repository.NewMemory()
	logger := logging.NewDiscard()
	profile := NewProfileUseCase(mem, logger)
	ledger := NewLedgerUseCase(mem, logger)
	ctx := context.Background()

	require.NoError(t, profile.Bootstrap(ctx, "u1", "u1@example.com", "U1", ""))

	_, err := ledger.Award(ctx, "u1", -5)
	assert.Error(t, err)
}

func TestAwardUnknownUser(t *testing.T) {
	mem := repository.NewMemory()
	ledger := NewLedgerUseCase(mem, logging.NewDiscard())

	_, err := ledger.Award(context.Background(), "ghost", 10)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
