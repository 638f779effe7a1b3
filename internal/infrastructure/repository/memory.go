package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lifevibes/internal/domain"

	"github.com/google/uuid"
)

// Memory is a mutex-guarded in-memory implementation of every repository
// interface in this package. It mirrors the Postgres semantics (sentinel
// errors, unique quest day, merge-on-upsert, atomic award) and backs the
// usecase and handler tests.
type Memory struct {
	mu       sync.Mutex
	profiles map[string]domain.UserProfile
	avatars  map[string]domain.Avatar
	stats    map[string]domain.UserStats
	quests   map[uuid.UUID]domain.Quest
	matches  map[string]domain.Match
	messages []domain.CoachMessage
}

func NewMemory() *Memory {
	return &Memory{
		profiles: make(map[string]domain.UserProfile),
		avatars:  make(map[string]domain.Avatar),
		stats:    make(map[string]domain.UserStats),
		quests:   make(map[uuid.UUID]domain.Quest),
		matches:  make(map[string]domain.Match),
	}
}

// ProfileRepository --------------------------------------------------------

func (m *Memory) CreateBundle(_ context.Context, p *domain.UserProfile, a *domain.Avatar, s *domain.UserStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.profiles[p.UserID]; exists {
		return domain.ErrProfileExists
	}
	m.profiles[p.UserID] = cloneProfile(*p)
	m.avatars[a.UserID] = cloneAvatar(*a)
	m.stats[s.UserID] = *s
	return nil
}

func (m *Memory) GetProfile(_ context.Context, userID string) (*domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	p = cloneProfile(p)
	return &p, nil
}

func (m *Memory) GetAvatar(_ context.Context, userID string) (*domain.Avatar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.avatars[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	a = cloneAvatar(a)
	return &a, nil
}

func (m *Memory) GetStats(_ context.Context, userID string) (*domain.UserStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stats[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &s, nil
}

func (m *Memory) SetManifesto(_ context.Context, userID, manifesto string, generatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.avatars[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	a.Manifesto = manifesto
	a.ManifestoGeneratedAt = generatedAt
	a.LastUpdated = generatedAt
	m.avatars[userID] = a
	return nil
}

func (m *Memory) IncrementMatches(_ context.Context, userID string) error {
	return m.bumpStat(userID, func(s *domain.UserStats) { s.TotalMatches++ })
}

func (m *Memory) IncrementMessages(_ context.Context, userID string) error {
	return m.bumpStat(userID, func(s *domain.UserStats) { s.TotalMessages++ })
}

func (m *Memory) IncrementContentGenerated(_ context.Context, userID string) error {
	return m.bumpStat(userID, func(s *domain.UserStats) { s.TotalContentGenerated++ })
}

func (m *Memory) bumpStat(userID string, apply func(*domain.UserStats)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stats[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	apply(&s)
	s.UpdatedAt = time.Now()
	m.stats[userID] = s
	return nil
}

// QuestRepository ----------------------------------------------------------

func (m *Memory) GetByID(_ context.Context, id uuid.UUID) (*domain.Quest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, ok := m.quests[id]
	if !ok {
		return nil, domain.ErrQuestNotFound
	}
	q = cloneQuest(q)
	return &q, nil
}

func (m *Memory) GetByUserAndDate(_ context.Context, userID, date string) (*domain.Quest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, ok := m.findQuestLocked(userID, date)
	if !ok {
		return nil, domain.ErrQuestNotFound
	}
	q = cloneQuest(q)
	return &q, nil
}

func (m *Memory) Create(_ context.Context, q *domain.Quest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.findQuestLocked(q.UserID, q.Date); exists {
		return domain.ErrQuestExists
	}
	m.quests[q.ID] = cloneQuest(*q)
	return nil
}

func (m *Memory) findQuestLocked(userID, date string) (domain.Quest, bool) {
	for _, q := range m.quests {
		if q.UserID == userID && q.Date == date {
			return q, true
		}
	}
	return domain.Quest{}, false
}

// ProgressionRepository ----------------------------------------------------

func (m *Memory) AwardXP(_ context.Context, userID string, delta int) (*domain.ProgressionResult, error) {
	if delta < 0 {
		return nil, fmt.Errorf("negative xp delta: %d", delta)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applyAwardLocked(userID, delta)
}

func (m *Memory) CompleteQuest(_ context.Context, userID string, questID uuid.UUID) (*domain.Quest, *domain.ProgressionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, ok := m.quests[questID]
	if !ok {
		return nil, nil, domain.ErrQuestNotFound
	}
	if q.UserID != userID {
		return nil, nil, domain.ErrQuestNotOwned
	}
	if q.Status == domain.QuestStatusCompleted {
		return nil, nil, domain.ErrQuestAlreadyCompleted
	}

	result, err := m.applyAwardLocked(userID, q.XPReward)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	q.Status = domain.QuestStatusCompleted
	q.CompletedAt = &now
	m.quests[questID] = q
	q = cloneQuest(q)
	return &q, result, nil
}

func (m *Memory) applyAwardLocked(userID string, delta int) (*domain.ProgressionResult, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	a, ok := m.avatars[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	s, ok := m.stats[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}

	newXP := p.XP + delta
	newLevel := domain.LevelForXP(newXP)
	leveledUp := newLevel > p.Level
	now := time.Now()

	p.XP = newXP
	p.Level = newLevel
	p.Streak++
	p.LastActiveDate = now
	p.UpdatedAt = now
	m.profiles[userID] = p

	a.XP = newXP
	a.Level = newLevel
	a.LastUpdated = now
	m.avatars[userID] = a

	s.TotalQuestsCompleted++
	s.UpdatedAt = now
	m.stats[userID] = s

	return &domain.ProgressionResult{
		Amount:    delta,
		NewXP:     newXP,
		NewLevel:  newLevel,
		LeveledUp: leveledUp,
	}, nil
}

// MatchRepository ----------------------------------------------------------

func (m *Memory) Upsert(_ context.Context, match *domain.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.matches[match.ID]; ok {
		existing.UserID1 = match.UserID1
		existing.UserID2 = match.UserID2
		existing.MatchScore = match.MatchScore
		existing.MatchDate = match.MatchDate
		m.matches[match.ID] = existing
		return nil
	}
	m.matches[match.ID] = *match
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (*domain.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	match, ok := m.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return &match, nil
}

// CoachRepository ----------------------------------------------------------

func (m *Memory) AppendMessage(_ context.Context, msg *domain.CoachMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append(m.messages, *msg)
	return nil
}

func (m *Memory) ListMessages(_ context.Context, userID string, limit int) ([]domain.CoachMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []domain.CoachMessage
	for i := len(m.messages) - 1; i >= 0 && len(result) < limit; i-- {
		if m.messages[i].UserID == userID {
			result = append(result, m.messages[i])
		}
	}
	return result, nil
}

func cloneProfile(p domain.UserProfile) domain.UserProfile {
	p.Badges = append([]string(nil), p.Badges...)
	return p
}

func cloneAvatar(a domain.Avatar) domain.Avatar {
	a.Accessories = append([]string(nil), a.Accessories...)
	a.Badges = append([]string(nil), a.Badges...)
	return a
}

func cloneQuest(q domain.Quest) domain.Quest {
	if q.CompletedAt != nil {
		t := *q.CompletedAt
		q.CompletedAt = &t
	}
	return q
}
