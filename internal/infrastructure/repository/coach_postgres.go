package repository

import (
	"context"
	"time"

	"lifevibes/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoachMessageGorm struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"size:128;index"`
	Message   string
	Response  string
	CreatedAt time.Time
}

func (CoachMessageGorm) TableName() string { return "coach_messages" }

type PostgresCoachRepository struct {
	db *gorm.DB
}

func NewPostgresCoachRepository(db *gorm.DB) *PostgresCoachRepository {
	return &PostgresCoachRepository{db: db}
}

func (r *PostgresCoachRepository) AppendMessage(ctx context.Context, m *domain.CoachMessage) error {
	return r.db.WithContext(ctx).Create(&CoachMessageGorm{
		ID:        m.ID,
		UserID:    m.UserID,
		Message:   m.Message,
		Response:  m.Response,
		CreatedAt: m.CreatedAt,
	}).Error
}

func (r *PostgresCoachRepository) ListMessages(ctx context.Context, userID string, limit int) ([]domain.CoachMessage, error) {
	var models []CoachMessageGorm
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	messages := make([]domain.CoachMessage, 0, len(models))
	for _, m := range models {
		messages = append(messages, domain.CoachMessage{
			ID:        m.ID,
			UserID:    m.UserID,
			Message:   m.Message,
			Response:  m.Response,
			CreatedAt: m.CreatedAt,
		})
	}
	return messages, nil
}
