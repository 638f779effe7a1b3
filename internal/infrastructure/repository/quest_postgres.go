package repository

import (
	"context"
	"errors"
	"time"

	"lifevibes/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestGorm struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"size:128;uniqueIndex:idx_quests_user_date"`
	Title       string
	Description string
	Phase       string `gorm:"size:10"`
	XPReward    int
	Date        string `gorm:"size:10;uniqueIndex:idx_quests_user_date"`
	Status      string `gorm:"size:20;default:'pending'"`
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func (QuestGorm) TableName() string { return "quests" }

func toGormQuest(q *domain.Quest) *QuestGorm {
	return &QuestGorm{
		ID:          q.ID,
		UserID:      q.UserID,
		Title:       q.Title,
		Description: q.Description,
		Phase:       string(q.Phase),
		XPReward:    q.XPReward,
		Date:        q.Date,
		Status:      string(q.Status),
		CreatedAt:   q.CreatedAt,
		CompletedAt: q.CompletedAt,
	}
}

func toDomainQuest(q *QuestGorm) *domain.Quest {
	return &domain.Quest{
		ID:          q.ID,
		UserID:      q.UserID,
		Title:       q.Title,
		Description: q.Description,
		Phase:       domain.Phase(q.Phase),
		XPReward:    q.XPReward,
		Date:        q.Date,
		Status:      domain.QuestStatus(q.Status),
		CreatedAt:   q.CreatedAt,
		CompletedAt: q.CompletedAt,
	}
}

type PostgresQuestRepository struct {
	db *gorm.DB
}

func NewPostgresQuestRepository(db *gorm.DB) *PostgresQuestRepository {
	return &PostgresQuestRepository{db: db}
}

func (r *PostgresQuestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quest, error) {
	var model QuestGorm
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, err
	}
	return toDomainQuest(&model), nil
}

func (r *PostgresQuestRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*domain.Quest, error) {
	var model QuestGorm
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, err
	}
	return toDomainQuest(&model), nil
}

func (r *PostgresQuestRepository) Create(ctx context.Context, q *domain.Quest) error {
	err := r.db.WithContext(ctx).Create(toGormQuest(q)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrQuestExists
	}
	return err
}
