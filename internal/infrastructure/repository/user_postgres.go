package repository

import (
	"context"
	"errors"
	"time"

	"lifevibes/internal/domain"

	"gorm.io/gorm"
)

type ProfileGorm struct {
	UserID              string `gorm:"primaryKey;size:128"`
	Email               string `gorm:"size:255"`
	DisplayName         string `gorm:"size:100"`
	PhotoURL            string
	CompletedOnboarding bool     `gorm:"default:false"`
	CurrentPhase        string   `gorm:"size:10;default:'SER'"`
	Level               int      `gorm:"default:1"`
	XP                  int      `gorm:"default:0"`
	Badges              []string `gorm:"serializer:json"`
	Streak              int      `gorm:"default:0"`
	LastActiveDate      time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ProfileGorm) TableName() string { return "users" }

type AvatarGorm struct {
	UserID               string `gorm:"primaryKey;size:128"`
	FaceType             string `gorm:"size:30"`
	EyeStyle             string `gorm:"size:30"`
	EyeColor             string `gorm:"size:10"`
	MouthStyle           string `gorm:"size:30"`
	HairStyle            string `gorm:"size:30"`
	HairColor            string `gorm:"size:10"`
	SkinColor            string `gorm:"size:10"`
	Outfit               string `gorm:"size:30"`
	Accessories          []string `gorm:"serializer:json"`
	Level                int      `gorm:"default:1"`
	XP                   int      `gorm:"default:0"`
	Badges               []string `gorm:"serializer:json"`
	Manifesto            string
	ManifestoGeneratedAt *time.Time
	LastUpdated          time.Time
}

func (AvatarGorm) TableName() string { return "avatars" }

type StatsGorm struct {
	UserID                string `gorm:"primaryKey;size:128"`
	TotalQuestsCompleted  int    `gorm:"default:0"`
	TotalContentGenerated int    `gorm:"default:0"`
	TotalMatches          int    `gorm:"default:0"`
	TotalMessages         int    `gorm:"default:0"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (StatsGorm) TableName() string { return "user_stats" }

func toGormProfile(p *domain.UserProfile) *ProfileGorm {
	return &ProfileGorm{
		UserID:              p.UserID,
		Email:               p.Email,
		DisplayName:         p.DisplayName,
		PhotoURL:            p.PhotoURL,
		CompletedOnboarding: p.CompletedOnboarding,
		CurrentPhase:        string(p.CurrentPhase),
		Level:               p.Level,
		XP:                  p.XP,
		Badges:              p.Badges,
		Streak:              p.Streak,
		LastActiveDate:      p.LastActiveDate,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func toDomainProfile(p *ProfileGorm) *domain.UserProfile {
	return &domain.UserProfile{
		UserID:              p.UserID,
		Email:               p.Email,
		DisplayName:         p.DisplayName,
		PhotoURL:            p.PhotoURL,
		CompletedOnboarding: p.CompletedOnboarding,
		CurrentPhase:        domain.Phase(p.CurrentPhase),
		Level:               p.Level,
		XP:                  p.XP,
		Badges:              p.Badges,
		Streak:              p.Streak,
		LastActiveDate:      p.LastActiveDate,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func toGormAvatar(a *domain.Avatar) *AvatarGorm {
	g := &AvatarGorm{
		UserID:      a.UserID,
		FaceType:    a.FaceType,
		EyeStyle:    a.EyeStyle,
		EyeColor:    a.EyeColor,
		MouthStyle:  a.MouthStyle,
		HairStyle:   a.HairStyle,
		HairColor:   a.HairColor,
		SkinColor:   a.SkinColor,
		Outfit:      a.Outfit,
		Accessories: a.Accessories,
		Level:       a.Level,
		XP:          a.XP,
		Badges:      a.Badges,
		Manifesto:   a.Manifesto,
		LastUpdated: a.LastUpdated,
	}
	if !a.ManifestoGeneratedAt.IsZero() {
		t := a.ManifestoGeneratedAt
		g.ManifestoGeneratedAt = &t
	}
	return g
}

func toDomainAvatar(a *AvatarGorm) *domain.Avatar {
	d := &domain.Avatar{
		UserID:      a.UserID,
		FaceType:    a.FaceType,
		EyeStyle:    a.EyeStyle,
		EyeColor:    a.EyeColor,
		MouthStyle:  a.MouthStyle,
		HairStyle:   a.HairStyle,
		HairColor:   a.HairColor,
		SkinColor:   a.SkinColor,
		Outfit:      a.Outfit,
		Accessories: a.Accessories,
		Level:       a.Level,
		XP:          a.XP,
		Badges:      a.Badges,
		Manifesto:   a.Manifesto,
		LastUpdated: a.LastUpdated,
	}
	if a.ManifestoGeneratedAt != nil {
		d.ManifestoGeneratedAt = *a.ManifestoGeneratedAt
	}
	return d
}

func toDomainStats(s *StatsGorm) *domain.UserStats {
	return &domain.UserStats{
		UserID:                s.UserID,
		TotalQuestsCompleted:  s.TotalQuestsCompleted,
		TotalContentGenerated: s.TotalContentGenerated,
		TotalMatches:          s.TotalMatches,
		TotalMessages:         s.TotalMessages,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

type PostgresProfileRepository struct {
	db *gorm.DB
}

func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) CreateBundle(ctx context.Context, p *domain.UserProfile, a *domain.Avatar, s *domain.UserStats) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(toGormProfile(p)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrProfileExists
			}
			return err
		}
		if err := tx.Create(toGormAvatar(a)).Error; err != nil {
			return err
		}
		return tx.Create(&StatsGorm{
			UserID:    s.UserID,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		}).Error
	})
}

func (r *PostgresProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var model ProfileGorm
	err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return toDomainProfile(&model), nil
}

func (r *PostgresProfileRepository) GetAvatar(ctx context.Context, userID string) (*domain.Avatar, error) {
	var model AvatarGorm
	err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return toDomainAvatar(&model), nil
}

func (r *PostgresProfileRepository) GetStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	var model StatsGorm
	err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return toDomainStats(&model), nil
}

func (r *PostgresProfileRepository) SetManifesto(ctx context.Context, userID, manifesto string, generatedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&AvatarGorm{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"manifesto":              manifesto,
			"manifesto_generated_at": generatedAt,
			"last_updated":           generatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *PostgresProfileRepository) IncrementMatches(ctx context.Context, userID string) error {
	return r.incrementStat(ctx, userID, "total_matches")
}

func (r *PostgresProfileRepository) IncrementMessages(ctx context.Context, userID string) error {
	return r.incrementStat(ctx, userID, "total_messages")
}

func (r *PostgresProfileRepository) IncrementContentGenerated(ctx context.Context, userID string) error {
	return r.incrementStat(ctx, userID, "total_content_generated")
}

func (r *PostgresProfileRepository) incrementStat(ctx context.Context, userID, column string) error {
	return r.db.WithContext(ctx).Model(&StatsGorm{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			column:       gorm.Expr(column+" + ?", 1),
			"updated_at": time.Now(),
		}).Error
}
