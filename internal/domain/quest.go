package domain

import (
	"time"

	"github.com/google/uuid"
)

type QuestStatus string

const (
	QuestStatusPending    QuestStatus = "pending"
	QuestStatusInProgress QuestStatus = "in_progress"
	QuestStatusCompleted  QuestStatus = "completed"
)

// Quest is a daily task assigned to one user. Date is a UTC calendar day
// ("2006-01-02"); at most one quest exists per (UserID, Date).
type Quest struct {
	ID          uuid.UUID
	UserID      string
	Title       string
	Description string
	Phase       Phase
	XPReward    int
	Date        string
	Status      QuestStatus
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// QuestDefinition is an entry of the static daily-quest catalog.
type QuestDefinition struct {
	Title       string
	Description string
	Phase       Phase
	XPReward    int
}

// QuestCatalog is the fixed set daily quests are drawn from.
var QuestCatalog = []QuestDefinition{
	{
		Title:       `Define tu "Por Qué"`,
		Description: "Escribe 3 párrafos sobre por qué haces lo que haces",
		Phase:       PhaseSer,
		XPReward:    50,
	},
	{
		Title:       "Crea tu Primer Contenido",
		Description: "Publica algo que aporte valor a tu audiencia",
		Phase:       PhaseHacer,
		XPReward:    75,
	},
	{
		Title:       "Conecta con 3 Personas",
		Description: "Reach out y ofrece valor primero",
		Phase:       PhaseHacer,
		XPReward:    60,
	},
}
