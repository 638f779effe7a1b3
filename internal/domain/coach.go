package domain

import (
	"time"

	"github.com/google/uuid"
)

// CoachMessage is one exchange with the coach. Append-only, never mutated.
type CoachMessage struct {
	ID        uuid.UUID
	UserID    string
	Message   string
	Response  string
	CreatedAt time.Time
}
