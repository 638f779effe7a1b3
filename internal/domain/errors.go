// Package domain holds the entities and rules of the LifeVibes core.
// Sentinel errors below are matched with errors.Is at the transport layer.
package domain

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")

	ErrQuestNotFound         = errors.New("quest not found")
	ErrQuestExists           = errors.New("quest already assigned for this day")
	ErrQuestNotOwned         = errors.New("quest does not belong to user")
	ErrQuestAlreadyCompleted = errors.New("quest already completed")

	ErrMatchNotFound = errors.New("match not found")
)
