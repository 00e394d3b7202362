package models

import "errors"

var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrLedgerNotFound  = errors.New("ledger not found")
	ErrInvalidGoal     = errors.New("invalid goal")
	ErrDuplicateGoal   = errors.New("duplicate goal name")
	ErrInvalidSnapshot = errors.New("invalid ledger snapshot")
)
