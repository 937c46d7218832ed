package errorvalues

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound  = errors.New("user doesn't exist")
	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrBetNotFound   = errors.New("bet doesn't exist")
	ErrWrongOwner    = errors.New("entity has different owner")

	ErrInvalidStake    = errors.New("stake amount must be positive")
	ErrInvalidDuration = errors.New("duration must be between 1 and 365 days")
	ErrForeignHabit    = errors.New("linked habit belongs to another user")
	ErrInvalidCount    = errors.New("missed days count must be non-negative")

	ErrInvalidActionPoints = errors.New("positive actions need non-negative points, negative actions non-positive")

	ErrAlreadyResolved = errors.New("bet already resolved")
	ErrTooEarly        = errors.New("bet cannot be resolved before end date")

	ErrStorageTimeout = errors.New("storage operation timed out")

	ErrInvalidToken = errors.New("invalid token")

	ErrInvalidLeaderboardKind = errors.New("leaderboard type must be \"points\" or \"streaks\"")
)

// PartialSettlementError reports that a bet transition was durably committed
// but the follow-up points award failed. Callers retry only the award step.
type PartialSettlementError struct {
	BetID   string
	Outcome string
	Cause   error
}

func (e *PartialSettlementError) Error() string {
	return fmt.Sprintf("bet %s settled as %s but points award failed: %v", e.BetID, e.Outcome, e.Cause)
}

func (e *PartialSettlementError) Unwrap() error {
	return e.Cause
}
