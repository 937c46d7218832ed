package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Username      string    `json:"username,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// HabitAction is one nameable action inside a habit. Positive actions carry
// non-negative point deltas, negative actions non-positive ones.
type HabitAction struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type Habit struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"uid"`
	Name            string        `json:"name"`
	Description     string        `json:"desc,omitempty"`
	Category        string        `json:"category,omitempty"`
	Goal            string        `json:"goal,omitempty"`
	PositiveActions []HabitAction `json:"positive_actions"`
	NegativeActions []HabitAction `json:"negative_actions"`
	IsPreset        bool          `json:"is_preset"`
	CreatedAt       time.Time     `json:"created_at"`
}

type ActionType string

const (
	ActionPositive ActionType = "positive"
	ActionNegative ActionType = "negative"
)

// Log is an immutable check-in record. PointsEarned is fixed at creation
// time and never recomputed.
type Log struct {
	ID           uuid.UUID  `json:"id"`
	HabitID      uuid.UUID  `json:"habit_id"`
	UserID       uuid.UUID  `json:"uid"`
	ActionType   ActionType `json:"action_type"`
	ActionName   string     `json:"action_name"`
	Value        int        `json:"value"`
	Comment      string     `json:"comment,omitempty"`
	PointsEarned int        `json:"points_earned"`
	TxSignature  string     `json:"tx_signature,omitempty"`
	LoggedAt     time.Time  `json:"logged_at"`
}

// Streak holds per (habit, user) continuity state. LastLogDate is nil until
// the first check-in.
type Streak struct {
	HabitID       uuid.UUID  `json:"habit_id"`
	UserID        uuid.UUID  `json:"uid"`
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastLogDate   *time.Time `json:"last_log_date,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type Metadata map[string]any

// PointsEntry is one append-only ledger row. A user's score is always the
// sum of their entries.
type PointsEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Action    string    `json:"action"`
	Amount    int       `json:"amount"`
	Metadata  Metadata  `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	PointsActionHabitLog        = "habit_log"
	PointsActionHabitCreated    = "habit_created"
	PointsActionStreakMilestone = "streak_milestone"
	PointsActionBetWon          = "bet_won"
	PointsActionBetLost         = "bet_lost"
)

type BetStatus string

const (
	BetActive    BetStatus = "active"
	BetWon       BetStatus = "won"
	BetLost      BetStatus = "lost"
	BetForfeited BetStatus = "forfeited"
)

// Terminal reports whether the status allows no further transitions.
func (s BetStatus) Terminal() bool {
	return s == BetWon || s == BetLost || s == BetForfeited
}

// Bet is a staking commitment. StakeAmount is in minor units of the staked
// asset. HabitID is nil for free-form goals.
type Bet struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"uid"`
	HabitID           *uuid.UUID `json:"habit_id,omitempty"`
	GoalDescription   string     `json:"goal_description"`
	StakeAmount       int64      `json:"stake_amount"`
	StakeTxSignature  string     `json:"stake_tx_signature,omitempty"`
	DurationDays      int        `json:"duration_days"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	Status            BetStatus  `json:"status"`
	DailyLogRequired  bool       `json:"daily_log_required"`
	MissedDays        int        `json:"missed_days"`
	PayoutTxSignature string     `json:"payout_tx_signature,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
}

// Resolution is the audit record returned by a successful settlement.
// UserPayout + PlatformRake always equals StakeAmount.
type Resolution struct {
	BetID             uuid.UUID `json:"bet_id"`
	Outcome           BetStatus `json:"outcome"`
	Reason            string    `json:"reason"`
	StakeAmount       int64     `json:"stake_amount"`
	UserPayout        int64     `json:"user_payout"`
	PlatformRake      int64     `json:"platform_rake"`
	PayoutTxSignature string    `json:"payout_tx_signature,omitempty"`
	PointsAwarded     int       `json:"points_awarded"`
	ResolvedAt        time.Time `json:"resolved_at"`
}

// BetProgress is a display-only snapshot of how a habit-linked bet is going.
// The resolution algorithm is the single source of truth for outcome; this
// never feeds settlement.
type BetProgress struct {
	LoggedDays      int  `json:"logged_days"`
	TotalDays       int  `json:"total_days"`
	RequiredDays    int  `json:"required_days"`
	PercentComplete int  `json:"percent_complete"`
	OnTrack         bool `json:"on_track"`
}

type LeaderboardEntry struct {
	Rank          int       `json:"rank"`
	UserID        uuid.UUID `json:"-"`
	WalletAddress string    `json:"wallet_address"`
	Username      string    `json:"username,omitempty"`
	Value         int       `json:"value"`
}
