package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/benW3ART/habits/pkg/entity"
)

// Clock is injected into every service so date arithmetic is testable.
type Clock func() time.Time

type AuthRequest struct {
	WalletAddress string `validate:"required,wallet_address"`
	Message       string `validate:"required"`
	Signature     string `validate:"required"`
}

type CreateHabitRequest struct {
	Name            string `validate:"required,min=1,max=100"`
	Description     string `validate:"max=500"`
	Category        string `validate:"max=50"`
	Goal            string `validate:"max=200"`
	PositiveActions []entity.HabitAction
	NegativeActions []entity.HabitAction
	IsPreset        bool
}

type RecordCheckInRequest struct {
	HabitID     uuid.UUID
	ActionType  entity.ActionType `validate:"required,oneof=positive negative"`
	ActionName  string            `validate:"required,max=100"`
	Value       int
	Comment     string `validate:"max=500"`
	BasePoints  int
	TxSignature string
}

type CheckInResult struct {
	Log           *entity.Log
	PointsEarned  int
	CurrentStreak int
	LongestStreak int
}

type CreateBetRequest struct {
	GoalDescription  string `validate:"required,min=1,max=500"`
	StakeAmount      int64
	DurationDays     int
	DailyLogRequired bool
	HabitID          *uuid.UUID
	StakeTxSignature string
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type LeaderboardKind string

const (
	LeaderboardPoints  LeaderboardKind = "points"
	LeaderboardStreaks LeaderboardKind = "streaks"
)

type Leaderboard struct {
	Kind       LeaderboardKind           `json:"type"`
	Entries    []entity.LeaderboardEntry `json:"entries"`
	CallerRank *entity.LeaderboardEntry  `json:"caller_rank,omitempty"`
}

type UserServiceI interface {
	// Looks up the wallet's user, creating one on first authenticated contact
	GetOrCreateByWallet(ctx context.Context, walletAddress string) (*entity.User, error)
	GetByWallet(ctx context.Context, walletAddress string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, walletAddress string, req *CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, walletAddress string, pagination PaginationOpts) ([]*HabitWithStats, error)
	GetHabit(ctx context.Context, habitID uuid.UUID, walletAddress string) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID uuid.UUID, walletAddress string) error
}

type CheckInServiceI interface {
	// Applies the day-adjacency streak rule, fixes points at creation time,
	// appends the log and ledger rows
	RecordCheckIn(ctx context.Context, walletAddress string, req *RecordCheckInRequest) (*CheckInResult, error)
	GetLogs(ctx context.Context, walletAddress string, habitID *uuid.UUID, limit int) ([]entity.Log, error)
}

type BetsServiceI interface {
	CreateBet(ctx context.Context, walletAddress string, req *CreateBetRequest) (*entity.Bet, error)
	GetBet(ctx context.Context, betID uuid.UUID, walletAddress string) (*entity.Bet, *entity.BetProgress, error)
	GetUserBets(ctx context.Context, walletAddress string, status *entity.BetStatus) ([]*entity.Bet, error)
	// Set-semantics push of a recomputed missed-day count, active bets only
	UpdateMissedDays(ctx context.Context, betID uuid.UUID, walletAddress string, count int) error
}

type SettlementServiceI interface {
	// Drives the resolution transaction: outcome, payout, exactly-once
	// status write, then the outcome points award
	ResolveBet(ctx context.Context, betID uuid.UUID, walletAddress string, payoutTxSignature string) (*entity.Resolution, error)
	// Re-attempts only the points-award step after a PartialSettlementError,
	// idempotent via a per-bet ledger lookup
	RetryOutcomeAward(ctx context.Context, betID uuid.UUID) (int, error)
	// Attaches the settlement reference to an already-resolved bet
	AttachPayoutReference(ctx context.Context, betID uuid.UUID, payoutTxSignature string) error
}

type LeaderboardServiceI interface {
	GetLeaderboard(ctx context.Context, kind LeaderboardKind, limit int, callerWallet string) (*Leaderboard, error)
}

// EscrowClientI is the outbound custody boundary. The core stores the
// returned reference strings but never interprets them.
type EscrowClientI interface {
	ReleasePayout(ctx context.Context, walletAddress string, amount int64) (string, error)
	TransferRake(ctx context.Context, amount int64) (string, error)
}

// SignatureVerifierI proves wallet ownership for /auth. Verification itself
// is an external concern; the core only consumes the yes/no answer.
type SignatureVerifierI interface {
	Verify(walletAddress, message, signature string) (bool, error)
}
