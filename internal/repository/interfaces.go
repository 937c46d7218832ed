package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/benW3ART/habits/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user anchored to a wallet address
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by wallet address. Used on every authenticated request
	FindByWallet(ctx context.Context, walletAddress string) (*entity.User, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates display name
	UpdateUsername(ctx context.Context, uid uuid.UUID, username string) error
}

type HabitsRepositoryI interface {
	// Creates new habit. UserID and Name are necessary, action lists may be empty
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type LogsRepositoryI interface {
	// Appends one immutable check-in record
	Create(ctx context.Context, log *entity.Log) (uuid.UUID, error)
	// Lists recent logs for a user, optionally narrowed to one habit
	GetByUserID(ctx context.Context, uid uuid.UUID, habitID *uuid.UUID, limit int) ([]entity.Log, error)
	// Counts distinct calendar days with at least one log in [from, to] inclusive
	CountDistinctDays(ctx context.Context, habitID, uid uuid.UUID, from, to time.Time) (int, error)
	// Counts today's logs per action type for a habit
	CountToday(ctx context.Context, habitID, uid uuid.UUID, day time.Time) (positive, negative int, err error)
}

type StreaksRepositoryI interface {
	// Returns streak row for (habitID, uid), or nil when absent
	Get(ctx context.Context, habitID, uid uuid.UUID) (*entity.Streak, error)
	// Upserts streak state conditioned on the previously read last_log_date.
	// Returns false without mutating when another writer got there first
	Upsert(ctx context.Context, streak *entity.Streak, expectedLastLogDate *time.Time) (bool, error)
	// Initializes a zero-value streak row for a fresh habit
	Init(ctx context.Context, habitID, uid uuid.UUID) error
	// Max current_streak per user across all habits, zeroes excluded, desc
	MaxCurrentByUser(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

type PointsRepositoryI interface {
	// Appends one ledger entry
	Append(ctx context.Context, entry *entity.PointsEntry) (uuid.UUID, error)
	// Sum of amounts per user, desc, ties broken by user id
	TotalsByUser(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
	// Sum of one user's entries
	TotalForUser(ctx context.Context, uid uuid.UUID) (int, error)
	// Reports whether an entry with the given action already references betID.
	// Dedup key for retried outcome awards
	ExistsForBet(ctx context.Context, uid uuid.UUID, action string, betID uuid.UUID) (bool, error)
}

type BetsRepositoryI interface {
	// Creates new bet in active status
	Create(ctx context.Context, bet *entity.Bet) (uuid.UUID, error)
	// Searches bet with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bet, error)
	// Lists user's bets, newest first, optionally filtered by status
	GetByUserID(ctx context.Context, uid uuid.UUID, status *entity.BetStatus) ([]*entity.Bet, error)
	// Set-semantics update of the missed-day counter, only while active
	SetMissedDays(ctx context.Context, id uuid.UUID, count int) error
	// Transitions active → terminal exactly once. The write is conditioned on
	// status = 'active'; a raced call gets ErrAlreadyResolved
	Resolve(ctx context.Context, id uuid.UUID, outcome entity.BetStatus, resolvedAt time.Time, payoutTxSignature string) error
	// Attaches the settlement reference to a resolved bet that has none yet.
	// The only mutation allowed after a terminal transition
	AttachPayoutSignature(ctx context.Context, id uuid.UUID, payoutTxSignature string) error
	// Active bets whose end date has passed, for the resolution sweep
	ListExpiredActive(ctx context.Context, now time.Time, limit int) ([]*entity.Bet, error)
	// Active bets with daily logging required, for the missed-day sweep
	ListActiveDailyLog(ctx context.Context, limit int) ([]*entity.Bet, error)
	// Won and lost bets settled at or after the given instant, for the
	// pending-award sweep
	ListResolvedSince(ctx context.Context, since time.Time, limit int) ([]*entity.Bet, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
