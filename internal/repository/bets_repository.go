package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/pkg/entity"
)

type BetsRepository struct {
	conn PgConnection
}

func NewBetsRepo(cfg DBConfig) *BetsRepository {
	return &BetsRepository{
		conn: newPool(cfg, "betsRepo"),
	}
}

func NewBetsRepoWithConn(conn PgConnection) *BetsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for betsRepo: " + err.Error())
	}
	return &BetsRepository{
		conn: conn,
	}
}

const betColumns = `id, user_id, habit_id, goal_description, stake_amount, stake_tx_signature,
		duration_days, start_date, end_date, status, daily_log_required, missed_days,
		payout_tx_signature, created_at, resolved_at`

func scanBet(row pgx.Row) (*entity.Bet, error) {
	var b entity.Bet
	err := row.Scan(&b.ID, &b.UserID, &b.HabitID, &b.GoalDescription, &b.StakeAmount, &b.StakeTxSignature,
		&b.DurationDays, &b.StartDate, &b.EndDate, &b.Status, &b.DailyLogRequired, &b.MissedDays,
		&b.PayoutTxSignature, &b.CreatedAt, &b.ResolvedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (br *BetsRepository) Create(ctx context.Context, bet *entity.Bet) (uuid.UUID, error) {
	if bet == nil {
		return uuid.UUID{}, errors.New("bet is nil")
	}
	var id uuid.UUID
	row := br.conn.QueryRow(ctx,
		`INSERT INTO bets (user_id, habit_id, goal_description, stake_amount, stake_tx_signature,
		duration_days, start_date, end_date, status, daily_log_required, missed_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id;`,
		bet.UserID,
		bet.HabitID,
		bet.GoalDescription,
		bet.StakeAmount,
		bet.StakeTxSignature,
		bet.DurationDays,
		bet.StartDate,
		bet.EndDate,
		bet.Status,
		bet.DailyLogRequired,
		bet.MissedDays,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation: owner or habit missing
			case "23503":
				if pgErr.ConstraintName == "bets_habit_id_fkey" {
					return uuid.UUID{}, errorvalues.ErrHabitNotFound
				}
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, storageErr("creating bet db error", err)
	}
	return id, nil
}

func (br *BetsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bet, error) {
	row := br.conn.QueryRow(ctx, `SELECT `+betColumns+` FROM bets WHERE id = $1;`, id)
	bet, err := scanBet(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBetNotFound
		}
		return nil, storageErr("getting bet by id error", err)
	}
	return bet, nil
}

func (br *BetsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, status *entity.BetStatus) ([]*entity.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE user_id = $1 ORDER BY created_at DESC;`
	args := []any{uid}
	if status != nil {
		query = `SELECT ` + betColumns + ` FROM bets WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC;`
		args = append(args, *status)
	}
	rows, err := br.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr("getting bets by uid error", err)
	}
	defer rows.Close()
	bets := make([]*entity.Bet, 0)
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, errors.New("bet row parsing error: " + err.Error())
		}
		bets = append(bets, b)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected bet rows error: " + rows.Err().Error())
	}
	return bets, nil
}

// SetMissedDays is last-write-wins and only touches active bets, so a sweep
// racing a settlement can never mutate a resolved row.
func (br *BetsRepository) SetMissedDays(ctx context.Context, id uuid.UUID, count int) error {
	ct, err := br.conn.Exec(ctx,
		`UPDATE bets SET missed_days = $1 WHERE id = $2 AND status = 'active';`,
		count,
		id,
	)
	if err != nil {
		return storageErr("updating missed days error", err)
	}
	if ct.RowsAffected() == 0 {
		return br.notFoundOrResolved(ctx, id)
	}
	return nil
}

// Resolve performs the single conditional transition active → terminal.
// Exactly one of two concurrent calls succeeds; the loser observes zero
// affected rows and gets ErrAlreadyResolved.
func (br *BetsRepository) Resolve(ctx context.Context, id uuid.UUID, outcome entity.BetStatus, resolvedAt time.Time, payoutTxSignature string) error {
	if !outcome.Terminal() {
		return errors.New("outcome is not a terminal status")
	}
	ct, err := br.conn.Exec(ctx,
		`UPDATE bets SET status = $1, resolved_at = $2, payout_tx_signature = $3 WHERE id = $4 AND status = 'active';`,
		outcome,
		resolvedAt,
		payoutTxSignature,
		id,
	)
	if err != nil {
		return storageErr("resolving bet error", err)
	}
	if ct.RowsAffected() == 0 {
		return br.notFoundOrResolved(ctx, id)
	}
	return nil
}

func (br *BetsRepository) AttachPayoutSignature(ctx context.Context, id uuid.UUID, payoutTxSignature string) error {
	ct, err := br.conn.Exec(ctx,
		`UPDATE bets SET payout_tx_signature = $1 WHERE id = $2 AND status <> 'active' AND payout_tx_signature = '';`,
		payoutTxSignature,
		id,
	)
	if err != nil {
		return storageErr("attaching payout signature error", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBetNotFound
	}
	return nil
}

func (br *BetsRepository) notFoundOrResolved(ctx context.Context, id uuid.UUID) error {
	bet, err := br.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bet.Status.Terminal() {
		return errorvalues.ErrAlreadyResolved
	}
	return errorvalues.ErrBetNotFound
}

func (br *BetsRepository) ListExpiredActive(ctx context.Context, now time.Time, limit int) ([]*entity.Bet, error) {
	rows, err := br.conn.Query(ctx,
		`SELECT `+betColumns+` FROM bets WHERE status = 'active' AND end_date <= $1 ORDER BY end_date ASC LIMIT $2;`,
		now,
		limit,
	)
	if err != nil {
		return nil, storageErr("listing expired bets error", err)
	}
	defer rows.Close()
	bets := make([]*entity.Bet, 0)
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, errors.New("bet row parsing error: " + err.Error())
		}
		bets = append(bets, b)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected bet rows error: " + rows.Err().Error())
	}
	return bets, nil
}

// ListResolvedSince returns won and lost bets settled at or after the given
// instant. The pending-award sweep walks these and re-runs the idempotent
// points award, so a settlement whose award step failed gets revisited.
func (br *BetsRepository) ListResolvedSince(ctx context.Context, since time.Time, limit int) ([]*entity.Bet, error) {
	rows, err := br.conn.Query(ctx,
		`SELECT `+betColumns+` FROM bets WHERE status IN ('won', 'lost') AND resolved_at >= $1 ORDER BY resolved_at ASC LIMIT $2;`,
		since,
		limit,
	)
	if err != nil {
		return nil, storageErr("listing resolved bets error", err)
	}
	defer rows.Close()
	bets := make([]*entity.Bet, 0)
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, errors.New("bet row parsing error: " + err.Error())
		}
		bets = append(bets, b)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected bet rows error: " + rows.Err().Error())
	}
	return bets, nil
}

func (br *BetsRepository) ListActiveDailyLog(ctx context.Context, limit int) ([]*entity.Bet, error) {
	rows, err := br.conn.Query(ctx,
		`SELECT `+betColumns+` FROM bets WHERE status = 'active' AND daily_log_required = TRUE ORDER BY start_date ASC LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, storageErr("listing active daily-log bets error", err)
	}
	defer rows.Close()
	bets := make([]*entity.Bet, 0)
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, errors.New("bet row parsing error: " + err.Error())
		}
		bets = append(bets, b)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected bet rows error: " + rows.Err().Error())
	}
	return bets, nil
}
