package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/repository"
	"github.com/benW3ART/habits/pkg/entity"
)

var betCols = []string{"id", "user_id", "habit_id", "goal_description", "stake_amount", "stake_tx_signature",
	"duration_days", "start_date", "end_date", "status", "daily_log_required", "missed_days",
	"payout_tx_signature", "created_at", "resolved_at"}

func betRow(bet *entity.Bet) *pgxmock.Rows {
	return pgxmock.NewRows(betCols).AddRow(
		bet.ID, bet.UserID, bet.HabitID, bet.GoalDescription, bet.StakeAmount, bet.StakeTxSignature,
		bet.DurationDays, bet.StartDate, bet.EndDate, bet.Status, bet.DailyLogRequired, bet.MissedDays,
		bet.PayoutTxSignature, bet.CreatedAt, bet.ResolvedAt,
	)
}

func sampleBet(status entity.BetStatus) *entity.Bet {
	habitID := uuid.New()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &entity.Bet{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		HabitID:          &habitID,
		GoalDescription:  "run every day for a month",
		StakeAmount:      1_000_000,
		StakeTxSignature: "5stakeSig",
		DurationDays:     30,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, 30),
		Status:           status,
		DailyLogRequired: true,
		CreatedAt:        start,
	}
}

func TestCreateBet(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewBetsRepoWithConn(conn)
	bet := sampleBet(entity.BetActive)
	id := uuid.New()
	q := regexp.QuoteMeta(`INSERT INTO bets`)
	args := []any{bet.UserID, bet.HabitID, bet.GoalDescription, bet.StakeAmount, bet.StakeTxSignature,
		bet.DurationDays, bet.StartDate, bet.EndDate, bet.Status, bet.DailyLogRequired, bet.MissedDays}
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectQuery(q).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		got, err := repo.Create(ctx, bet)
		assert.NoError(t, err)
		assert.Equal(t, id, got)
	})
	t.Run("unexist habit", func(t *testing.T) {
		conn.ExpectQuery(q).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "bets_habit_id_fkey"})
		_, err := repo.Create(ctx, bet)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("unexist user", func(t *testing.T) {
		conn.ExpectQuery(q).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "bets_user_id_fkey"})
		_, err := repo.Create(ctx, bet)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(q).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, bet)
		assert.Error(t, err)
	})
}

func TestGetBetByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewBetsRepoWithConn(conn)
	bet := sampleBet(entity.BetActive)
	query := regexp.QuoteMeta(`FROM bets WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(bet.ID).
			WillReturnRows(betRow(bet))
		got, err := repo.GetByID(ctx, bet.ID)
		assert.NoError(t, err)
		assert.Equal(t, bet, got)
	})
	t.Run("unexist bet", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(bet.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, bet.ID)
		assert.ErrorIs(t, err, errorvalues.ErrBetNotFound)
	})
}

func TestGetBetsByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewBetsRepoWithConn(conn)
	bet := sampleBet(entity.BetWon)
	t.Run("all statuses", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM bets WHERE user_id = $1 ORDER BY created_at DESC;`)).
			WithArgs(bet.UserID).
			WillReturnRows(betRow(bet))
		bets, err := repo.GetByUserID(ctx, bet.UserID, nil)
		assert.NoError(t, err)
		assert.Len(t, bets, 1)
		assert.Equal(t, bet, bets[0])
	})
	t.Run("filtered by status", func(t *testing.T) {
		status := entity.BetWon
		conn.ExpectQuery(regexp.QuoteMeta(`FROM bets WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC;`)).
			WithArgs(bet.UserID, status).
			WillReturnRows(betRow(bet))
		bets, err := repo.GetByUserID(ctx, bet.UserID, &status)
		assert.NoError(t, err)
		assert.Len(t, bets, 1)
	})
	t.Run("no bets", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM bets WHERE user_id = $1 ORDER BY created_at DESC;`)).
			WithArgs(bet.UserID).
			WillReturnRows(pgxmock.NewRows(betCols))
		bets, err := repo.GetByUserID(ctx, bet.UserID, nil)
		assert.NoError(t, err)
		assert.Empty(t, bets)
	})
}

func TestResolveBet(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewBetsRepoWithConn(conn)
	id := uuid.New()
	resolvedAt := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`UPDATE bets SET status = $1, resolved_at = $2, payout_tx_signature = $3 WHERE id = $4 AND status = 'active';`)
	t.Run("resolved", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(entity.BetWon, resolvedAt, "5paySig", id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Resolve(ctx, id, entity.BetWon, resolvedAt, "5paySig")
		assert.NoError(t, err)
	})
	t.Run("non-terminal outcome rejected", func(t *testing.T) {
		err := repo.Resolve(ctx, id, entity.BetActive, resolvedAt, "")
		assert.Error(t, err)
	})
	t.Run("lost the race", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(entity.BetLost, resolvedAt, "", id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		resolved := sampleBet(entity.BetWon)
		resolved.ID = id
		conn.ExpectQuery(regexp.QuoteMeta(`FROM bets WHERE id = $1;`)).
			WithArgs(id).
			WillReturnRows(betRow(resolved))
		err := repo.Resolve(ctx, id, entity.BetLost, resolvedAt, "")
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyResolved)
	})
	t.Run("unexist bet", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(entity.BetLost, resolvedAt, "", id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		conn.ExpectQuery(regexp.QuoteMeta(`FROM bets WHERE id = $1;`)).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)
		err := repo.Resolve(ctx, id, entity.BetLost, resolvedAt, "")
		assert.ErrorIs(t, err, errorvalues.ErrBetNotFound)
	})
}

func TestSetMissedDays(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewBetsRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE bets SET missed_days = $1 WHERE id = $2 AND status = 'active';`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(3, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.SetMissedDays(ctx, id, 3)
		assert.NoError(t, err)
	})
	t.Run("already resolved", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(3, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		resolved := sampleBet(entity.BetForfeited)
		resolved.ID = id
		conn.ExpectQuery(regexp.QuoteMeta(`FROM bets WHERE id = $1;`)).
			WithArgs(id).
			WillReturnRows(betRow(resolved))
		err := repo.SetMissedDays(ctx, id, 3)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyResolved)
	})
}

func TestAttachPayoutSignature(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewBetsRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE bets SET payout_tx_signature = $1 WHERE id = $2 AND status <> 'active' AND payout_tx_signature = '';`)
	t.Run("attached", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("5paySig", id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.AttachPayoutSignature(ctx, id, "5paySig")
		assert.NoError(t, err)
	})
	t.Run("nothing to attach", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("5paySig", id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.AttachPayoutSignature(ctx, id, "5paySig")
		assert.ErrorIs(t, err, errorvalues.ErrBetNotFound)
	})
}

func TestListExpiredActive(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewBetsRepoWithConn(conn)
	bet := sampleBet(entity.BetActive)
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`FROM bets WHERE status = 'active' AND end_date <= $1 ORDER BY end_date ASC LIMIT $2;`)
	t.Run("returns due bets", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(now, 200).
			WillReturnRows(betRow(bet))
		bets, err := repo.ListExpiredActive(ctx, now, 200)
		assert.NoError(t, err)
		assert.Len(t, bets, 1)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(now, 200).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListExpiredActive(ctx, now, 200)
		assert.Error(t, err)
	})
}

func TestListResolvedSince(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewBetsRepoWithConn(conn)
	bet := sampleBet(entity.BetWon)
	since := time.Date(2025, 3, 19, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`FROM bets WHERE status IN ('won', 'lost') AND resolved_at >= $1 ORDER BY resolved_at ASC LIMIT $2;`)
	t.Run("returns settled bets", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(since, 200).
			WillReturnRows(betRow(bet))
		bets, err := repo.ListResolvedSince(ctx, since, 200)
		assert.NoError(t, err)
		assert.Len(t, bets, 1)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(since, 200).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListResolvedSince(ctx, since, 200)
		assert.Error(t, err)
	})
}
