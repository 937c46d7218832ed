package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/repository"
	"github.com/benW3ART/habits/pkg/entity"
)

func sampleLog() *entity.Log {
	return &entity.Log{
		HabitID:      uuid.New(),
		UserID:       uuid.New(),
		ActionType:   entity.ActionPositive,
		ActionName:   "ran 5k",
		Value:        10,
		PointsEarned: 15,
		LoggedAt:     time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC),
	}
}

func TestCreateLog(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewLogsRepoWithConn(conn)
	l := sampleLog()
	id := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO logs`)
	args := []any{l.HabitID, l.UserID, l.ActionType, l.ActionName, l.Value, l.Comment, l.PointsEarned, l.TxSignature, l.LoggedAt}
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		got, err := repo.Create(ctx, l)
		assert.NoError(t, err)
		assert.Equal(t, id, got)
	})
	t.Run("unexist habit", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, l)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, l)
		assert.Error(t, err)
	})
}

func TestGetLogsByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewLogsRepoWithConn(conn)
	l := sampleLog()
	l.ID = uuid.New()
	cols := []string{"id", "habit_id", "user_id", "action_type", "action_name", "value", "comment", "points_earned", "tx_signature", "logged_at"}
	t.Run("all habits", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM logs WHERE user_id = $1 ORDER BY logged_at DESC LIMIT $2;`)).
			WithArgs(l.UserID, 50).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(l.ID, l.HabitID, l.UserID, l.ActionType, l.ActionName, l.Value, l.Comment, l.PointsEarned, l.TxSignature, l.LoggedAt))
		logs, err := repo.GetByUserID(ctx, l.UserID, nil, 50)
		assert.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.Equal(t, *l, logs[0])
	})
	t.Run("filtered by habit", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM logs WHERE user_id = $1 AND habit_id = $3 ORDER BY logged_at DESC LIMIT $2;`)).
			WithArgs(l.UserID, 50, l.HabitID).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(l.ID, l.HabitID, l.UserID, l.ActionType, l.ActionName, l.Value, l.Comment, l.PointsEarned, l.TxSignature, l.LoggedAt))
		logs, err := repo.GetByUserID(ctx, l.UserID, &l.HabitID, 50)
		assert.NoError(t, err)
		assert.Len(t, logs, 1)
	})
	t.Run("no logs", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM logs WHERE user_id = $1 ORDER BY logged_at DESC LIMIT $2;`)).
			WithArgs(l.UserID, 50).
			WillReturnRows(pgxmock.NewRows(cols))
		logs, err := repo.GetByUserID(ctx, l.UserID, nil, 50)
		assert.NoError(t, err)
		assert.Empty(t, logs)
	})
}

func TestCountDistinctDays(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewLogsRepoWithConn(conn)
	habitID := uuid.New()
	uid := uuid.New()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 29)
	query := regexp.QuoteMeta(`SELECT COUNT(DISTINCT logged_at::date) FROM logs`)
	t.Run("counted", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habitID, uid, from, to).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(21))
		count, err := repo.CountDistinctDays(ctx, habitID, uid, from, to)
		assert.NoError(t, err)
		assert.Equal(t, 21, count)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habitID, uid, from, to).
			WillReturnError(errors.New("db error"))
		_, err := repo.CountDistinctDays(ctx, habitID, uid, from, to)
		assert.Error(t, err)
	})
}

func TestCountToday(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewLogsRepoWithConn(conn)
	habitID := uuid.New()
	uid := uuid.New()
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`COUNT(*) FILTER (WHERE action_type = 'positive')`)
	t.Run("counted", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habitID, uid, day).
			WillReturnRows(pgxmock.NewRows([]string{"positive", "negative"}).AddRow(2, 1))
		positive, negative, err := repo.CountToday(ctx, habitID, uid, day)
		assert.NoError(t, err)
		assert.Equal(t, 2, positive)
		assert.Equal(t, 1, negative)
	})
}
