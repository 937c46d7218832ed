package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/repository"
	"github.com/benW3ART/habits/pkg/entity"
)

func sampleHabit() *entity.Habit {
	return &entity.Habit{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "morning run",
		Description: "5k before work",
		Category:    "fitness",
		Goal:        "run every weekday",
		PositiveActions: []entity.HabitAction{
			{Name: "ran 5k", Points: 10},
		},
		NegativeActions: []entity.HabitAction{
			{Name: "skipped", Points: -10},
		},
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestCreateHabit(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	habit := sampleHabit()
	positive, err := sonic.Marshal(habit.PositiveActions)
	assert.NoError(t, err)
	negative, err := sonic.Marshal(habit.NegativeActions)
	assert.NoError(t, err)
	query := regexp.QuoteMeta(`INSERT INTO habits`)
	args := []any{habit.UserID, habit.Name, habit.Description, habit.Category, habit.Goal, positive, negative, habit.IsPreset}
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(habit.ID))
		id, err := repo.Create(ctx, habit)
		assert.NoError(t, err)
		assert.Equal(t, habit.ID, id)
	})
	t.Run("unexist user", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, habit)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, habit)
		assert.Error(t, err)
	})
}

func TestGetHabitByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	habit := sampleHabit()
	positive, _ := sonic.Marshal(habit.PositiveActions)
	negative, _ := sonic.Marshal(habit.NegativeActions)
	query := regexp.QuoteMeta(`FROM habits WHERE id = $1;`)
	cols := []string{"user_id", "name", "description", "category", "goal", "positive_actions", "negative_actions", "is_preset", "created_at"}
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(habit.UserID, habit.Name, habit.Description, habit.Category, habit.Goal,
					positive, negative, habit.IsPreset, habit.CreatedAt))
		result, err := repo.GetByID(ctx, habit.ID)
		assert.NoError(t, err)
		assert.Equal(t, habit, result)
	})
	t.Run("unexist habit", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestGetHabitsByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	habit := sampleHabit()
	positive, _ := sonic.Marshal(habit.PositiveActions)
	negative, _ := sonic.Marshal(habit.NegativeActions)
	query := regexp.QuoteMeta(`FROM habits WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`)
	cols := []string{"id", "user_id", "name", "description", "category", "goal", "positive_actions", "negative_actions", "is_preset", "created_at"}
	t.Run("paged", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habit.UserID, 10, 0).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(habit.ID, habit.UserID, habit.Name, habit.Description, habit.Category, habit.Goal,
					positive, negative, habit.IsPreset, habit.CreatedAt))
		habits, err := repo.GetByUserID(ctx, habit.UserID, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, habits, 1)
		assert.Equal(t, habit, habits[0])
	})
	t.Run("no habits", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habit.UserID, 10, 0).
			WillReturnRows(pgxmock.NewRows(cols))
		habits, err := repo.GetByUserID(ctx, habit.UserID, 10, 0)
		assert.NoError(t, err)
		assert.Empty(t, habits)
	})
}

func TestDeleteHabit(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM habits WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("unexist habit", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}
