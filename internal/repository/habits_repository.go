package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(cfg DBConfig) *HabitsRepository {
	return &HabitsRepository{
		conn: newPool(cfg, "habitsRepo"),
	}
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

// Action lists are stored as JSONB with the fixed {name, points} shape, so
// malformed payloads fail at the boundary instead of at read time.
func marshalActions(actions []entity.HabitAction) ([]byte, error) {
	if actions == nil {
		actions = []entity.HabitAction{}
	}
	return sonic.Marshal(actions)
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	positive, err := marshalActions(habit.PositiveActions)
	if err != nil {
		return uuid.UUID{}, errors.New("marshalling positive actions error: " + err.Error())
	}
	negative, err := marshalActions(habit.NegativeActions)
	if err != nil {
		return uuid.UUID{}, errors.New("marshalling negative actions error: " + err.Error())
	}
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx,
		`INSERT INTO habits (user_id, name, description, category, goal, positive_actions, negative_actions, is_preset)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		habit.UserID,
		habit.Name,
		habit.Description,
		habit.Category,
		habit.Goal,
		positive,
		negative,
		habit.IsPreset,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation: owner missing
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, storageErr("creating habit db error", err)
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habit entity.Habit
	var positive, negative []byte
	habit.ID = id
	row := hr.conn.QueryRow(ctx,
		`SELECT user_id, name, description, category, goal, positive_actions, negative_actions, is_preset, created_at
		FROM habits WHERE id = $1;`, id)
	err := row.Scan(&habit.UserID, &habit.Name, &habit.Description, &habit.Category, &habit.Goal,
		&positive, &negative, &habit.IsPreset, &habit.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, storageErr("getting habit by id error", err)
	}
	if err = sonic.Unmarshal(positive, &habit.PositiveActions); err != nil {
		return nil, errors.New("unmarshalling positive actions error: " + err.Error())
	}
	if err = sonic.Unmarshal(negative, &habit.NegativeActions); err != nil {
		return nil, errors.New("unmarshalling negative actions error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx,
		`SELECT id, user_id, name, description, category, goal, positive_actions, negative_actions, is_preset, created_at
		FROM habits WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, storageErr("getting habits by uid error", err)
	}
	defer rows.Close()
	for rows.Next() {
		h := entity.Habit{}
		var positive, negative []byte
		err = rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Description, &h.Category, &h.Goal,
			&positive, &negative, &h.IsPreset, &h.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		if err = sonic.Unmarshal(positive, &h.PositiveActions); err != nil {
			return nil, errors.New("unmarshalling positive actions error: " + err.Error())
		}
		if err = sonic.Unmarshal(negative, &h.NegativeActions); err != nil {
			return nil, errors.New("unmarshalling negative actions error: " + err.Error())
		}
		habits = append(habits, &h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return storageErr("error deleting habit", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}
