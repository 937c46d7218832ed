package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/pkg/entity"
)

type LogsRepository struct {
	conn PgConnection
}

func NewLogsRepo(cfg DBConfig) *LogsRepository {
	return &LogsRepository{
		conn: newPool(cfg, "logsRepo"),
	}
}

func NewLogsRepoWithConn(conn PgConnection) *LogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for logsRepo: " + err.Error())
	}
	return &LogsRepository{
		conn: conn,
	}
}

func (lr *LogsRepository) Create(ctx context.Context, l *entity.Log) (uuid.UUID, error) {
	if l == nil {
		return uuid.UUID{}, errors.New("log is nil")
	}
	var id uuid.UUID
	row := lr.conn.QueryRow(ctx,
		`INSERT INTO logs (habit_id, user_id, action_type, action_name, value, comment, points_earned, tx_signature, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		l.HabitID,
		l.UserID,
		l.ActionType,
		l.ActionName,
		l.Value,
		l.Comment,
		l.PointsEarned,
		l.TxSignature,
		l.LoggedAt,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrHabitNotFound
			}
		}
		return uuid.UUID{}, storageErr("creating log error", err)
	}
	return id, nil
}

func (lr *LogsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, habitID *uuid.UUID, limit int) ([]entity.Log, error) {
	query := `SELECT id, habit_id, user_id, action_type, action_name, value, comment, points_earned, tx_signature, logged_at
		FROM logs WHERE user_id = $1 ORDER BY logged_at DESC LIMIT $2;`
	args := []any{uid, limit}
	if habitID != nil {
		query = `SELECT id, habit_id, user_id, action_type, action_name, value, comment, points_earned, tx_signature, logged_at
		FROM logs WHERE user_id = $1 AND habit_id = $3 ORDER BY logged_at DESC LIMIT $2;`
		args = append(args, *habitID)
	}
	rows, err := lr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr("getting logs error", err)
	}
	defer rows.Close()
	result := make([]entity.Log, 0)
	for rows.Next() {
		l := entity.Log{}
		err = rows.Scan(&l.ID, &l.HabitID, &l.UserID, &l.ActionType, &l.ActionName, &l.Value,
			&l.Comment, &l.PointsEarned, &l.TxSignature, &l.LoggedAt)
		if err != nil {
			return nil, errors.New("log row parsing error: " + err.Error())
		}
		result = append(result, l)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected log rows error: " + rows.Err().Error())
	}
	return result, nil
}

// CountDistinctDays counts calendar days inside [from, to] that carry at
// least one log. Multiple same-day logs count as one day.
func (lr *LogsRepository) CountDistinctDays(ctx context.Context, habitID, uid uuid.UUID, from, to time.Time) (int, error) {
	row := lr.conn.QueryRow(ctx,
		`SELECT COUNT(DISTINCT logged_at::date) FROM logs
		WHERE habit_id = $1 AND user_id = $2 AND logged_at >= $3 AND logged_at <= $4;`,
		habitID,
		uid,
		from,
		to,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, storageErr("counting logged days error", err)
	}
	return count, nil
}

func (lr *LogsRepository) CountToday(ctx context.Context, habitID, uid uuid.UUID, day time.Time) (int, int, error) {
	row := lr.conn.QueryRow(ctx,
		`SELECT
			COUNT(*) FILTER (WHERE action_type = 'positive'),
			COUNT(*) FILTER (WHERE action_type = 'negative')
		FROM logs WHERE habit_id = $1 AND user_id = $2 AND logged_at::date = $3::date;`,
		habitID,
		uid,
		day,
	)
	var positive, negative int
	if err := row.Scan(&positive, &negative); err != nil {
		return 0, 0, storageErr("counting today's logs error", err)
	}
	return positive, negative, nil
}
