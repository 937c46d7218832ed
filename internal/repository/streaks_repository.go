package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/benW3ART/habits/pkg/entity"
)

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(cfg DBConfig) *StreaksRepository {
	return &StreaksRepository{
		conn: newPool(cfg, "streaksRepo"),
	}
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) Get(ctx context.Context, habitID, uid uuid.UUID) (*entity.Streak, error) {
	var s entity.Streak
	row := sr.conn.QueryRow(ctx,
		`SELECT habit_id, user_id, current_streak, longest_streak, last_log_date, updated_at
		FROM streaks WHERE habit_id = $1 AND user_id = $2;`,
		habitID,
		uid,
	)
	err := row.Scan(&s.HabitID, &s.UserID, &s.CurrentStreak, &s.LongestStreak, &s.LastLogDate, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("getting streak error", err)
	}
	return &s, nil
}

// Upsert writes the computed streak state, conditioned on the last_log_date
// the caller read. A concurrent same-day check-in that already advanced the
// row makes the condition fail and no mutation happens; the caller re-reads.
func (sr *StreaksRepository) Upsert(ctx context.Context, streak *entity.Streak, expectedLastLogDate *time.Time) (bool, error) {
	if streak == nil {
		return false, errors.New("streak is nil")
	}
	ct, err := sr.conn.Exec(ctx,
		`INSERT INTO streaks (habit_id, user_id, current_streak, longest_streak, last_log_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (habit_id, user_id) DO UPDATE
		SET current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			last_log_date = EXCLUDED.last_log_date,
			updated_at = NOW()
		WHERE streaks.last_log_date IS NOT DISTINCT FROM $6;`,
		streak.HabitID,
		streak.UserID,
		streak.CurrentStreak,
		streak.LongestStreak,
		streak.LastLogDate,
		expectedLastLogDate,
	)
	if err != nil {
		return false, storageErr("upserting streak error", err)
	}
	return ct.RowsAffected() > 0, nil
}

func (sr *StreaksRepository) Init(ctx context.Context, habitID, uid uuid.UUID) error {
	_, err := sr.conn.Exec(ctx,
		`INSERT INTO streaks (habit_id, user_id, current_streak, longest_streak)
		VALUES ($1, $2, 0, 0) ON CONFLICT (habit_id, user_id) DO NOTHING;`,
		habitID,
		uid,
	)
	if err != nil {
		return storageErr("initializing streak error", err)
	}
	return nil
}

func (sr *StreaksRepository) MaxCurrentByUser(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT s.user_id, u.wallet_address, u.username, MAX(s.current_streak) AS max_streak
		FROM streaks s JOIN users u ON u.id = s.user_id
		GROUP BY s.user_id, u.wallet_address, u.username
		HAVING MAX(s.current_streak) > 0
		ORDER BY max_streak DESC, s.user_id ASC LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, storageErr("getting streak leaderboard error", err)
	}
	defer rows.Close()
	result := make([]entity.LeaderboardEntry, 0)
	for rows.Next() {
		e := entity.LeaderboardEntry{}
		err = rows.Scan(&e.UserID, &e.WalletAddress, &e.Username, &e.Value)
		if err != nil {
			return nil, errors.New("streak leaderboard row parsing error: " + err.Error())
		}
		e.Rank = len(result) + 1
		result = append(result, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected streak leaderboard rows error: " + rows.Err().Error())
	}
	return result, nil
}
