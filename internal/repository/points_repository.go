package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/pkg/entity"
)

type PointsRepository struct {
	conn PgConnection
}

func NewPointsRepo(cfg DBConfig) *PointsRepository {
	return &PointsRepository{
		conn: newPool(cfg, "pointsRepo"),
	}
}

func NewPointsRepoWithConn(conn PgConnection) *PointsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for pointsRepo: " + err.Error())
	}
	return &PointsRepository{
		conn: conn,
	}
}

func (pr *PointsRepository) Append(ctx context.Context, entry *entity.PointsEntry) (uuid.UUID, error) {
	if entry == nil {
		return uuid.UUID{}, errors.New("points entry is nil")
	}
	metadata, err := sonic.Marshal(entry.Metadata)
	if err != nil {
		return uuid.UUID{}, errors.New("marshalling points metadata error: " + err.Error())
	}
	var id uuid.UUID
	row := pr.conn.QueryRow(ctx,
		`INSERT INTO points (user_id, action, amount, metadata) VALUES ($1, $2, $3, $4) RETURNING id;`,
		entry.UserID,
		entry.Action,
		entry.Amount,
		metadata,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, storageErr("appending points entry error", err)
	}
	return id, nil
}

func (pr *PointsRepository) TotalsByUser(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT p.user_id, u.wallet_address, u.username, SUM(p.amount) AS total
		FROM points p JOIN users u ON u.id = p.user_id
		GROUP BY p.user_id, u.wallet_address, u.username
		ORDER BY total DESC, p.user_id ASC LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, storageErr("getting points leaderboard error", err)
	}
	defer rows.Close()
	result := make([]entity.LeaderboardEntry, 0)
	for rows.Next() {
		e := entity.LeaderboardEntry{}
		err = rows.Scan(&e.UserID, &e.WalletAddress, &e.Username, &e.Value)
		if err != nil {
			return nil, errors.New("points leaderboard row parsing error: " + err.Error())
		}
		e.Rank = len(result) + 1
		result = append(result, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected points leaderboard rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (pr *PointsRepository) TotalForUser(ctx context.Context, uid uuid.UUID) (int, error) {
	row := pr.conn.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM points WHERE user_id = $1;`, uid)
	var total int
	if err := row.Scan(&total); err != nil {
		return 0, storageErr("summing user points error", err)
	}
	return total, nil
}

func (pr *PointsRepository) ExistsForBet(ctx context.Context, uid uuid.UUID, action string, betID uuid.UUID) (bool, error) {
	var exists bool
	row := pr.conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM points WHERE user_id = $1 AND action = $2 AND metadata->>'bet_id' = $3);`,
		uid,
		action,
		betID.String(),
	)
	if err := row.Scan(&exists); err != nil {
		return false, storageErr("inspecting bet points entry error", err)
	}
	return exists, nil
}
