package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	return &UsersRepository{
		conn: newPool(cfg, "usersRepo"),
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.UUID{}, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (wallet_address, username) VALUES ($1, $2) RETURNING id;`,
		user.WalletAddress,
		user.Username,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: wallet already registered
			case "23505":
				existing, ferr := ur.FindByWallet(ctx, user.WalletAddress)
				if ferr != nil {
					return uuid.UUID{}, ferr
				}
				return existing.ID, nil
			}
		}
		return uuid.UUID{}, storageErr("creating user db error", err)
	}
	return id, nil
}

func (ur *UsersRepository) FindByWallet(ctx context.Context, walletAddress string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, wallet_address, username, created_at FROM users WHERE wallet_address = $1;`, walletAddress)
	if err := row.Scan(&user.ID, &user.WalletAddress, &user.Username, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, storageErr("searching user by wallet error", err)
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, wallet_address, username, created_at FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.WalletAddress, &user.Username, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, storageErr("searching user by id error", err)
	}
	return &user, nil
}

func (ur *UsersRepository) UpdateUsername(ctx context.Context, uid uuid.UUID, username string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET username = $1 WHERE id = $2;`, username, uid)
	if err != nil {
		return storageErr("updating username error", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
