package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/repository"
	"github.com/benW3ART/habits/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) GetOrCreateByWallet(ctx context.Context, walletAddress string) (*entity.User, error) {
	user, err := us.repo.FindByWallet(ctx, walletAddress)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	id, err := us.repo.Create(ctx, &entity.User{
		WalletAddress: walletAddress,
	})
	if err != nil {
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err = us.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByWallet(ctx context.Context, walletAddress string) (*entity.User, error) {
	user, err := us.repo.FindByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}
