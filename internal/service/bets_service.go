package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/repository"
	"github.com/benW3ART/habits/pkg/entity"
)

const (
	platformRakePercent = 5

	// Share of the duration that may be missed before forfeiture
	missedDaysRate = 0.3
	// Share of the duration that must carry a check-in to win
	requiredDaysRate = 0.7

	maxDurationDays = 365
)

func missedDaysThreshold(durationDays int) int {
	return int(math.Floor(float64(durationDays) * missedDaysRate))
}

func requiredLoggedDays(durationDays int) int {
	return int(math.Ceil(float64(durationDays) * requiredDaysRate))
}

// CalculatePayout splits the stake between user and platform. All
// arithmetic is integer; any rounding remainder lands on the platform side,
// so userPayout + platformRake == stakeAmount always holds.
func CalculatePayout(stakeAmount int64, outcome entity.BetStatus) (userPayout, platformRake int64) {
	switch outcome {
	case entity.BetWon:
		// Full stake back, no rake on wins
		return stakeAmount, 0
	case entity.BetLost:
		// Half the stake is at risk; the returned half is raked at 5%
		halfStake := stakeAmount / 2
		rakeOnHalf := halfStake * platformRakePercent / 100
		return halfStake - rakeOnHalf, rakeOnHalf + (stakeAmount - halfStake)
	default:
		return 0, stakeAmount
	}
}

// determineOutcome is the single source of truth for how an eligible bet
// ends. loggedDays is the distinct-day count inside [start, end] and is only
// consulted for habit-linked bets with daily logging required.
func determineOutcome(bet *entity.Bet, loggedDays int) (entity.BetStatus, string) {
	threshold := missedDaysThreshold(bet.DurationDays)

	if bet.DailyLogRequired && bet.MissedDays > threshold {
		return entity.BetForfeited,
			fmt.Sprintf("Missed %d days (threshold: %d)", bet.MissedDays, threshold)
	}

	if bet.HabitID != nil && bet.DailyLogRequired {
		required := requiredLoggedDays(bet.DurationDays)
		if loggedDays >= required {
			return entity.BetWon,
				fmt.Sprintf("Logged %d/%d days (required: %d)", loggedDays, bet.DurationDays, required)
		}
		return entity.BetLost,
			fmt.Sprintf("Only logged %d/%d days (required: %d)", loggedDays, bet.DurationDays, required)
	}

	if bet.MissedDays <= threshold {
		return entity.BetWon,
			fmt.Sprintf("Completed with %d missed days (threshold: %d)", bet.MissedDays, threshold)
	}
	return entity.BetLost,
		fmt.Sprintf("Missed %d days (threshold: %d)", bet.MissedDays, threshold)
}

type BetsService struct {
	repo       repository.BetsRepositoryI
	usersRepo  repository.UsersRepositoryI
	habitsRepo repository.HabitsRepositoryI
	logsRepo   repository.LogsRepositoryI
	now        Clock
}

func NewBetsService(
	betsRepo repository.BetsRepositoryI,
	usersRepo repository.UsersRepositoryI,
	habitsRepo repository.HabitsRepositoryI,
	logsRepo repository.LogsRepositoryI,
	now Clock,
) *BetsService {
	if betsRepo == nil || usersRepo == nil || habitsRepo == nil || logsRepo == nil {
		log.Fatal("provided nil repos to bets service")
	}
	if now == nil {
		log.Fatal("provided nil clock to bets service")
	}
	return &BetsService{
		repo:       betsRepo,
		usersRepo:  usersRepo,
		habitsRepo: habitsRepo,
		logsRepo:   logsRepo,
		now:        now,
	}
}

func (bs *BetsService) CreateBet(ctx context.Context, walletAddress string, req *CreateBetRequest) (*entity.Bet, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	if req.StakeAmount <= 0 {
		return nil, errorvalues.ErrInvalidStake
	}
	if req.DurationDays < 1 || req.DurationDays > maxDurationDays {
		return nil, errorvalues.ErrInvalidDuration
	}
	user, err := bs.usersRepo.FindByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	if req.HabitID != nil {
		habit, err := bs.habitsRepo.GetByID(ctx, *req.HabitID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrHabitNotFound) {
				return nil, err
			}
			return nil, errors.New("habits repository error: " + err.Error())
		}
		if habit.UserID != user.ID {
			return nil, errorvalues.ErrForeignHabit
		}
	}

	startDate := bs.now()
	b := entity.Bet{
		UserID:           user.ID,
		HabitID:          req.HabitID,
		GoalDescription:  req.GoalDescription,
		StakeAmount:      req.StakeAmount,
		StakeTxSignature: req.StakeTxSignature,
		DurationDays:     req.DurationDays,
		StartDate:        startDate,
		EndDate:          startDate.AddDate(0, 0, req.DurationDays),
		Status:           entity.BetActive,
		DailyLogRequired: req.DailyLogRequired,
		MissedDays:       0,
	}
	id, err := bs.repo.Create(ctx, &b)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrHabitNotFound):
			return nil, err
		}
		return nil, errors.New("bets repository error: " + err.Error())
	}
	bet, err := bs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("bets repository error: " + err.Error())
	}
	return bet, nil
}

func (bs *BetsService) getOwned(ctx context.Context, betID uuid.UUID, walletAddress string) (*entity.Bet, error) {
	user, err := bs.usersRepo.FindByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	bet, err := bs.repo.GetByID(ctx, betID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBetNotFound) {
			return nil, err
		}
		return nil, errors.New("bets repository error: " + err.Error())
	}
	if bet.UserID != user.ID {
		return nil, errorvalues.ErrWrongOwner
	}
	return bet, nil
}

// GetBet returns the bet and, for habit-linked bets, a display-only progress
// snapshot. Progress is a heuristic for screens; resolution never reads it.
func (bs *BetsService) GetBet(ctx context.Context, betID uuid.UUID, walletAddress string) (*entity.Bet, *entity.BetProgress, error) {
	bet, err := bs.getOwned(ctx, betID, walletAddress)
	if err != nil {
		return nil, nil, err
	}
	if bet.HabitID == nil {
		return bet, nil, nil
	}
	loggedDays, err := bs.logsRepo.CountDistinctDays(ctx, *bet.HabitID, bet.UserID, bet.StartDate, bet.EndDate)
	if err != nil {
		return nil, nil, errors.New("logs repository error: " + err.Error())
	}
	now := bs.now()
	elapsed := int(now.Sub(bet.StartDate).Hours() / 24)
	if elapsed > bet.DurationDays {
		elapsed = bet.DurationDays
	}
	if elapsed < 0 {
		elapsed = 0
	}
	progress := entity.BetProgress{
		LoggedDays:      loggedDays,
		TotalDays:       bet.DurationDays,
		RequiredDays:    requiredLoggedDays(bet.DurationDays),
		PercentComplete: int(math.Round(float64(loggedDays) / float64(bet.DurationDays) * 100)),
		OnTrack:         loggedDays >= int(math.Ceil(float64(elapsed)*requiredDaysRate)),
	}
	return bet, &progress, nil
}

func (bs *BetsService) GetUserBets(ctx context.Context, walletAddress string, status *entity.BetStatus) ([]*entity.Bet, error) {
	user, err := bs.usersRepo.FindByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	bets, err := bs.repo.GetByUserID(ctx, user.ID, status)
	if err != nil {
		return nil, errors.New("bets repository error: " + err.Error())
	}
	return bets, nil
}

// UpdateMissedDays pushes a recomputed missed-day count with set semantics:
// the last write wins, and only while the bet is still active.
func (bs *BetsService) UpdateMissedDays(ctx context.Context, betID uuid.UUID, walletAddress string, count int) error {
	if count < 0 {
		return errorvalues.ErrInvalidCount
	}
	bet, err := bs.getOwned(ctx, betID, walletAddress)
	if err != nil {
		return err
	}
	if bet.Status != entity.BetActive {
		return errorvalues.ErrAlreadyResolved
	}
	err = bs.repo.SetMissedDays(ctx, bet.ID, count)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyResolved), errors.Is(err, errorvalues.ErrBetNotFound):
			return err
		}
		return errors.New("bets repository error: " + err.Error())
	}
	return nil
}
