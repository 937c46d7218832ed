package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/repository"
	"github.com/benW3ART/habits/pkg/entity"
)

// HabitWithStats decorates a habit with its streak row and today's log
// counts for listing screens.
type HabitWithStats struct {
	entity.Habit
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
	TodayPositive int  `json:"today_positive"`
	TodayNegative int  `json:"today_negative"`
	TodayLogged   bool `json:"today_logged"`
}

type HabitsService struct {
	repo        repository.HabitsRepositoryI
	usersRepo   repository.UsersRepositoryI
	streaksRepo repository.StreaksRepositoryI
	logsRepo    repository.LogsRepositoryI
	pointsRepo  repository.PointsRepositoryI
	now         Clock
}

func NewHabitsService(
	habitsRepo repository.HabitsRepositoryI,
	usersRepo repository.UsersRepositoryI,
	streaksRepo repository.StreaksRepositoryI,
	logsRepo repository.LogsRepositoryI,
	pointsRepo repository.PointsRepositoryI,
	now Clock,
) *HabitsService {
	if habitsRepo == nil || usersRepo == nil || streaksRepo == nil || logsRepo == nil || pointsRepo == nil {
		log.Fatal("provided nil repos to habits service")
	}
	if now == nil {
		log.Fatal("provided nil clock to habits service")
	}
	return &HabitsService{
		repo:        habitsRepo,
		usersRepo:   usersRepo,
		streaksRepo: streaksRepo,
		logsRepo:    logsRepo,
		pointsRepo:  pointsRepo,
		now:         now,
	}
}

func validateActions(req *CreateHabitRequest) error {
	for _, a := range req.PositiveActions {
		if a.Points < 0 {
			return errorvalues.ErrInvalidActionPoints
		}
	}
	for _, a := range req.NegativeActions {
		if a.Points > 0 {
			return errorvalues.ErrInvalidActionPoints
		}
	}
	return nil
}

func (hs *HabitsService) CreateHabit(ctx context.Context, walletAddress string, req *CreateHabitRequest) (*entity.Habit, error) {
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
	if err = validateActions(req); err != nil {
		return nil, err
	}
	user, err := hs.usersRepo.FindByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	h := entity.Habit{
		UserID:          user.ID,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Goal:            req.Goal,
		PositiveActions: req.PositiveActions,
		NegativeActions: req.NegativeActions,
		IsPreset:        req.IsPreset,
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if err = hs.streaksRepo.Init(ctx, id, user.ID); err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	_, err = hs.pointsRepo.Append(ctx, &entity.PointsEntry{
		UserID: user.ID,
		Action: entity.PointsActionHabitCreated,
		Amount: habitCreatedPoints,
		Metadata: entity.Metadata{
			"habit_id":   id.String(),
			"habit_name": req.Name,
		},
	})
	if err != nil {
		return nil, errors.New("points repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, walletAddress string, pagination PaginationOpts) ([]*HabitWithStats, error) {
	user, err := hs.usersRepo.FindByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	habits, err := hs.repo.GetByUserID(ctx, user.ID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	today := hs.now()
	result := make([]*HabitWithStats, 0, len(habits))
	for _, h := range habits {
		hws := HabitWithStats{Habit: *h}
		streak, err := hs.streaksRepo.Get(ctx, h.ID, user.ID)
		if err != nil {
			return nil, errors.New("streaks repository error: " + err.Error())
		}
		if streak != nil {
			hws.CurrentStreak = streak.CurrentStreak
			hws.LongestStreak = streak.LongestStreak
		}
		positive, negative, err := hs.logsRepo.CountToday(ctx, h.ID, user.ID, today)
		if err != nil {
			return nil, errors.New("logs repository error: " + err.Error())
		}
		hws.TodayPositive = positive
		hws.TodayNegative = negative
		hws.TodayLogged = positive+negative > 0
		result = append(result, &hws)
	}
	return result, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID uuid.UUID, walletAddress string) (*entity.Habit, error) {
	user, err := hs.usersRepo.FindByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != user.ID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID uuid.UUID, walletAddress string) error {
	habit, err := hs.GetHabit(ctx, habitID, walletAddress)
	if err != nil {
		return err
	}
	err = hs.repo.Delete(ctx, habit.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}
