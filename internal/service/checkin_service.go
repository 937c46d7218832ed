package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/repository"
	"github.com/benW3ART/habits/pkg/entity"
)

type CheckInService struct {
	habitsRepo  repository.HabitsRepositoryI
	usersRepo   repository.UsersRepositoryI
	logsRepo    repository.LogsRepositoryI
	streaksRepo repository.StreaksRepositoryI
	pointsRepo  repository.PointsRepositoryI
	now         Clock
	loc         *time.Location
}

func NewCheckInService(
	habitsRepo repository.HabitsRepositoryI,
	usersRepo repository.UsersRepositoryI,
	logsRepo repository.LogsRepositoryI,
	streaksRepo repository.StreaksRepositoryI,
	pointsRepo repository.PointsRepositoryI,
	now Clock,
	loc *time.Location,
) *CheckInService {
	if habitsRepo == nil || usersRepo == nil || logsRepo == nil || streaksRepo == nil || pointsRepo == nil {
		log.Fatal("provided nil repos to check-in service")
	}
	if now == nil {
		log.Fatal("provided nil clock to check-in service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &CheckInService{
		habitsRepo:  habitsRepo,
		usersRepo:   usersRepo,
		logsRepo:    logsRepo,
		streaksRepo: streaksRepo,
		pointsRepo:  pointsRepo,
		now:         now,
		loc:         loc,
	}
}

// calendarDay truncates a wall-clock instant to day granularity in the
// reference timezone. Streak adjacency compares these values, never
// wall-clock deltas.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// storedDay rebuilds a persisted calendar date in the reference timezone.
// DATE columns decode as midnight UTC, so converting that instant into a
// zone west of UTC would land on the previous day; the stored Y/M/D
// components are taken as-is instead.
func storedDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

type streakUpdate struct {
	current  int
	longest  int
	advanced bool
}

// advanceStreak applies the day-adjacency rule through the single
// conditional-upsert mutation path. A lost upsert race means another
// same-day check-in already advanced the row; the fresh row is adopted and
// the update reported as not advancing, so one calendar day can never add
// more than one increment.
func (serv *CheckInService) advanceStreak(ctx context.Context, habitID, userID uuid.UUID, today time.Time) (*streakUpdate, error) {
	streak, err := serv.streaksRepo.Get(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	current, longest := 0, 0
	var lastLogDate *time.Time
	if streak != nil {
		current = streak.CurrentStreak
		longest = streak.LongestStreak
		lastLogDate = streak.LastLogDate
	}

	todayDay := calendarDay(today, serv.loc)
	if lastLogDate != nil && storedDay(*lastLogDate, serv.loc).Equal(todayDay) {
		// Already logged today, streak values stay put
		return &streakUpdate{current: current, longest: longest}, nil
	}

	if lastLogDate != nil && storedDay(*lastLogDate, serv.loc).Equal(todayDay.AddDate(0, 0, -1)) {
		current++
	} else {
		// First-ever log or a gap of two days or more; longest survives
		current = 1
	}
	if current > longest {
		longest = current
	}

	day := todayDay
	written, err := serv.streaksRepo.Upsert(ctx, &entity.Streak{
		HabitID:       habitID,
		UserID:        userID,
		CurrentStreak: current,
		LongestStreak: longest,
		LastLogDate:   &day,
	}, lastLogDate)
	if err != nil {
		return nil, err
	}
	if !written {
		fresh, err := serv.streaksRepo.Get(ctx, habitID, userID)
		if err != nil {
			return nil, err
		}
		if fresh == nil {
			return nil, errors.New("streak row vanished during upsert race")
		}
		return &streakUpdate{current: fresh.CurrentStreak, longest: fresh.LongestStreak}, nil
	}
	return &streakUpdate{current: current, longest: longest, advanced: true}, nil
}

func (serv *CheckInService) RecordCheckIn(ctx context.Context, walletAddress string, req *RecordCheckInRequest) (*CheckInResult, error) {
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
	user, err := serv.usersRepo.FindByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	habit, err := serv.habitsRepo.GetByID(ctx, req.HabitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != user.ID {
		return nil, errorvalues.ErrWrongOwner
	}

	now := serv.now()
	update, err := serv.advanceStreak(ctx, habit.ID, user.ID, now)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}

	base := req.BasePoints
	if base == 0 {
		base = defaultBasePoints
	}
	value := req.Value
	if value == 0 {
		value = 1
	}
	pointsEarned := ComputePoints(base, update.current)

	l := entity.Log{
		HabitID:      habit.ID,
		UserID:       user.ID,
		ActionType:   req.ActionType,
		ActionName:   req.ActionName,
		Value:        value,
		Comment:      req.Comment,
		PointsEarned: pointsEarned,
		TxSignature:  req.TxSignature,
		LoggedAt:     now,
	}
	logID, err := serv.logsRepo.Create(ctx, &l)
	if err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	l.ID = logID

	_, err = serv.pointsRepo.Append(ctx, &entity.PointsEntry{
		UserID: user.ID,
		Action: entity.PointsActionHabitLog,
		Amount: pointsEarned,
		Metadata: entity.Metadata{
			"habit_id":    habit.ID.String(),
			"action_type": string(req.ActionType),
			"action_name": req.ActionName,
			"log_id":      logID.String(),
			"streak":      update.current,
		},
	})
	if err != nil {
		return nil, errors.New("points repository error: " + err.Error())
	}

	// Weekly milestone fires only when this check-in actually advanced the
	// streak onto a multiple of 7, never on a same-day re-log
	if update.advanced && update.current > 0 && update.current%milestoneInterval == 0 {
		_, err = serv.pointsRepo.Append(ctx, &entity.PointsEntry{
			UserID: user.ID,
			Action: entity.PointsActionStreakMilestone,
			Amount: milestonePoints,
			Metadata: entity.Metadata{
				"habit_id": habit.ID.String(),
				"streak":   update.current,
			},
		})
		if err != nil {
			return nil, errors.New("points repository error: " + err.Error())
		}
	}

	return &CheckInResult{
		Log:           &l,
		PointsEarned:  pointsEarned,
		CurrentStreak: update.current,
		LongestStreak: update.longest,
	}, nil
}

func (serv *CheckInService) GetLogs(ctx context.Context, walletAddress string, habitID *uuid.UUID, limit int) ([]entity.Log, error) {
	user, err := serv.usersRepo.FindByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	logs, err := serv.logsRepo.GetByUserID(ctx, user.ID, habitID, limit)
	if err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	return logs, nil
}
