package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/repository/mocks"
	"github.com/benW3ART/habits/internal/service"
	"github.com/benW3ART/habits/pkg/entity"
)

var (
	settleNow    = time.Date(2025, time.March, 31, 12, 0, 0, 0, time.UTC)
	settleClock  = func() time.Time { return settleNow }
	ownerID      = uuid.New()
	ownerWallet  = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
	strangerID   = uuid.New()
	linkedHabit  = uuid.New()
)

func activeDailyLogBet() *entity.Bet {
	habitID := linkedHabit
	return &entity.Bet{
		ID:               uuid.New(),
		UserID:           ownerID,
		HabitID:          &habitID,
		GoalDescription:  "run every day",
		StakeAmount:      1_000_000,
		DurationDays:     30,
		StartDate:        settleNow.AddDate(0, 0, -31),
		EndDate:          settleNow.AddDate(0, 0, -1),
		Status:           entity.BetActive,
		DailyLogRequired: true,
	}
}

type settleMocks struct {
	bets   *mocks.MockBetsRepositoryI
	users  *mocks.MockUsersRepositoryI
	logs   *mocks.MockLogsRepositoryI
	points *mocks.MockPointsRepositoryI
}

func newSettlement(t *testing.T) (*service.SettlementService, settleMocks) {
	ctrl := gomock.NewController(t)
	m := settleMocks{
		bets:   mocks.NewMockBetsRepositoryI(ctrl),
		users:  mocks.NewMockUsersRepositoryI(ctrl),
		logs:   mocks.NewMockLogsRepositoryI(ctrl),
		points: mocks.NewMockPointsRepositoryI(ctrl),
	}
	return service.NewSettlementService(m.bets, m.users, m.logs, m.points, settleClock), m
}

func TestResolveBetWon(t *testing.T) {
	serv, m := newSettlement(t)
	ctx := context.Background()
	bet := activeDailyLogBet()

	m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
	// 21 of 30 days logged, exactly the ceil(30*0.7) requirement
	m.logs.EXPECT().CountDistinctDays(ctx, *bet.HabitID, ownerID, bet.StartDate, bet.EndDate).Return(21, nil)
	m.bets.EXPECT().Resolve(ctx, bet.ID, entity.BetWon, settleNow, "tx-abc").Return(nil)
	m.points.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *entity.PointsEntry) (uuid.UUID, error) {
			assert.Equal(t, entity.PointsActionBetWon, entry.Action)
			assert.Equal(t, 100, entry.Amount)
			assert.Equal(t, bet.ID.String(), entry.Metadata["bet_id"])
			return uuid.New(), nil
		})

	res, err := serv.ResolveBet(ctx, bet.ID, "", "tx-abc")
	require.NoError(t, err)
	assert.Equal(t, entity.BetWon, res.Outcome)
	assert.Equal(t, int64(1_000_000), res.UserPayout)
	assert.Equal(t, int64(0), res.PlatformRake)
	assert.Equal(t, 100, res.PointsAwarded)
	assert.Equal(t, "Logged 21/30 days (required: 21)", res.Reason)
}

func TestResolveBetLost(t *testing.T) {
	serv, m := newSettlement(t)
	ctx := context.Background()
	bet := activeDailyLogBet()

	m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
	m.logs.EXPECT().CountDistinctDays(ctx, *bet.HabitID, ownerID, bet.StartDate, bet.EndDate).Return(15, nil)
	m.bets.EXPECT().Resolve(ctx, bet.ID, entity.BetLost, settleNow, "").Return(nil)
	m.points.EXPECT().Append(ctx, gomock.Any()).Return(uuid.New(), nil)

	res, err := serv.ResolveBet(ctx, bet.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, entity.BetLost, res.Outcome)
	// Half returned minus 5% rake on that half, remainder to the platform
	assert.Equal(t, int64(475_000), res.UserPayout)
	assert.Equal(t, int64(525_000), res.PlatformRake)
	assert.Equal(t, res.StakeAmount, res.UserPayout+res.PlatformRake)
	assert.Equal(t, 25, res.PointsAwarded)
}

func TestResolveBetForfeited(t *testing.T) {
	serv, m := newSettlement(t)
	ctx := context.Background()
	bet := activeDailyLogBet()
	bet.MissedDays = 10 // threshold for 30 days is 9

	m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
	m.logs.EXPECT().CountDistinctDays(ctx, *bet.HabitID, ownerID, bet.StartDate, bet.EndDate).Return(20, nil)
	m.bets.EXPECT().Resolve(ctx, bet.ID, entity.BetForfeited, settleNow, "").Return(nil)

	res, err := serv.ResolveBet(ctx, bet.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, entity.BetForfeited, res.Outcome)
	assert.Equal(t, int64(0), res.UserPayout)
	assert.Equal(t, bet.StakeAmount, res.PlatformRake)
	assert.Equal(t, 0, res.PointsAwarded)
	assert.Equal(t, "Missed 10 days (threshold: 9)", res.Reason)
}

func TestResolveBetStandalone(t *testing.T) {
	// No habit link: outcome rides on the missed-day counter alone
	serv, m := newSettlement(t)
	ctx := context.Background()
	bet := activeDailyLogBet()
	bet.HabitID = nil
	bet.DailyLogRequired = false
	bet.MissedDays = 3

	m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
	m.bets.EXPECT().Resolve(ctx, bet.ID, entity.BetWon, settleNow, "").Return(nil)
	m.points.EXPECT().Append(ctx, gomock.Any()).Return(uuid.New(), nil)

	res, err := serv.ResolveBet(ctx, bet.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, entity.BetWon, res.Outcome)
	assert.Equal(t, "Completed with 3 missed days (threshold: 9)", res.Reason)
}

func TestResolveBetDailyLogNoHabit(t *testing.T) {
	// Daily logging required but no habit link: the log count is never
	// consulted and the missed-day counter decides alone
	dailyLogNoHabitBet := func() *entity.Bet {
		bet := activeDailyLogBet()
		bet.HabitID = nil
		bet.DurationDays = 10
		bet.StartDate = settleNow.AddDate(0, 0, -11)
		bet.EndDate = settleNow.AddDate(0, 0, -1)
		return bet
	}

	t.Run("within threshold wins the full stake", func(t *testing.T) {
		serv, m := newSettlement(t)
		ctx := context.Background()
		bet := dailyLogNoHabitBet()
		bet.MissedDays = 2

		m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
		m.bets.EXPECT().Resolve(ctx, bet.ID, entity.BetWon, settleNow, "").Return(nil)
		m.points.EXPECT().Append(ctx, gomock.Any()).Return(uuid.New(), nil)

		res, err := serv.ResolveBet(ctx, bet.ID, "", "")
		require.NoError(t, err)
		assert.Equal(t, entity.BetWon, res.Outcome)
		assert.Equal(t, int64(1_000_000), res.UserPayout)
		assert.Equal(t, int64(0), res.PlatformRake)
		assert.Equal(t, "Completed with 2 missed days (threshold: 3)", res.Reason)
	})
	t.Run("over threshold forfeits the stake", func(t *testing.T) {
		serv, m := newSettlement(t)
		ctx := context.Background()
		bet := dailyLogNoHabitBet()
		bet.MissedDays = 4

		m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
		m.bets.EXPECT().Resolve(ctx, bet.ID, entity.BetForfeited, settleNow, "").Return(nil)

		res, err := serv.ResolveBet(ctx, bet.ID, "", "")
		require.NoError(t, err)
		assert.Equal(t, entity.BetForfeited, res.Outcome)
		assert.Equal(t, int64(0), res.UserPayout)
		assert.Equal(t, int64(1_000_000), res.PlatformRake)
		assert.Equal(t, 0, res.PointsAwarded)
		assert.Equal(t, "Missed 4 days (threshold: 3)", res.Reason)
	})
}

func TestResolveBetOwnership(t *testing.T) {
	serv, m := newSettlement(t)
	ctx := context.Background()
	bet := activeDailyLogBet()

	t.Run("foreign caller", func(t *testing.T) {
		m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
		m.users.EXPECT().FindByWallet(ctx, ownerWallet).Return(&entity.User{ID: strangerID, WalletAddress: ownerWallet}, nil)
		_, err := serv.ResolveBet(ctx, bet.ID, ownerWallet, "")
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("unexist bet", func(t *testing.T) {
		m.bets.EXPECT().GetByID(ctx, bet.ID).Return(nil, errorvalues.ErrBetNotFound)
		_, err := serv.ResolveBet(ctx, bet.ID, ownerWallet, "")
		assert.ErrorIs(t, err, errorvalues.ErrBetNotFound)
	})
}

func TestResolveBetGuards(t *testing.T) {
	serv, m := newSettlement(t)
	ctx := context.Background()

	t.Run("already resolved", func(t *testing.T) {
		bet := activeDailyLogBet()
		bet.Status = entity.BetWon
		m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
		_, err := serv.ResolveBet(ctx, bet.ID, "", "")
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyResolved)
	})
	t.Run("too early", func(t *testing.T) {
		bet := activeDailyLogBet()
		bet.EndDate = settleNow.AddDate(0, 0, 5)
		m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
		_, err := serv.ResolveBet(ctx, bet.ID, "", "")
		assert.ErrorIs(t, err, errorvalues.ErrTooEarly)
	})
	t.Run("raced transition", func(t *testing.T) {
		bet := activeDailyLogBet()
		m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
		m.logs.EXPECT().CountDistinctDays(ctx, *bet.HabitID, ownerID, bet.StartDate, bet.EndDate).Return(25, nil)
		m.bets.EXPECT().Resolve(ctx, bet.ID, entity.BetWon, settleNow, "").Return(errorvalues.ErrAlreadyResolved)
		_, err := serv.ResolveBet(ctx, bet.ID, "", "")
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyResolved)
	})
}

func TestResolveBetPartialAward(t *testing.T) {
	serv, m := newSettlement(t)
	ctx := context.Background()
	bet := activeDailyLogBet()

	m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
	m.logs.EXPECT().CountDistinctDays(ctx, *bet.HabitID, ownerID, bet.StartDate, bet.EndDate).Return(25, nil)
	m.bets.EXPECT().Resolve(ctx, bet.ID, entity.BetWon, settleNow, "").Return(nil)
	m.points.EXPECT().Append(ctx, gomock.Any()).Return(uuid.UUID{}, errors.New("ledger down"))

	res, err := serv.ResolveBet(ctx, bet.ID, "", "")
	require.Error(t, err)
	var partial *errorvalues.PartialSettlementError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, string(entity.BetWon), partial.Outcome)
	// Resolution is still returned: the transition committed
	require.NotNil(t, res)
	assert.Equal(t, entity.BetWon, res.Outcome)
}

func TestRetryOutcomeAward(t *testing.T) {
	serv, m := newSettlement(t)
	ctx := context.Background()

	t.Run("awards once", func(t *testing.T) {
		bet := activeDailyLogBet()
		bet.Status = entity.BetWon
		m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
		m.points.EXPECT().ExistsForBet(ctx, ownerID, entity.PointsActionBetWon, bet.ID).Return(false, nil)
		m.points.EXPECT().Append(ctx, gomock.Any()).Return(uuid.New(), nil)
		points, err := serv.RetryOutcomeAward(ctx, bet.ID)
		require.NoError(t, err)
		assert.Equal(t, 100, points)
	})
	t.Run("already awarded", func(t *testing.T) {
		bet := activeDailyLogBet()
		bet.Status = entity.BetWon
		m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
		m.points.EXPECT().ExistsForBet(ctx, ownerID, entity.PointsActionBetWon, bet.ID).Return(true, nil)
		points, err := serv.RetryOutcomeAward(ctx, bet.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, points)
	})
	t.Run("still active", func(t *testing.T) {
		bet := activeDailyLogBet()
		m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
		_, err := serv.RetryOutcomeAward(ctx, bet.ID)
		assert.ErrorIs(t, err, errorvalues.ErrTooEarly)
	})
	t.Run("forfeited awards nothing", func(t *testing.T) {
		bet := activeDailyLogBet()
		bet.Status = entity.BetForfeited
		m.bets.EXPECT().GetByID(ctx, bet.ID).Return(bet, nil)
		points, err := serv.RetryOutcomeAward(ctx, bet.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, points)
	})
}
