package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/repository"
	"github.com/benW3ART/habits/pkg/entity"
)

// SettlementService coordinates resolution: outcome determination, payout
// computation, the exactly-once status transition and the follow-up points
// award. It never retries storage failures itself; that would break the
// at-most-once resolution guarantee.
type SettlementService struct {
	betsRepo   repository.BetsRepositoryI
	usersRepo  repository.UsersRepositoryI
	logsRepo   repository.LogsRepositoryI
	pointsRepo repository.PointsRepositoryI
	now        Clock
}

func NewSettlementService(
	betsRepo repository.BetsRepositoryI,
	usersRepo repository.UsersRepositoryI,
	logsRepo repository.LogsRepositoryI,
	pointsRepo repository.PointsRepositoryI,
	now Clock,
) *SettlementService {
	if betsRepo == nil || usersRepo == nil || logsRepo == nil || pointsRepo == nil {
		log.Fatal("provided nil repos to settlement service")
	}
	if now == nil {
		log.Fatal("provided nil clock to settlement service")
	}
	return &SettlementService{
		betsRepo:   betsRepo,
		usersRepo:  usersRepo,
		logsRepo:   logsRepo,
		pointsRepo: pointsRepo,
		now:        now,
	}
}

func outcomePoints(outcome entity.BetStatus) int {
	switch outcome {
	case entity.BetWon:
		return betWonPoints
	case entity.BetLost:
		return betLostPoints
	default:
		return 0
	}
}

func outcomeAction(outcome entity.BetStatus) string {
	if outcome == entity.BetWon {
		return entity.PointsActionBetWon
	}
	return entity.PointsActionBetLost
}

// ResolveBet settles an owned bet. When walletAddress is empty the caller is
// the internal resolution sweep and the ownership check is skipped.
//
// On a PartialSettlementError the returned Resolution is still valid: the
// transition committed, only the points award is outstanding.
func (ss *SettlementService) ResolveBet(ctx context.Context, betID uuid.UUID, walletAddress string, payoutTxSignature string) (*entity.Resolution, error) {
	bet, err := ss.betsRepo.GetByID(ctx, betID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBetNotFound) {
			return nil, err
		}
		return nil, errors.New("bets repository error: " + err.Error())
	}
	if walletAddress != "" {
		user, err := ss.usersRepo.FindByWallet(ctx, walletAddress)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("users repository error: " + err.Error())
		}
		if bet.UserID != user.ID {
			return nil, errorvalues.ErrWrongOwner
		}
	}
	if bet.Status != entity.BetActive {
		return nil, errorvalues.ErrAlreadyResolved
	}
	now := ss.now()
	if now.Before(bet.EndDate) {
		return nil, errorvalues.ErrTooEarly
	}

	// Snapshot the check-in count; a late log arriving after this read does
	// not reopen the decision, re-resolution is never allowed
	loggedDays := 0
	if bet.HabitID != nil && bet.DailyLogRequired {
		loggedDays, err = ss.logsRepo.CountDistinctDays(ctx, *bet.HabitID, bet.UserID, bet.StartDate, bet.EndDate)
		if err != nil {
			return nil, errors.New("logs repository error: " + err.Error())
		}
	}
	outcome, reason := determineOutcome(bet, loggedDays)
	userPayout, platformRake := CalculatePayout(bet.StakeAmount, outcome)

	err = ss.betsRepo.Resolve(ctx, bet.ID, outcome, now, payoutTxSignature)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyResolved), errors.Is(err, errorvalues.ErrBetNotFound):
			return nil, err
		}
		return nil, errors.New("bets repository error: " + err.Error())
	}

	resolution := entity.Resolution{
		BetID:             bet.ID,
		Outcome:           outcome,
		Reason:            reason,
		StakeAmount:       bet.StakeAmount,
		UserPayout:        userPayout,
		PlatformRake:      platformRake,
		PayoutTxSignature: payoutTxSignature,
		PointsAwarded:     outcomePoints(outcome),
		ResolvedAt:        now,
	}

	if resolution.PointsAwarded > 0 {
		_, err = ss.pointsRepo.Append(ctx, &entity.PointsEntry{
			UserID: bet.UserID,
			Action: outcomeAction(outcome),
			Amount: resolution.PointsAwarded,
			Metadata: entity.Metadata{
				"bet_id":       bet.ID.String(),
				"stake_amount": bet.StakeAmount,
				"payout":       userPayout,
				"reason":       reason,
			},
		})
		if err != nil {
			// The transition is durable; only the award is missing
			return &resolution, &errorvalues.PartialSettlementError{
				BetID:   bet.ID.String(),
				Outcome: string(outcome),
				Cause:   err,
			}
		}
	}
	return &resolution, nil
}

// RetryOutcomeAward re-runs only the points-award step of a settlement that
// ended in PartialSettlementError. The per-bet ledger lookup makes it safe
// to call any number of times.
func (ss *SettlementService) RetryOutcomeAward(ctx context.Context, betID uuid.UUID) (int, error) {
	bet, err := ss.betsRepo.GetByID(ctx, betID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBetNotFound) {
			return 0, err
		}
		return 0, errors.New("bets repository error: " + err.Error())
	}
	if !bet.Status.Terminal() {
		return 0, errorvalues.ErrTooEarly
	}
	points := outcomePoints(bet.Status)
	if points == 0 {
		return 0, nil
	}
	action := outcomeAction(bet.Status)
	exists, err := ss.pointsRepo.ExistsForBet(ctx, bet.UserID, action, bet.ID)
	if err != nil {
		return 0, errors.New("points repository error: " + err.Error())
	}
	if exists {
		return 0, nil
	}
	userPayout, _ := CalculatePayout(bet.StakeAmount, bet.Status)
	_, err = ss.pointsRepo.Append(ctx, &entity.PointsEntry{
		UserID: bet.UserID,
		Action: action,
		Amount: points,
		Metadata: entity.Metadata{
			"bet_id":       bet.ID.String(),
			"stake_amount": bet.StakeAmount,
			"payout":       userPayout,
		},
	})
	if err != nil {
		return 0, errors.New("points repository error: " + err.Error())
	}
	return points, nil
}

func (ss *SettlementService) AttachPayoutReference(ctx context.Context, betID uuid.UUID, payoutTxSignature string) error {
	err := ss.betsRepo.AttachPayoutSignature(ctx, betID, payoutTxSignature)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBetNotFound) {
			return err
		}
		return errors.New("bets repository error: " + err.Error())
	}
	return nil
}
