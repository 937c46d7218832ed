package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/repository"
)

const (
	sweepBatchSize = 200
	// awardLookback bounds how far back the pending-award sweep re-checks
	// settled bets for a missing points award
	awardLookback = time.Hour * 24
)

// ResolutionScheduler periodically recomputes missed-day counters for
// active daily-log bets and settles bets whose end date has passed. Each
// tick is best-effort: a failed bet is logged and skipped, never retried in
// the same tick — exactly-once settlement lives in the conditional write,
// not here.
type ResolutionScheduler struct {
	betsRepo   repository.BetsRepositoryI
	usersRepo  repository.UsersRepositoryI
	logsRepo   repository.LogsRepositoryI
	settlement SettlementServiceI
	escrow     EscrowClientI
	now        Clock
	interval   time.Duration
	logger     *slog.Logger
	sched      gocron.Scheduler
}

func NewResolutionScheduler(
	betsRepo repository.BetsRepositoryI,
	usersRepo repository.UsersRepositoryI,
	logsRepo repository.LogsRepositoryI,
	settlement SettlementServiceI,
	escrow EscrowClientI,
	now Clock,
	interval time.Duration,
	logger *slog.Logger,
) *ResolutionScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResolutionScheduler{
		betsRepo:   betsRepo,
		usersRepo:  usersRepo,
		logsRepo:   logsRepo,
		settlement: settlement,
		escrow:     escrow,
		now:        now,
		interval:   interval,
		logger:     logger,
	}
}

func (rs *ResolutionScheduler) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return errors.New("creating scheduler error: " + err.Error())
	}
	_, err = sched.NewJob(
		gocron.DurationJob(rs.interval),
		gocron.NewTask(rs.Sweep),
	)
	if err != nil {
		return errors.New("registering sweep job error: " + err.Error())
	}
	sched.Start()
	rs.sched = sched
	return nil
}

func (rs *ResolutionScheduler) Stop() error {
	if rs.sched == nil {
		return nil
	}
	return rs.sched.Shutdown()
}

func (rs *ResolutionScheduler) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	rs.sweepMissedDays(ctx)
	rs.sweepExpired(ctx)
	rs.sweepPendingAwards(ctx)
}

// sweepMissedDays recomputes the missed counter for habit-linked daily-log
// bets: elapsed in-window days minus distinct logged days. Set semantics,
// last write wins.
func (rs *ResolutionScheduler) sweepMissedDays(ctx context.Context) {
	bets, err := rs.betsRepo.ListActiveDailyLog(ctx, sweepBatchSize)
	if err != nil {
		rs.logger.Error("missed-day sweep listing failed", slog.String("error", err.Error()))
		return
	}
	now := rs.now()
	for _, bet := range bets {
		if bet.HabitID == nil {
			continue
		}
		windowEnd := now
		if windowEnd.After(bet.EndDate) {
			windowEnd = bet.EndDate
		}
		if windowEnd.Before(bet.StartDate) {
			continue
		}
		logged, err := rs.logsRepo.CountDistinctDays(ctx, *bet.HabitID, bet.UserID, bet.StartDate, windowEnd)
		if err != nil {
			rs.logger.Error("missed-day sweep counting failed",
				slog.String("bet_id", bet.ID.String()), slog.String("error", err.Error()))
			continue
		}
		elapsed := int(windowEnd.Sub(bet.StartDate).Hours()/24) + 1
		if elapsed > bet.DurationDays {
			elapsed = bet.DurationDays
		}
		missed := elapsed - logged
		if missed < 0 {
			missed = 0
		}
		if missed == bet.MissedDays {
			continue
		}
		err = rs.betsRepo.SetMissedDays(ctx, bet.ID, missed)
		if err != nil && !errors.Is(err, errorvalues.ErrAlreadyResolved) {
			rs.logger.Error("missed-day sweep update failed",
				slog.String("bet_id", bet.ID.String()), slog.String("error", err.Error()))
		}
	}
}

// sweepExpired settles bets past their end date and routes value through
// the escrow collaborator, attaching the returned reference afterwards.
func (rs *ResolutionScheduler) sweepExpired(ctx context.Context) {
	bets, err := rs.betsRepo.ListExpiredActive(ctx, rs.now(), sweepBatchSize)
	if err != nil {
		rs.logger.Error("resolution sweep listing failed", slog.String("error", err.Error()))
		return
	}
	for _, bet := range bets {
		res, err := rs.settlement.ResolveBet(ctx, bet.ID, "", "")
		if err != nil {
			var partial *errorvalues.PartialSettlementError
			switch {
			case errors.As(err, &partial):
				// Transition committed; the pending-award sweep picks the
				// missing award up
				rs.logger.Warn("settlement committed without points award",
					slog.String("bet_id", bet.ID.String()), slog.String("outcome", partial.Outcome))
			case errors.Is(err, errorvalues.ErrAlreadyResolved):
				continue
			default:
				rs.logger.Error("resolution sweep settle failed",
					slog.String("bet_id", bet.ID.String()), slog.String("error", err.Error()))
				continue
			}
		}
		if res == nil {
			continue
		}
		rs.logger.Info("bet settled",
			slog.String("bet_id", bet.ID.String()),
			slog.String("outcome", string(res.Outcome)),
			slog.Int64("user_payout", res.UserPayout),
			slog.Int64("platform_rake", res.PlatformRake))

		if rs.escrow == nil {
			continue
		}
		owner, err := rs.usersRepo.FindByID(ctx, bet.UserID)
		if err != nil {
			rs.logger.Error("resolution sweep owner lookup failed",
				slog.String("bet_id", bet.ID.String()), slog.String("error", err.Error()))
			continue
		}
		var reference string
		if res.UserPayout > 0 {
			reference, err = rs.escrow.ReleasePayout(ctx, owner.WalletAddress, res.UserPayout)
			if err != nil {
				rs.logger.Error("escrow release failed",
					slog.String("bet_id", bet.ID.String()), slog.String("error", err.Error()))
				continue
			}
		}
		if res.PlatformRake > 0 {
			rakeRef, err := rs.escrow.TransferRake(ctx, res.PlatformRake)
			if err != nil {
				rs.logger.Error("escrow rake transfer failed",
					slog.String("bet_id", bet.ID.String()), slog.String("error", err.Error()))
				continue
			}
			if reference == "" {
				reference = rakeRef
			}
		}
		if reference != "" {
			if err = rs.settlement.AttachPayoutReference(ctx, bet.ID, reference); err != nil {
				rs.logger.Error("attaching payout reference failed",
					slog.String("bet_id", bet.ID.String()), slog.String("error", err.Error()))
			}
		}
	}
}

// sweepPendingAwards re-runs the points-award step for recently settled won
// and lost bets. The award is deduplicated against the ledger, so bets whose
// award already landed cost one lookup and nothing more; this is what makes
// a PartialSettlementError eventually consistent.
func (rs *ResolutionScheduler) sweepPendingAwards(ctx context.Context) {
	since := rs.now().Add(-awardLookback)
	bets, err := rs.betsRepo.ListResolvedSince(ctx, since, sweepBatchSize)
	if err != nil {
		rs.logger.Error("pending-award sweep listing failed", slog.String("error", err.Error()))
		return
	}
	for _, bet := range bets {
		awarded, err := rs.settlement.RetryOutcomeAward(ctx, bet.ID)
		if err != nil {
			rs.logger.Error("pending-award retry failed",
				slog.String("bet_id", bet.ID.String()), slog.String("error", err.Error()))
			continue
		}
		if awarded > 0 {
			rs.logger.Info("recovered pending points award",
				slog.String("bet_id", bet.ID.String()), slog.Int("points", awarded))
		}
	}
}
