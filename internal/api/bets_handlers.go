package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/service"
	"github.com/benW3ART/habits/pkg/entity"
	"github.com/benW3ART/habits/pkg/httputil"
)

type CreateBetRequest struct {
	GoalDescription  string     `json:"goal_description"`
	StakeAmount      int64      `json:"stake_amount"`
	DurationDays     int        `json:"duration_days"`
	DailyLogRequired bool       `json:"daily_log_required"`
	HabitID          *uuid.UUID `json:"habit_id,omitempty"`
	StakeTxSignature string     `json:"stake_tx_signature"`
}

type ResolveBetRequest struct {
	PayoutTxSignature string `json:"payout_tx_signature"`
}

type UpdateMissedDaysRequest struct {
	MissedDays int `json:"missed_days"`
}

type GetBetResponse struct {
	Bet      *entity.Bet         `json:"bet"`
	Progress *entity.BetProgress `json:"progress,omitempty"`
}

func (s *Server) CreateBet(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	wallet, err := GetWalletFromContext(r)
	if err != nil {
		logger.Error("create bet error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateBetRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create bet error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	bet, err := s.betsService.CreateBet(ctx, wallet, &service.CreateBetRequest{
		GoalDescription:  req.GoalDescription,
		StakeAmount:      req.StakeAmount,
		DurationDays:     req.DurationDays,
		DailyLogRequired: req.DailyLogRequired,
		HabitID:          req.HabitID,
		StakeTxSignature: req.StakeTxSignature,
	})
	if err != nil {
		switch {
		case isValidationError(err),
			errors.Is(err, errorvalues.ErrInvalidStake),
			errors.Is(err, errorvalues.ErrInvalidDuration):
			logger.Error("create bet error: invalid bet payload")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid bet payload", err)
		case errors.Is(err, errorvalues.ErrForeignHabit), errors.Is(err, errorvalues.ErrHabitNotFound):
			logger.Error("create bet error: habit unavailable for staking")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create bet error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrStorageTimeout):
			logger.Error("create bet error: storage timeout")
			httputil.WriteRetryAfter(w, "1")
		default:
			logger.Error("create bet error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating bet", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, bet)
	logger.Info("bet created",
		slog.String("bet_id", bet.ID.String()),
		slog.Int64("stake_amount", bet.StakeAmount))
}

func (s *Server) GetBets(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	wallet, err := GetWalletFromContext(r)
	if err != nil {
		logger.Error("get bets error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var status *entity.BetStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := entity.BetStatus(raw)
		switch st {
		case entity.BetActive, entity.BetWon, entity.BetLost, entity.BetForfeited:
			status = &st
		default:
			logger.Error("get bets error: unknown status filter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown status filter", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	bets, err := s.betsService.GetUserBets(ctx, wallet, status)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStorageTimeout) {
			logger.Error("get bets error: storage timeout")
			httputil.WriteRetryAfter(w, "1")
			return
		}
		logger.Error("get bets error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting bets", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"bets": bets})
	logger.Info("bets provided")
}

func (s *Server) GetBet(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	wallet, err := GetWalletFromContext(r)
	if err != nil {
		logger.Error("get bet error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get bet error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid bet id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	bet, progress, err := s.betsService.GetBet(ctx, id, wallet)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrBetNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get bet error: unexist bet")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "bet doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrStorageTimeout):
			logger.Error("get bet error: storage timeout")
			httputil.WriteRetryAfter(w, "1")
		default:
			logger.Error("get bet error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting bet", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetBetResponse{
		Bet:      bet,
		Progress: progress,
	})
}

func (s *Server) ResolveBet(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	wallet, err := GetWalletFromContext(r)
	if err != nil {
		logger.Error("resolve bet error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("resolve bet error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid bet id in path value", nil)
		return
	}
	var req ResolveBetRequest
	defer r.Body.Close()
	if r.ContentLength != 0 {
		if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("resolve bet error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	resolution, err := s.settlementService.ResolveBet(ctx, id, wallet, req.PayoutTxSignature)
	if err != nil {
		var partial *errorvalues.PartialSettlementError
		switch {
		case errors.As(err, &partial):
			// The transition is durable; the pending-award sweep retries the
			// award
			logger.Warn("resolve bet: settled but points award pending",
				slog.String("bet_id", id.String()), slog.String("outcome", partial.Outcome))
			httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
				"resolution":           resolution,
				"points_award_pending": true,
			})
		case errors.Is(err, errorvalues.ErrBetNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("resolve bet error: unexist bet")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "bet doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrAlreadyResolved):
			logger.Error("resolve bet error: bet already resolved")
			httputil.WriteErrorResponse(w, http.StatusConflict, "bet already resolved", nil)
		case errors.Is(err, errorvalues.ErrTooEarly):
			logger.Error("resolve bet error: bet hasn't expired yet")
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "bet hasn't reached its end date", nil)
		case errors.Is(err, errorvalues.ErrStorageTimeout):
			logger.Error("resolve bet error: storage timeout")
			httputil.WriteRetryAfter(w, "1")
		default:
			logger.Error("resolve bet error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resolving bet", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"resolution": resolution})
	logger.Info("bet resolved",
		slog.String("bet_id", id.String()),
		slog.String("outcome", string(resolution.Outcome)))
}

func (s *Server) UpdateMissedDays(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	wallet, err := GetWalletFromContext(r)
	if err != nil {
		logger.Error("update missed days error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update missed days error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid bet id in path value", nil)
		return
	}
	var req UpdateMissedDaysRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update missed days error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.betsService.UpdateMissedDays(ctx, id, wallet, req.MissedDays)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidCount):
			logger.Error("update missed days error: negative count")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "missed days can't be negative", nil)
		case errors.Is(err, errorvalues.ErrBetNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update missed days error: unexist bet")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "bet doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrAlreadyResolved):
			logger.Error("update missed days error: bet already resolved")
			httputil.WriteErrorResponse(w, http.StatusConflict, "bet already resolved", nil)
		case errors.Is(err, errorvalues.ErrStorageTimeout):
			logger.Error("update missed days error: storage timeout")
			httputil.WriteRetryAfter(w, "1")
		default:
			logger.Error("update missed days error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating missed days", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("missed days updated", slog.String("bet_id", id.String()), slog.Int("missed_days", req.MissedDays))
}
