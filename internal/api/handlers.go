package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/service"
	"github.com/benW3ART/habits/pkg/entity"
	"github.com/benW3ART/habits/pkg/httputil"
)

type AuthRequest struct {
	WalletAddress string `json:"wallet_address"`
	Message       string `json:"message"`
	Signature     string `json:"signature"`
}

type CreateHabitRequest struct {
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	Category        string               `json:"category"`
	Goal            string               `json:"goal"`
	PositiveActions []entity.HabitAction `json:"positive_actions"`
	NegativeActions []entity.HabitAction `json:"negative_actions"`
	IsPreset        bool                 `json:"is_preset"`
}

type RecordCheckInRequest struct {
	ActionType  string `json:"action_type"`
	ActionName  string `json:"action_name"`
	Value       int    `json:"value"`
	Comment     string `json:"comment"`
	BasePoints  int    `json:"base_points"`
	TxSignature string `json:"tx_signature"`
}

type GetHabitsResponse struct {
	UserID string                    `json:"uid"`
	Page   int                       `json:"page"`
	Limit  int                       `json:"limit"`
	Habits []*service.HabitWithStats `json:"habits"`
}

func isValidationError(err error) bool {
	var fieldErr validator.FieldError
	return errors.As(err, &fieldErr)
}

func (s *Server) Auth(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AuthRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("auth error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	verified, err := s.signatureVerifier.Verify(req.WalletAddress, req.Message, req.Signature)
	if err != nil {
		logger.Error("auth error: verifier failure", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "signature verification unavailable", nil)
		return
	}
	if !verified {
		logger.Error("auth error: signature rejected")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "signature verification failed", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.GetOrCreateByWallet(ctx, req.WalletAddress)
	if err != nil {
		if isValidationError(err) {
			logger.Error("auth error: invalid wallet address")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid wallet address", nil)
			return
		}
		logger.Error("auth error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during authentication", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("auth error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":            user.ID.String(),
		"wallet_address": user.WalletAddress,
		"token":          token,
	})
	logger.Info("successful authentication")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	wallet, err := GetWalletFromContext(r)
	if err != nil {
		logger.Error("create habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateHabitRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.CreateHabit(ctx, wallet, &service.CreateHabitRequest{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Goal:            req.Goal,
		PositiveActions: req.PositiveActions,
		NegativeActions: req.NegativeActions,
		IsPreset:        req.IsPreset,
	})
	if err != nil {
		switch {
		case isValidationError(err), errors.Is(err, errorvalues.ErrInvalidActionPoints):
			logger.Error("create habit error: invalid habit payload")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit payload", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create habit error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create habit: user doesn't exists", nil)
		case errors.Is(err, errorvalues.ErrStorageTimeout):
			logger.Error("create habit error: storage timeout")
			httputil.WriteRetryAfter(w, "1")
		default:
			logger.Error("create habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created")
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	wallet, err := GetWalletFromContext(r)
	if err != nil {
		logger.Error("get habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	habits, err := s.habitsService.GetUserHabits(ctx, wallet, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrStorageTimeout) {
			logger.Error("getting habits list error: storage timeout")
			httputil.WriteRetryAfter(w, "1")
			return
		}
		logger.Error("getting habits list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting habits list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Habits: habits,
	})
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	wallet, err := GetWalletFromContext(r)
	if err != nil {
		logger.Error("get habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, id, wallet)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get habit error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrStorageTimeout):
			logger.Error("get habit error: storage timeout")
			httputil.WriteRetryAfter(w, "1")
		default:
			logger.Error("get habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	wallet, err := GetWalletFromContext(r)
	if err != nil {
		logger.Error("habit deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("habit deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.habitsService.DeleteHabit(ctx, id, wallet)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound):
			logger.Error("habit deletion error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("habit deletion error: habit has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("habit deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting habit", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit deleted")
}

func (s *Server) RecordCheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	wallet, err := GetWalletFromContext(r)
	if err != nil {
		logger.Error("check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("check-in error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req RecordCheckInRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("check-in error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.checkInService.RecordCheckIn(ctx, wallet, &service.RecordCheckInRequest{
		HabitID:     habitID,
		ActionType:  entity.ActionType(req.ActionType),
		ActionName:  req.ActionName,
		Value:       req.Value,
		Comment:     req.Comment,
		BasePoints:  req.BasePoints,
		TxSignature: req.TxSignature,
	})
	if err != nil {
		switch {
		case isValidationError(err):
			logger.Error("check-in error: invalid payload")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid check-in payload", err)
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("check-in error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("check-in error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrStorageTimeout):
			logger.Error("check-in error: storage timeout")
			httputil.WriteRetryAfter(w, "1")
		default:
			logger.Error("check-in error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while recording check-in", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"log":            result.Log,
		"points_earned":  result.PointsEarned,
		"current_streak": result.CurrentStreak,
		"longest_streak": result.LongestStreak,
	})
	logger.Info("check-in recorded",
		slog.Int("points_earned", result.PointsEarned),
		slog.Int("current_streak", result.CurrentStreak))
}

func (s *Server) GetLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	wallet, err := GetWalletFromContext(r)
	if err != nil {
		logger.Error("get logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var habitID *uuid.UUID
	if raw := r.URL.Query().Get("habit_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Error("get logs error: invalid habit_id query param")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit_id query param", nil)
			return
		}
		habitID = &id
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 200 {
		limit = 50
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	logs, err := s.checkInService.GetLogs(ctx, wallet, habitID, limit)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStorageTimeout) {
			logger.Error("get logs error: storage timeout")
			httputil.WriteRetryAfter(w, "1")
			return
		}
		logger.Error("get logs error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting logs", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"logs": logs})
	logger.Info("logs provided")
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	kind := service.LeaderboardKind(r.URL.Query().Get("type"))
	if kind == "" {
		kind = service.LeaderboardPoints
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}
	// Caller rank is best effort: the endpoint is public, the token optional
	var callerWallet string
	if tokenString, err := GetTokenFromHeader(r); err == nil {
		if claims, err := s.jwtService.ParseToken(tokenString); err == nil {
			callerWallet = claims.WalletAddress
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	board, err := s.leaderboardService.GetLeaderboard(ctx, kind, limit, callerWallet)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidLeaderboardKind):
			logger.Error("get leaderboard error: unknown type")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown leaderboard type", nil)
		case errors.Is(err, errorvalues.ErrStorageTimeout):
			logger.Error("get leaderboard error: storage timeout")
			httputil.WriteRetryAfter(w, "1")
		default:
			logger.Error("get leaderboard error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building leaderboard", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, board)
	logger.Info("leaderboard provided", slog.String("type", string(kind)))
}
