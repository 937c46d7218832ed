package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/bytedance/sonic"

	errorvalues "github.com/benW3ART/habits/internal/error_values"
	"github.com/benW3ART/habits/internal/repository"
	"github.com/benW3ART/habits/pkg/entity"
)

const (
	// Rankings are derived from the ledger, never stored; the full scan is
	// bounded and the result cached
	leaderboardScanLimit = 1000

	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 100
)

// LeaderboardCacheI is an optional TTL cache over the derived rankings.
// Entries expire rather than reconcile: the ledger stays the only source of
// truth and a stale ranking self-heals on the next refresh.
type LeaderboardCacheI interface {
	GetBytes(ctx context.Context, key string) ([]byte, bool)
	SetBytes(ctx context.Context, key string, b []byte)
}

type LeaderboardService struct {
	pointsRepo  repository.PointsRepositoryI
	streaksRepo repository.StreaksRepositoryI
	cache       LeaderboardCacheI
}

// NewLeaderboardService accepts a nil cache; rankings are then always
// computed from storage.
func NewLeaderboardService(
	pointsRepo repository.PointsRepositoryI,
	streaksRepo repository.StreaksRepositoryI,
	cache LeaderboardCacheI,
) *LeaderboardService {
	if pointsRepo == nil || streaksRepo == nil {
		log.Fatal("provided nil repos to leaderboard service")
	}
	return &LeaderboardService{
		pointsRepo:  pointsRepo,
		streaksRepo: streaksRepo,
		cache:       cache,
	}
}

func (ls *LeaderboardService) ranking(ctx context.Context, kind LeaderboardKind) ([]entity.LeaderboardEntry, error) {
	cacheKey := "leaderboard:" + string(kind)
	if ls.cache != nil {
		if b, ok := ls.cache.GetBytes(ctx, cacheKey); ok {
			var cached []entity.LeaderboardEntry
			if err := sonic.Unmarshal(b, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var entries []entity.LeaderboardEntry
	var err error
	switch kind {
	case LeaderboardPoints:
		entries, err = ls.pointsRepo.TotalsByUser(ctx, leaderboardScanLimit)
	case LeaderboardStreaks:
		entries, err = ls.streaksRepo.MaxCurrentByUser(ctx, leaderboardScanLimit)
	default:
		return nil, errorvalues.ErrInvalidLeaderboardKind
	}
	if err != nil {
		return nil, errors.New("leaderboard repository error: " + err.Error())
	}

	if ls.cache != nil {
		if b, err := sonic.Marshal(entries); err == nil {
			ls.cache.SetBytes(ctx, cacheKey, b)
		}
	}
	return entries, nil
}

func (ls *LeaderboardService) GetLeaderboard(ctx context.Context, kind LeaderboardKind, limit int, callerWallet string) (*Leaderboard, error) {
	if limit < 1 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}
	entries, err := ls.ranking(ctx, kind)
	if err != nil {
		return nil, err
	}

	result := Leaderboard{
		Kind:    kind,
		Entries: entries,
	}
	if callerWallet != "" {
		for i := range entries {
			if strings.EqualFold(entries[i].WalletAddress, callerWallet) {
				caller := entries[i]
				result.CallerRank = &caller
				break
			}
		}
	}
	if len(result.Entries) > limit {
		result.Entries = result.Entries[:limit]
	}
	return &result, nil
}
