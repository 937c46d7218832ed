// @title Habit-staking API
// @description API for the habit-staking backend: habits, check-ins, bets and settlement
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benW3ART/habits/internal/api"
	"github.com/benW3ART/habits/internal/cache"
	"github.com/benW3ART/habits/internal/escrow"
	"github.com/benW3ART/habits/internal/repository"
	"github.com/benW3ART/habits/internal/service"
	"github.com/benW3ART/habits/internal/signature"
	"github.com/benW3ART/habits/pkg/cleanup"
	"github.com/benW3ART/habits/pkg/config"
	jwtservice "github.com/benW3ART/habits/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	loc, err := time.LoadLocation(cfg.GetString("REFERENCE_TIMEZONE"))
	if err != nil {
		loc = time.UTC
	}
	now := time.Now

	usersRepo := repository.NewUsersRepo(&dbCfg)
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	logsRepo := repository.NewLogsRepo(&dbCfg)
	streaksRepo := repository.NewStreaksRepo(&dbCfg)
	pointsRepo := repository.NewPointsRepo(&dbCfg)
	betsRepo := repository.NewBetsRepo(&dbCfg)

	leaderboardCache := cache.New(&cache.RedisCfg{
		Address:  cfg.GetString("REDIS_ADDRESS"),
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	}, cfg.GetDuration("LEADERBOARD_CACHE_TTL", time.Minute*5))
	cleanup.Register(&cleanup.Job{Name: "leaderboard cache", F: leaderboardCache.Close})

	escrowClient := escrow.NewClient(cfg.GetString("ESCROW_ADDRESS"), cfg.GetString("ESCROW_TOKEN"))
	verifier := signature.NewVerifier(cfg.GetString("SIGNATURE_VERIFIER_ADDRESS"))

	userService := service.NewUserService(usersRepo)
	habitsService := service.NewHabitsService(habitsRepo, usersRepo, streaksRepo, logsRepo, pointsRepo, now)
	checkInService := service.NewCheckInService(habitsRepo, usersRepo, logsRepo, streaksRepo, pointsRepo, now, loc)
	betsService := service.NewBetsService(betsRepo, usersRepo, habitsRepo, logsRepo, now)
	settlementService := service.NewSettlementService(betsRepo, usersRepo, logsRepo, pointsRepo, now)
	leaderboardService := service.NewLeaderboardService(pointsRepo, streaksRepo, leaderboardCache)

	sweepInterval := cfg.GetDuration("RESOLUTION_SWEEP_INTERVAL", time.Hour)
	scheduler := service.NewResolutionScheduler(
		betsRepo, usersRepo, logsRepo,
		settlementService, escrowClient,
		now, sweepInterval, nil,
	)
	if err = scheduler.Start(); err != nil {
		log.Fatal("Scheduler error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{Name: "resolution scheduler", F: scheduler.Stop})

	serv := api.New(&api.ServicesList{
		UserService:        userService,
		HabitsService:      habitsService,
		CheckInService:     checkInService,
		BetsService:        betsService,
		SettlementService:  settlementService,
		LeaderboardService: leaderboardService,
		SignatureVerifier:  verifier,
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		cleanup.CleanUp()
		os.Exit(0)
	}()

	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
