package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/benW3ART/habits/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	habitsService      service.HabitsServiceI
	checkInService     service.CheckInServiceI
	betsService        service.BetsServiceI
	settlementService  service.SettlementServiceI
	leaderboardService service.LeaderboardServiceI
	signatureVerifier  service.SignatureVerifierI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	HabitsService      service.HabitsServiceI
	CheckInService     service.CheckInServiceI
	BetsService        service.BetsServiceI
	SettlementService  service.SettlementServiceI
	LeaderboardService service.LeaderboardServiceI
	SignatureVerifier  service.SignatureVerifierI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		habitsService:      servicesOptions.HabitsService,
		checkInService:     servicesOptions.CheckInService,
		betsService:        servicesOptions.BetsService,
		settlementService:  servicesOptions.SettlementService,
		leaderboardService: servicesOptions.LeaderboardService,
		signatureVerifier:  servicesOptions.SignatureVerifier,
		jwtService:         servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth", s.Auth)
		r.Get("/leaderboard", s.GetLeaderboard)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits", s.GetHabits)
			r.Get("/habits/{id}", s.GetHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Post("/habits/{id}/logs", s.RecordCheckIn)
			r.Get("/logs", s.GetLogs)
			r.Post("/bets", s.CreateBet)
			r.Get("/bets", s.GetBets)
			r.Get("/bets/{id}", s.GetBet)
			r.Post("/bets/{id}/resolve", s.ResolveBet)
			r.Patch("/bets/{id}/missed-days", s.UpdateMissedDays)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}
