package fx

import (
	"league-tracker/internal/config"
	"league-tracker/internal/database"
	"league-tracker/internal/logger"
	"league-tracker/internal/repository"
	"league-tracker/internal/riot"
	"league-tracker/internal/server"
	"league-tracker/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewLeaderboardRepository),
	// api client
	fx.Provide(riot.NewClient),
	// ports
	fx.Provide(func(c *riot.Client) service.RiotAPI { return c }),
	fx.Provide(func(r *repository.LeaderboardRepository) service.LeaderboardStore { return r }),
	// svc
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewSummaryService),
	fx.Provide(service.NewLeaderboardService),
	// server
	fx.Provide(func(m *service.MatchService, s *service.SummaryService, l *service.LeaderboardService, logger zerolog.Logger) *server.Server {
		return server.New(m, s, l, logger)
	}),
)
