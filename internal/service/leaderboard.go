package service

import (
	"context"
	"sort"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type LeaderboardService struct {
	store  LeaderboardStore
	logger zerolog.Logger
}

func NewLeaderboardService(store LeaderboardStore, logger zerolog.Logger) *LeaderboardService {
	return &LeaderboardService{store: store, logger: logger}
}

// GetRanks reports the summoner's 1-based position in the leaderboard
// under both orderings, league points and win rate, ascending.
func (s *LeaderboardService) GetRanks(ctx context.Context, summonerName, summonerRegion string) (*domain.LeaderboardRanks, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	entries, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load leaderboard")
		return nil, err
	}

	if !containsSummoner(entries, summonerName, summonerRegion) {
		return nil, ErrNotInLeaderboard
	}

	byLeaguePoints := make([]domain.LeaderboardEntry, len(entries))
	copy(byLeaguePoints, entries)
	sort.SliceStable(byLeaguePoints, func(i, j int) bool {
		return byLeaguePoints[i].LeaguePoints < byLeaguePoints[j].LeaguePoints
	})

	byWinRate := make([]domain.LeaderboardEntry, len(entries))
	copy(byWinRate, entries)
	sort.SliceStable(byWinRate, func(i, j int) bool {
		return byWinRate[i].WinRate < byWinRate[j].WinRate
	})

	return &domain.LeaderboardRanks{
		LeaguePoints: domain.Position{Top: indexOfSummoner(byLeaguePoints, summonerName, summonerRegion) + 1},
		WinRate:      domain.Position{Top: indexOfSummoner(byWinRate, summonerName, summonerRegion) + 1},
	}, nil
}

func containsSummoner(entries []domain.LeaderboardEntry, name, region string) bool {
	return indexOfSummoner(entries, name, region) >= 0
}

func indexOfSummoner(entries []domain.LeaderboardEntry, name, region string) int {
	for i, e := range entries {
		if e.SummonerName == name && e.SummonerRegion == region {
			return i
		}
	}
	return -1
}
