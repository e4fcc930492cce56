package service

import (
	"context"

	"league-tracker/internal/domain"
	"league-tracker/internal/riot"
)

// RiotAPI is the remote game-data surface the services consume.
// Satisfied by *riot.Client.
type RiotAPI interface {
	SummonerByName(ctx context.Context, name, platform string) (*riot.Summoner, error)
	MatchIDs(ctx context.Context, puuid, platform string, queueID riot.QueueID, limit, page int) ([]string, error)
	MatchByID(ctx context.Context, matchID, platform string) (*riot.Match, error)
	LeagueEntries(ctx context.Context, summonerID, platform string) ([]riot.LeagueEntry, error)
}

// LeaderboardStore is the persistence port for leaderboard rows.
// Satisfied by *repository.LeaderboardRepository.
type LeaderboardStore interface {
	Upsert(ctx context.Context, entry domain.LeaderboardEntry) error
	List(ctx context.Context) ([]domain.LeaderboardEntry, error)
}
