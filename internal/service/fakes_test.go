package service

import (
	"context"
	"errors"

	"league-tracker/internal/domain"
	"league-tracker/internal/riot"
)

type fakeRiot struct {
	summoner    *riot.Summoner
	summonerErr error

	matchIDs    []string
	matchIDsErr error

	matches  map[string]*riot.Match
	matchErr map[string]error

	entries    []riot.LeagueEntry
	entriesErr error

	summonerCalls int
	matchIDCalls  int
}

func (f *fakeRiot) SummonerByName(ctx context.Context, name, platform string) (*riot.Summoner, error) {
	f.summonerCalls++
	if f.summonerErr != nil {
		return nil, f.summonerErr
	}
	return f.summoner, nil
}

func (f *fakeRiot) MatchIDs(ctx context.Context, puuid, platform string, queueID riot.QueueID, limit, page int) ([]string, error) {
	f.matchIDCalls++
	if f.matchIDsErr != nil {
		return nil, f.matchIDsErr
	}
	return f.matchIDs, nil
}

func (f *fakeRiot) MatchByID(ctx context.Context, matchID, platform string) (*riot.Match, error) {
	if err, ok := f.matchErr[matchID]; ok {
		return nil, err
	}
	m, ok := f.matches[matchID]
	if !ok {
		return nil, errors.New("unexpected match id " + matchID)
	}
	return m, nil
}

func (f *fakeRiot) LeagueEntries(ctx context.Context, summonerID, platform string) ([]riot.LeagueEntry, error) {
	if f.entriesErr != nil {
		return nil, f.entriesErr
	}
	return f.entries, nil
}

type fakeStore struct {
	upserts []domain.LeaderboardEntry
	entries []domain.LeaderboardEntry
	listErr error
	saveErr error
}

func (f *fakeStore) Upsert(ctx context.Context, entry domain.LeaderboardEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.upserts = append(f.upserts, entry)
	return nil
}

func (f *fakeStore) List(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

// simpleMatch builds a one-participant match detail for puuid with the
// given kill line.
func simpleMatch(puuid string, kills, deaths, assists int) *riot.Match {
	return &riot.Match{
		Info: riot.MatchInfo{
			GameCreation: 1000,
			GameDuration: 600000,
			Participants: []riot.Participant{
				{
					Puuid:              puuid,
					ChampionName:       "Lux",
					Win:                true,
					Kills:              kills,
					Deaths:             deaths,
					Assists:            assists,
					TotalMinionsKilled: 166,
					VisionScore:        10,
				},
			},
		},
	}
}
