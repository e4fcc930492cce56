package service

import (
	"context"
	"errors"
	"testing"

	"league-tracker/internal/config"
	"league-tracker/internal/riot"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{BucketURL: "https://bucket"}
}

func TestGetSummaryInvalidRegion(t *testing.T) {
	svc := NewSummaryService(&fakeRiot{}, &fakeStore{}, testConfig(), zerolog.Nop())

	_, err := svc.GetSummary(context.Background(), "Faker", "narnia", nil)
	assert.ErrorIs(t, err, ErrInvalidRegion)
}

func TestGetSummarySummonerLookupFails(t *testing.T) {
	api := &fakeRiot{summonerErr: errors.New("404 not found")}
	svc := NewSummaryService(api, &fakeStore{}, testConfig(), zerolog.Nop())

	_, err := svc.GetSummary(context.Background(), "Faker", "kr", nil)
	assert.ErrorIs(t, err, ErrSummonerNotFound)
}

func TestGetSummaryLeagueFetchFails(t *testing.T) {
	api := &fakeRiot{summoner: testSummoner(), entriesErr: errors.New("503 unavailable")}
	svc := NewSummaryService(api, &fakeStore{}, testConfig(), zerolog.Nop())

	_, err := svc.GetSummary(context.Background(), "Faker", "kr", nil)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGetSummaryUnrankedSentinel(t *testing.T) {
	store := &fakeStore{}
	api := &fakeRiot{
		summoner: testSummoner(),
		entries: []riot.LeagueEntry{
			{QueueType: "RANKED_FLEX_SR", Tier: "GOLD", Rank: "I", Wins: 5, Losses: 5},
		},
	}
	svc := NewSummaryService(api, store, testConfig(), zerolog.Nop())

	// default queue is ranked solo, which has no entry here
	summary, err := svc.GetSummary(context.Background(), "Faker", "kr", nil)
	require.NoError(t, err)

	assert.Equal(t, "Unranked", summary.RankName)
	assert.Equal(t, "", summary.RankImage)
	assert.Zero(t, summary.LeaguePoints)
	assert.Zero(t, summary.Wins)
	assert.Zero(t, summary.Kills)
	assert.Zero(t, summary.CSPerMinute)
	assert.Zero(t, summary.KDA)

	assert.Empty(t, store.upserts, "unranked summoners are not persisted")
	assert.Zero(t, api.matchIDCalls, "no match fetch for unranked summoners")
}

func TestGetSummaryAggregatesOverFixedWindow(t *testing.T) {
	store := &fakeStore{}
	api := &fakeRiot{
		summoner: testSummoner(),
		matchIDs: []string{"m1", "m2", "m3"},
		matches: map[string]*riot.Match{
			"m1": simpleMatch("target", 1, 1, 2),
			"m2": simpleMatch("target", 2, 1, 2),
			"m3": simpleMatch("target", 3, 1, 2),
		},
		entries: []riot.LeagueEntry{
			{QueueType: "RANKED_SOLO_5x5", Tier: "Gold", Rank: "II", LeaguePoints: 50, Wins: 7, Losses: 3},
		},
	}
	svc := NewSummaryService(api, store, testConfig(), zerolog.Nop())

	summary, err := svc.GetSummary(context.Background(), "Faker", "kr", nil)
	require.NoError(t, err)

	// sums divide by the fixed 10-match window even with 3 matches
	assert.Equal(t, 0.6, summary.Kills)
	assert.Equal(t, 0.6, summary.Assists)
	assert.InDelta(t, 0.3, summary.Deaths, 1e-9)
	assert.Equal(t, 3.0, summary.VisionScore)
	assert.Equal(t, 0.3, summary.CSPerMinute) // 3 matches at 1.0 cs/min

	// kda from raw sums: (6+6)/3
	assert.Equal(t, 4.0, summary.KDA)

	assert.Equal(t, "Gold II", summary.RankName)
	assert.Equal(t, "https://bucket/101000-GOLD.png", summary.RankImage)
	assert.Equal(t, 50, summary.LeaguePoints)
	assert.Equal(t, 7, summary.Wins)
	assert.Equal(t, 3, summary.Losses)

	require.Len(t, store.upserts, 1)
	assert.Equal(t, 70, store.upserts[0].WinRate)
	assert.Equal(t, 50, store.upserts[0].LeaguePoints)
	assert.Equal(t, "Faker", store.upserts[0].SummonerName)
}

func TestGetSummaryZeroDeathsKDA(t *testing.T) {
	api := &fakeRiot{
		summoner: testSummoner(),
		matchIDs: []string{"m1"},
		matches:  map[string]*riot.Match{"m1": simpleMatch("target", 4, 0, 6)},
		entries: []riot.LeagueEntry{
			{QueueType: "RANKED_SOLO_5x5", Tier: "GOLD", Rank: "II", Wins: 1, Losses: 1},
		},
	}
	svc := NewSummaryService(api, &fakeStore{}, testConfig(), zerolog.Nop())

	summary, err := svc.GetSummary(context.Background(), "Faker", "kr", nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, summary.KDA)
}

func TestGetSummaryMatchListFailureAborts(t *testing.T) {
	api := &fakeRiot{
		summoner:    testSummoner(),
		matchIDsErr: errors.New("503 unavailable"),
		entries: []riot.LeagueEntry{
			{QueueType: "RANKED_SOLO_5x5", Tier: "GOLD", Rank: "II", Wins: 1, Losses: 1},
		},
	}
	svc := NewSummaryService(api, &fakeStore{}, testConfig(), zerolog.Nop())

	_, err := svc.GetSummary(context.Background(), "Faker", "kr", nil)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGetSummaryExplicitQueueFilter(t *testing.T) {
	store := &fakeStore{}
	api := &fakeRiot{
		summoner: testSummoner(),
		matchIDs: []string{"m1"},
		matches:  map[string]*riot.Match{"m1": simpleMatch("target", 1, 1, 1)},
		entries: []riot.LeagueEntry{
			{QueueType: "RANKED_SOLO_5x5", Tier: "GOLD", Rank: "II", Wins: 7, Losses: 3},
			{QueueType: "RANKED_FLEX_SR", Tier: "SILVER", Rank: "IV", LeaguePoints: 12, Wins: 2, Losses: 2},
		},
	}
	svc := NewSummaryService(api, store, testConfig(), zerolog.Nop())

	flex := riot.QueueRankedFlex
	summary, err := svc.GetSummary(context.Background(), "Faker", "kr", &flex)
	require.NoError(t, err)

	assert.Equal(t, "SILVER IV", summary.RankName)
	assert.Equal(t, 12, summary.LeaguePoints)
	require.Len(t, store.upserts, 1)
	assert.Equal(t, 50, store.upserts[0].WinRate)
}
