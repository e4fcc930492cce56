package service

import (
	"context"
	"fmt"

	"league-tracker/internal/config"
	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/ranks"
	"league-tracker/internal/region"
	"league-tracker/internal/riot"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type SummaryService struct {
	api    RiotAPI
	store  LeaderboardStore
	cfg    *config.Config
	logger zerolog.Logger
}

func NewSummaryService(api RiotAPI, store LeaderboardStore, cfg *config.Config, logger zerolog.Logger) *SummaryService {
	return &SummaryService{api: api, store: store, cfg: cfg, logger: logger}
}

// unrankedSummary is returned whenever the summoner has no league entry
// for the requested queue. No matches are fetched and nothing persists.
func unrankedSummary() *domain.SummonerSummary {
	return &domain.SummonerSummary{RankName: "Unranked", RankImage: ""}
}

// GetSummary resolves the summoner's ranked standing for one queue and
// folds their recent-match window into cross-match averages. Sums are
// divided by the fixed window size, not by how many matches survived
// extraction; downstream consumers rely on the values staying that way.
func (s *SummaryService) GetSummary(ctx context.Context, summonerName, summonerRegion string, queueID *riot.QueueID) (*domain.SummonerSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	queue := riot.QueueRankedSolo
	if queueID != nil {
		queue = *queueID
	}

	jobID, _ := gonanoid.New()
	logger := s.logger.With().
		Str("job_id", jobID).
		Str("summoner_name", summonerName).
		Str("summoner_region", summonerRegion).
		Int("queue_id", int(queue)).
		Logger()

	if !region.IsValid(summonerRegion) {
		return nil, ErrInvalidRegion
	}

	summoner, err := s.api.SummonerByName(ctx, summonerName, summonerRegion)
	if err != nil {
		logger.Error().Err(err).Msg("failed to resolve summoner")
		return nil, fmt.Errorf("%w: %v", ErrSummonerNotFound, err)
	}

	entries, err := s.api.LeagueEntries(ctx, summoner.ID, summonerRegion)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch league entries")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	entry, ok := matchQueueEntry(entries, queue)
	if !ok {
		logger.Info().Msg("summoner unranked for requested queue")
		return unrankedSummary(), nil
	}

	ids, err := s.api.MatchIDs(ctx, summoner.Puuid, summonerRegion, queue, constants.DefaultMatchLimit, constants.DefaultMatchPage)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list recent matches")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	stats := collectStats(ctx, s.api, logger, ids, summoner.Puuid, summonerRegion)

	var kills, assists, deaths, visionScore int
	var csPerMin float64
	for _, p := range stats {
		kills += p.kills
		assists += p.assists
		deaths += p.deaths
		visionScore += p.visionScore
		csPerMin += p.csPerMinute
	}

	kda := float64(kills + assists)
	if deaths != 0 {
		kda = round2(float64(kills+assists) / float64(deaths))
	}

	err = s.store.Upsert(ctx, domain.LeaderboardEntry{
		SummonerName:   summoner.Name,
		SummonerRegion: summonerRegion,
		SummonerID:     summoner.ID,
		LeaguePoints:   entry.LeaguePoints,
		WinRate:        winRateRounded(entry.Wins, entry.Losses),
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to refresh leaderboard entry")
	}

	logger.Info().Int("extracted", len(stats)).Int("requested", len(ids)).Msg("summoner summary computed")

	const window = float64(constants.SummaryMatchWindow)
	return &domain.SummonerSummary{
		RankName:     entry.Tier + " " + entry.Rank,
		RankImage:    ranks.Image(s.cfg.BucketURL, entry.Tier),
		LeaguePoints: entry.LeaguePoints,
		Wins:         entry.Wins,
		Losses:       entry.Losses,
		Kills:        float64(kills) / window,
		Assists:      float64(assists) / window,
		Deaths:       float64(deaths) / window,
		VisionScore:  float64(visionScore) / window,
		CSPerMinute:  round2(csPerMin / window),
		KDA:          kda,
	}, nil
}
