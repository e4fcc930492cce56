package service

import (
	"context"
	"fmt"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/region"
	"league-tracker/internal/riot"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type MatchService struct {
	api    RiotAPI
	store  LeaderboardStore
	logger zerolog.Logger
}

func NewMatchService(api RiotAPI, store LeaderboardStore, logger zerolog.Logger) *MatchService {
	return &MatchService{api: api, store: store, logger: logger}
}

// MatchOptions carries the optional query knobs of a match-history
// request. A nil QueueID means no queue filter was supplied, which also
// disables the leaderboard side effect.
type MatchOptions struct {
	Limit   int
	Page    int
	QueueID *riot.QueueID
}

// GetMatches runs the match-statistics chain: resolve the summoner,
// list recent match ids, fan out over the details and extract the
// summoner's per-match metrics. When an explicit queue filter matches one
// of the summoner's ranked entries, the leaderboard row is refreshed as a
// side effect; a failure there never fails the request.
func (s *MatchService) GetMatches(ctx context.Context, summonerName, summonerRegion string, opts MatchOptions) ([]domain.MatchMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	jobID, _ := gonanoid.New()
	logger := s.logger.With().
		Str("job_id", jobID).
		Str("summoner_name", summonerName).
		Str("summoner_region", summonerRegion).
		Logger()

	if !region.IsValid(summonerRegion) {
		return nil, ErrInvalidRegion
	}

	summoner, err := s.api.SummonerByName(ctx, summonerName, summonerRegion)
	if err != nil {
		logger.Error().Err(err).Msg("failed to resolve summoner")
		return nil, fmt.Errorf("%w: %v", ErrSummonerNotFound, err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = constants.DefaultMatchLimit
	}
	page := opts.Page
	if page <= 0 {
		page = constants.DefaultMatchPage
	}
	queueFilter := riot.QueueAll
	if opts.QueueID != nil {
		queueFilter = *opts.QueueID
	}

	ids, err := s.api.MatchIDs(ctx, summoner.Puuid, summonerRegion, queueFilter, limit, page)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list recent matches")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	logger.Debug().Int("match_count", len(ids)).Msg("fetching match details")

	stats := collectStats(ctx, s.api, logger, ids, summoner.Puuid, summonerRegion)

	metrics := make([]domain.MatchMetrics, 0, len(stats))
	for _, p := range stats {
		metrics = append(metrics, domain.MatchMetrics{
			ChampionUsed:     p.champion,
			Win:              p.win,
			KDA:              p.kda(),
			CSPerMinute:      p.csPerMinute,
			Kills:            p.kills,
			Assists:          p.assists,
			FirstSpellUsage:  p.spellCasts[0],
			SecondSpellUsage: p.spellCasts[1],
			ThirdSpellUsage:  p.spellCasts[2],
			FourthSpellUsage: p.spellCasts[3],
			Runes:            p.runes,
		})
	}

	s.refreshLeaderboard(ctx, logger, summoner, summonerRegion, opts.QueueID)

	logger.Info().Int("extracted", len(metrics)).Int("requested", len(ids)).Msg("match metrics computed")
	return metrics, nil
}

// refreshLeaderboard persists the summoner's standing when the requested
// queue matches one of their ranked entries. The write is awaited but its
// outcome is not surfaced to the caller.
func (s *MatchService) refreshLeaderboard(ctx context.Context, logger zerolog.Logger, summoner *riot.Summoner, summonerRegion string, queueID *riot.QueueID) {
	entries, err := s.api.LeagueEntries(ctx, summoner.ID, summonerRegion)
	if err != nil {
		logger.Warn().Err(err).Msg("skipping leaderboard refresh, league entries fetch failed")
		return
	}

	if queueID == nil {
		return
	}

	entry, ok := matchQueueEntry(entries, *queueID)
	if !ok {
		return
	}

	err = s.store.Upsert(ctx, domain.LeaderboardEntry{
		SummonerName:   summoner.Name,
		SummonerRegion: summonerRegion,
		SummonerID:     summoner.ID,
		LeaguePoints:   entry.LeaguePoints,
		WinRate:        winRateFloored(entry.Wins, entry.Losses),
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to refresh leaderboard entry")
	}
}

// matchQueueEntry picks the league entry whose queue type maps to the
// requested queue id.
func matchQueueEntry(entries []riot.LeagueEntry, queueID riot.QueueID) (riot.LeagueEntry, bool) {
	for _, e := range entries {
		if q, ok := riot.QueueForType(e.QueueType); ok && q == queueID {
			return e, true
		}
	}
	return riot.LeagueEntry{}, false
}
