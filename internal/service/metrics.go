package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"league-tracker/internal/domain"
	"league-tracker/internal/perks"
	"league-tracker/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// participantStats is the raw per-match extraction for the target
// summoner, shared by the match-history and summary aggregations.
type participantStats struct {
	champion    string
	win         bool
	kills       int
	deaths      int
	assists     int
	visionScore int
	spellCasts  [4]int
	csPerMinute float64
	runes       []domain.RuneUsage
}

// gameDuration derives the duration bucket used for CS/min. Legacy
// records lack gameEndTimestamp and report gameDuration in milliseconds;
// the divisor stays 3600 in both branches because downstream values were
// derived that way and must keep matching.
func gameDuration(info riot.MatchInfo) int64 {
	if info.GameEndTimestamp == 0 {
		return info.GameDuration / 3600
	}
	return (info.GameEndTimestamp - info.GameCreation) / 3600
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// csPerMinute divides total minions by the duration bucket, rounded to
// two decimals. A zero duration yields 0 instead of +Inf.
func csPerMinute(totalMinionsKilled int, duration int64) float64 {
	if duration <= 0 {
		return 0
	}
	return round2(float64(totalMinionsKilled) / float64(duration))
}

// runeHistogram tallies every rune selection across the participant's
// styles and resolves each perk id through its owning style. Output is
// ordered by ascending perk id.
func runeHistogram(styles []riot.PerkStyle) []domain.RuneUsage {
	type tally struct {
		style int
		count int
	}

	counts := make(map[int]*tally)
	for _, style := range styles {
		for _, sel := range style.Selections {
			if t, ok := counts[sel.Perk]; ok {
				t.count++
			} else {
				counts[sel.Perk] = &tally{style: style.Style, count: 1}
			}
		}
	}

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	runes := make([]domain.RuneUsage, 0, len(ids))
	for _, id := range ids {
		t := counts[id]
		runes = append(runes, domain.RuneUsage{
			PerkName: perks.RuneName(t.style, id),
			Count:    t.count,
		})
	}
	return runes
}

// extractParticipant pulls the target summoner's record out of a match.
// The second return value is false when the summoner did not play in it.
func extractParticipant(match *riot.Match, puuid string) (participantStats, bool) {
	for _, p := range match.Info.Participants {
		if p.Puuid != puuid {
			continue
		}

		duration := gameDuration(match.Info)
		return participantStats{
			champion:    p.ChampionName,
			win:         p.Win,
			kills:       p.Kills,
			deaths:      p.Deaths,
			assists:     p.Assists,
			visionScore: p.VisionScore,
			spellCasts:  [4]int{p.Spell1Casts, p.Spell2Casts, p.Spell3Casts, p.Spell4Casts},
			csPerMinute: csPerMinute(p.TotalMinionsKilled, duration),
			runes:       runeHistogram(p.Perks.Styles),
		}, true
	}
	return participantStats{}, false
}

// collectStats fans out one detail fetch per match id and joins the
// extracted stats in input order. A failed fetch or an absent participant
// drops that match; siblings are unaffected.
func collectStats(ctx context.Context, api RiotAPI, logger zerolog.Logger, ids []string, puuid, platform string) []participantStats {
	slots := make([]*participantStats, len(ids))

	g := new(errgroup.Group)
	for i, id := range ids {
		g.Go(func() error {
			match, err := api.MatchByID(ctx, id, platform)
			if err != nil {
				logger.Warn().Err(err).Str("match_id", id).Msg("skipping match, detail fetch failed")
				return nil
			}

			stats, ok := extractParticipant(match, puuid)
			if !ok {
				logger.Warn().Str("match_id", id).Msg("skipping match, summoner not among participants")
				return nil
			}
			slots[i] = &stats
			return nil
		})
	}
	_ = g.Wait()

	collected := make([]participantStats, 0, len(ids))
	for _, s := range slots {
		if s != nil {
			collected = append(collected, *s)
		}
	}
	return collected
}

func (p participantStats) kda() string {
	return fmt.Sprintf("%d/%d/%d", p.kills, p.deaths, p.assists)
}

// winRateFloored truncates the scaled ratio, as the match-history
// persistence path does.
func winRateFloored(wins, losses int) int {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return int(math.Floor(round2(float64(wins)/float64(total)) * 100))
}

// winRateRounded rounds the scaled ratio, as the summary persistence
// path does.
func winRateRounded(wins, losses int) int {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return int(math.Round(round2(float64(wins)/float64(total)) * 100))
}
