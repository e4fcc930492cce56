package repository

import (
	"context"
	"database/sql"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type LeaderboardRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewLeaderboardRepository(db *sql.DB, logger zerolog.Logger) *LeaderboardRepository {
	return &LeaderboardRepository{db: db, logger: logger}
}

// Upsert writes a full-replace row for (summoner_name, summoner_region).
// Last writer wins; there is no read-before-write merge.
func (r *LeaderboardRepository) Upsert(ctx context.Context, entry domain.LeaderboardEntry) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leaderboard (summoner_name, summoner_region, summoner_id, league_points, win_rate)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (summoner_name, summoner_region) DO UPDATE SET
			summoner_id = excluded.summoner_id,
			league_points = excluded.league_points,
			win_rate = excluded.win_rate`,
		entry.SummonerName, entry.SummonerRegion, entry.SummonerID, entry.LeaguePoints, entry.WinRate,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("summoner_name", entry.SummonerName).
			Str("summoner_region", entry.SummonerRegion).
			Msg("failed to upsert leaderboard entry")
		return err
	}

	r.logger.Debug().
		Str("summoner_name", entry.SummonerName).
		Str("summoner_region", entry.SummonerRegion).
		Int("league_points", entry.LeaguePoints).
		Int("win_rate", entry.WinRate).
		Msg("leaderboard entry upserted")
	return nil
}

// List returns every leaderboard row. The ranking consumer sorts in memory.
func (r *LeaderboardRepository) List(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT summoner_name, summoner_region, summoner_id, league_points, win_rate
		FROM leaderboard`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list leaderboard entries")
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.SummonerName, &e.SummonerRegion, &e.SummonerID, &e.LeaguePoints, &e.WinRate); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
