package service

import "errors"

var (
	// ErrInvalidRegion means the request region is outside the supported
	// platform set. No remote call is made.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrSummonerNotFound means the summoner identity lookup failed.
	ErrSummonerNotFound = errors.New("summoner not found")

	// ErrUpstream means a match-list or league-entries fetch failed and the
	// request chain cannot continue.
	ErrUpstream = errors.New("upstream request failed")

	// ErrNotInLeaderboard means no leaderboard row exists for the summoner.
	ErrNotInLeaderboard = errors.New("summoner not in leaderboard")
)
