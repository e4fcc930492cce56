package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"league-tracker/internal/domain"
	"league-tracker/internal/riot"
	"league-tracker/internal/service"

	"github.com/rs/zerolog"
)

// MatchStats and friends are the service surface the routes call into.
// Satisfied by the concrete services in internal/service.
type MatchStats interface {
	GetMatches(ctx context.Context, summonerName, summonerRegion string, opts service.MatchOptions) ([]domain.MatchMetrics, error)
}

type SummaryStats interface {
	GetSummary(ctx context.Context, summonerName, summonerRegion string, queueID *riot.QueueID) (*domain.SummonerSummary, error)
}

type LeaderboardRanks interface {
	GetRanks(ctx context.Context, summonerName, summonerRegion string) (*domain.LeaderboardRanks, error)
}

type Server struct {
	matches     MatchStats
	summaries   SummaryStats
	leaderboard LeaderboardRanks
	logger      zerolog.Logger
}

func New(matches MatchStats, summaries SummaryStats, leaderboard LeaderboardRanks, logger zerolog.Logger) *Server {
	return &Server{matches: matches, summaries: summaries, leaderboard: leaderboard, logger: logger}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /matches/{summonerName}/{summonerRegion}", s.getMatches)
	mux.HandleFunc("GET /summaries/{summonerName}/{summonerRegion}", s.getSummary)
	mux.HandleFunc("GET /leaderboard/{summonerName}/{summonerRegion}", s.getLeaderboardRanks)
	return mux
}

func (s *Server) getMatches(w http.ResponseWriter, r *http.Request) {
	opts := service.MatchOptions{}

	var badParam bool
	opts.Limit, badParam = intQuery(r, "limit")
	if badParam {
		writeError(w, http.StatusBadRequest, "limit must be numeric")
		return
	}
	opts.Page, badParam = intQuery(r, "page")
	if badParam {
		writeError(w, http.StatusBadRequest, "page must be numeric")
		return
	}
	opts.QueueID, badParam = queueQuery(r)
	if badParam {
		writeError(w, http.StatusBadRequest, "queueId must be numeric")
		return
	}

	metrics, err := s.matches.GetMatches(r.Context(),
		r.PathValue("summonerName"), r.PathValue("summonerRegion"), opts)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, metrics)
}

func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	queueID, badParam := queueQuery(r)
	if badParam {
		writeError(w, http.StatusBadRequest, "queueId must be numeric")
		return
	}

	summary, err := s.summaries.GetSummary(r.Context(),
		r.PathValue("summonerName"), r.PathValue("summonerRegion"), queueID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) getLeaderboardRanks(w http.ResponseWriter, r *http.Request) {
	ranks, err := s.leaderboard.GetRanks(r.Context(),
		r.PathValue("summonerName"), r.PathValue("summonerRegion"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ranks)
}

func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRegion):
		writeError(w, http.StatusBadGateway, "Invalid region")
	case errors.Is(err, service.ErrSummonerNotFound):
		writeError(w, http.StatusNotFound, "Cannot retrieve details from the summoner, please contact to support or try again later.")
	case errors.Is(err, service.ErrUpstream):
		writeError(w, http.StatusBadGateway, "Cannot retrieve data from the game API, please contact to support or try again later.")
	case errors.Is(err, service.ErrNotInLeaderboard):
		writeError(w, http.StatusNotFound, "User not found in leaderboard")
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("unhandled service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{StatusCode: status, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// intQuery parses an optional numeric query parameter. The bool is true
// when the parameter is present but not numeric.
func intQuery(r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true
	}
	return v, false
}

func queueQuery(r *http.Request) (*riot.QueueID, bool) {
	raw := r.URL.Query().Get("queueId")
	if raw == "" {
		return nil, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, true
	}
	q := riot.QueueID(v)
	return &q, false
}
