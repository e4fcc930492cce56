package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"league-tracker/internal/config"
	"league-tracker/internal/region"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Client talks to the Riot HTTP API. Remote failures come back as
// *APIError; a local programming error such as an unroutable region is a
// plain error and means the request was never sent.
type Client struct {
	apiKey      string
	client      *fasthttp.Client
	logger      zerolog.Logger
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors the application rate-limit headers Riot attaches
// to every response.
type RateLimitInfo struct {
	Limit      string    `json:"limit"`
	Count      string    `json:"count"`
	RetryAfter int       `json:"retry_after"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		apiKey: cfg.RiotAPIKey,
		logger: logger,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *Client) RateLimit() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-App-Rate-Limit")); limit != "" {
		c.rateLimit.Limit = limit
	}
	if count := string(resp.Header.Peek("X-App-Rate-Limit-Count")); count != "" {
		c.rateLimit.Count = count
	}
	if retry := string(resp.Header.Peek("Retry-After")); retry != "" {
		if val, err := strconv.Atoi(retry); err == nil {
			c.rateLimit.RetryAfter = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// SummonerByName resolves a summoner identity on the platform region.
func (c *Client) SummonerByName(ctx context.Context, name, platform string) (*Summoner, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-name/%s",
		platform, url.PathEscape(name))
	return doRequest[Summoner](ctx, c, u)
}

// MatchIDs lists recent match ids for a puuid, most recent first. The
// queue filter is skipped when queueID is QueueAll. Paging uses
// start = (page-1)*limit.
func (c *Client) MatchIDs(ctx context.Context, puuid, platform string, queueID QueueID, limit, page int) ([]string, error) {
	routing, ok := region.Route(platform)
	if !ok {
		return nil, fmt.Errorf("no routing region for platform %q", platform)
	}

	params := url.Values{}
	if queueID != QueueAll {
		params.Set("queue", strconv.Itoa(int(queueID)))
	}
	params.Set("count", strconv.Itoa(limit))
	params.Set("start", strconv.Itoa((page-1)*limit))

	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?%s",
		routing, puuid, params.Encode())

	ids, err := doRequest[[]string](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

// MatchByID fetches one match detail from the routing cluster.
func (c *Client) MatchByID(ctx context.Context, matchID, platform string) (*Match, error) {
	routing, ok := region.Route(platform)
	if !ok {
		return nil, fmt.Errorf("no routing region for platform %q", platform)
	}

	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", routing, matchID)
	return doRequest[Match](ctx, c, u)
}

// LeagueEntries fetches the ranked-queue standings for a summoner id.
func (c *Client) LeagueEntries(ctx context.Context, summonerID, platform string) ([]LeagueEntry, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-summoner/%s",
		platform, summonerID)

	entries, err := doRequest[[]LeagueEntry](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func doRequest[T any](ctx context.Context, client *Client, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	client.updateRateLimit(resp)

	if resp.StatusCode() != fasthttp.StatusOK {
		apiErr := &APIError{}
		if err := json.Unmarshal(resp.Body(), apiErr); err != nil {
			apiErr.Status.StatusCode = resp.StatusCode()
			apiErr.Status.Message = string(resp.Body())
		}
		client.logger.Error().
			Str("url", url).
			Int("status_code", apiErr.Status.StatusCode).
			Str("message", apiErr.Status.Message).
			Msg("riot api request failed")
		return nil, apiErr
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
