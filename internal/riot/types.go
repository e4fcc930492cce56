package riot

import "fmt"

// APIError is the structured error payload Riot returns on non-2xx
// responses. It is preserved verbatim so callers can log and classify it.
type APIError struct {
	Status struct {
		Message    string `json:"message"`
		StatusCode int    `json:"status_code"`
	} `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot api error %d: %s", e.Status.StatusCode, e.Status.Message)
}

// Summoner is the identity record from summoner-v4.
type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	Puuid         string `json:"puuid"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// Match is a match-v5 detail record, reduced to the fields the stats
// pipeline consumes.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	// GameDuration is milliseconds on legacy records, seconds once
	// GameEndTimestamp is present.
	GameCreation     int64         `json:"gameCreation"`
	GameDuration     int64         `json:"gameDuration"`
	GameEndTimestamp int64         `json:"gameEndTimestamp"`
	Participants     []Participant `json:"participants"`
}

type Participant struct {
	Puuid              string `json:"puuid"`
	ChampionName       string `json:"championName"`
	Win                bool   `json:"win"`
	Kills              int    `json:"kills"`
	Deaths             int    `json:"deaths"`
	Assists            int    `json:"assists"`
	TotalMinionsKilled int    `json:"totalMinionsKilled"`
	Spell1Casts        int    `json:"spell1Casts"`
	Spell2Casts        int    `json:"spell2Casts"`
	Spell3Casts        int    `json:"spell3Casts"`
	Spell4Casts        int    `json:"spell4Casts"`
	VisionScore        int    `json:"visionScore"`
	Perks              Perks  `json:"perks"`
}

type Perks struct {
	Styles []PerkStyle `json:"styles"`
}

type PerkStyle struct {
	Description string          `json:"description"`
	Style       int             `json:"style"`
	Selections  []PerkSelection `json:"selections"`
}

type PerkSelection struct {
	Perk int `json:"perk"`
}

// LeagueEntry is one ranked-queue standing from league-v4.
type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}
