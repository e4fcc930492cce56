package domain

// RuneUsage counts how often one rune was selected in a match, resolved
// to its display name.
type RuneUsage struct {
	PerkName string `json:"perkName"`
	Count    int    `json:"count"`
}

// MatchMetrics is the per-match view of one summoner's performance.
type MatchMetrics struct {
	ChampionUsed     string      `json:"championUsed"`
	Win              bool        `json:"win"`
	KDA              string      `json:"kda"`
	CSPerMinute      float64     `json:"csPerMinute"`
	Kills            int         `json:"kills"`
	Assists          int         `json:"assists"`
	FirstSpellUsage  int         `json:"firstSpellUsage"`
	SecondSpellUsage int         `json:"secondSpellUsage"`
	ThirdSpellUsage  int         `json:"thirdSpellUsage"`
	FourthSpellUsage int         `json:"fourthSpellUsage"`
	Runes            []RuneUsage `json:"runes"`
}

// SummonerSummary combines the ranked-queue standing with averages over
// the recent-match window. Numeric fields are zero for unranked summoners.
type SummonerSummary struct {
	RankName     string  `json:"rankName"`
	RankImage    string  `json:"rankImage"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Kills        float64 `json:"kills"`
	Assists      float64 `json:"assists"`
	Deaths       float64 `json:"deaths"`
	VisionScore  float64 `json:"visionScore"`
	CSPerMinute  float64 `json:"csPerMinute"`
	KDA          float64 `json:"kda"`
}

// LeaderboardEntry is the persisted leaderboard row, keyed by
// (SummonerName, SummonerRegion).
type LeaderboardEntry struct {
	SummonerName   string `json:"summonerName"`
	SummonerRegion string `json:"summonerRegion"`
	SummonerID     string `json:"summonerId"`
	LeaguePoints   int    `json:"leaguePoints"`
	WinRate        int    `json:"winRate"`
}

// Position is a 1-based standing within the leaderboard.
type Position struct {
	Top int `json:"top"`
}

// LeaderboardRanks reports where a summoner sits under both orderings.
type LeaderboardRanks struct {
	LeaguePoints Position `json:"leaguePoints"`
	WinRate      Position `json:"winRate"`
}
