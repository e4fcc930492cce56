package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// DefaultMatchLimit is the page size used when a request does not ask
	// for an explicit match count.
	DefaultMatchLimit = 10
	DefaultMatchPage  = 1

	// SummaryMatchWindow is the fixed divisor applied to cross-match sums in
	// the summoner summary. It stays 10 even when fewer matches survive
	// extraction, which matches the values already stored downstream.
	SummaryMatchWindow = 10
)
