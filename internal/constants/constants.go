// Package constants defines the Riot API endpoints, client identifiers and
// default timeout/interval values used throughout the live game service.
package constants

import "time"

const (
	// RiotBaseURLTemplate is the Riot API base URL. The single %s is replaced
	// by a platform host ("na1") or a regional route ("americas").
	RiotBaseURLTemplate = "https://%s.api.riotgames.com"
	// SpectatorActiveGamePath is the spectator-v5 current game endpoint.
	SpectatorActiveGamePath = "/lol/spectator/v5/active-games/by-summoner/%s"
	// AccountByPuuidPath is the account-v1 lookup endpoint.
	AccountByPuuidPath = "/riot/account/v1/accounts/by-puuid/%s"
	// RiotTokenHeader carries the API key.
	RiotTokenHeader = "X-Riot-Token"
)

// DefaultUserAgent is the user-agent string used for API requests.
const DefaultUserAgent = "livegame-go/1.0 (+https://github.com/Guliveer/livegame-go)"

const (
	// DefaultHTTPTimeout is the default timeout for upstream HTTP requests.
	DefaultHTTPTimeout = 10 * time.Second
	// DefaultMaxRetries is the default number of retries for upstream requests.
	DefaultMaxRetries = 2
	// DefaultRateLimit is the sustained upstream request rate (per second).
	// A development key allows 20 requests every second.
	DefaultRateLimit = 20
	// DefaultRateBurst is the upstream token bucket size.
	DefaultRateBurst = 20
	// MaxResponseBytes caps upstream response bodies.
	MaxResponseBytes = 1 << 20
)

const (
	// DefaultLiveCacheTTL is how long an assembled live game is served from cache.
	DefaultLiveCacheTTL = 60 * time.Second
	// DefaultLiveCacheSweepInterval is the interval between expired-entry sweeps.
	DefaultLiveCacheSweepInterval = 30 * time.Second
	// DefaultLiveFetchTimeout bounds one shared upstream fetch and enrichment.
	DefaultLiveFetchTimeout = 30 * time.Second
	// DefaultLiveFeedInterval is how often a websocket live feed re-polls.
	DefaultLiveFeedInterval = 30 * time.Second
	// DefaultGracefulShutdownTimeout is the timeout for graceful HTTP server shutdown.
	DefaultGracefulShutdownTimeout = 5 * time.Second
)

const (
	// RankedSoloQueueID is the queue whose games feed the historical stats.
	RankedSoloQueueID = 420
	// DefaultStatsCutoff is the start of the historical stats window
	// (season 14 split 3).
	DefaultStatsCutoff = "2024-09-25T12:00:00Z"
)
