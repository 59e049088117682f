package model

// Event represents a service event type used for log decoration.
type Event string

// All logged service events.
const (
	EventLiveGameFound    Event = "LIVE_GAME_FOUND"
	EventLiveGameAbsent   Event = "LIVE_GAME_ABSENT"
	EventCacheHit         Event = "CACHE_HIT"
	EventCacheSweep       Event = "CACHE_SWEEP"
	EventPlayerDiscovered Event = "PLAYER_DISCOVERED"
	EventUpstreamFailure  Event = "UPSTREAM_FAILURE"
	EventFeedOpened       Event = "FEED_OPENED"
	EventFeedClosed       Event = "FEED_CLOSED"
)

// String returns the string representation of an Event.
func (e Event) String() string {
	return string(e)
}
