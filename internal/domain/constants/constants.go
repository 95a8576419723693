package constants

// Pub/Sub providers accepted in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// HeaderRequestID carries the originating request ID on pushed events.
const HeaderRequestID = "X-Request-ID"
