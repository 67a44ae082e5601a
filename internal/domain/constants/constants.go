package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Product detail contexts
const (
	ProductContextDefault   = "default"
	ProductContextFavorites = "favorites"
)

// Placeholder identity used when the Mini App runs outside Telegram.
const (
	DevUserID        int64 = 123456789
	DevUserFirstName       = "Local"
	DevUserLastName        = "Dev"
)
