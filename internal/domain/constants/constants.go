// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Pub/Sub providers accepted by the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Credential schemes accepted by the auth.scheme setting.
const (
	AuthSchemeEncoded = "encoded"
	AuthSchemeJWT     = "jwt"
)

// Request headers read by the API.
const (
	HeaderTimezone = "X-Timezone"
)
