// Package constants holds shared literal values that cross layer boundaries,
// so that config, infra, and delivery agree on the exact strings.
package constants

// Deployment environments, matched against config.Env.Env.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider names, matched against config.PubSub.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
