// Package constants holds provider names and other fixed identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

// Identity providers.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderLocal    = "local"
)

// Document store providers.
const (
	DocumentsProviderFirestore = "firestore"
	DocumentsProviderPostgres  = "postgres"
)

// Object store providers.
const (
	StorageProviderFirebase = "firebase"
	StorageProviderBlob     = "blob"
)

// MinPasswordLength is shared by signup and password change.
const MinPasswordLength = 6

// PlaceholderHeaderAvatar is shown in the page header when the identity has no photo.
const PlaceholderHeaderAvatar = "https://via.placeholder.com/40"
