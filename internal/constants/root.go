package constants

const (
	// AppName is used for the config directory, keyring service name and
	// Postgres schema/table prefix.
	AppName = "goalkeeper"

	// DefaultConfigPath is the default location of the state document.
	DefaultConfigPath = "~/.config/goalkeeper/goalkeeper.json"

	// StateKey is the fixed key the full state document is stored under in
	// the SQLite and Postgres blob stores.
	StateKey = "goalkeeper_data_v1"

	// KeyringAPIKeyUser is the keyring account name for the scoring API key.
	KeyringAPIKeyUser = "api-key"

	// KeyringDBUser is the keyring account name for the Postgres connection string.
	KeyringDBUser = "db-connection"

	// DefaultUserName and DefaultUserBio seed a fresh profile.
	DefaultUserName = "Student User"
	DefaultUserBio  = "Aspiring Achiever"
)
