package config

// Defaults used when neither config.toml nor the environment set a value
const (
	// DefaultPort is the port the server listens on when PORT is unset
	DefaultPort = 5000

	// DefaultGreeting is the body returned for GET /
	DefaultGreeting = "Hello, World! This is a simple Node.js web app."

	// DefaultLogRotation rotates the log file once a day
	DefaultLogRotation = "@daily"

	// DefaultConfigFile is read from the working directory if it exists
	DefaultConfigFile = "config.toml"
)

// Environment names
const (
	ProductionEnv  = "production"
	DevelopmentEnv = "development"
)
