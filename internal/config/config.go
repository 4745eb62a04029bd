package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all configuration settings for the application
type Config struct {
	// Port is the TCP port for the web server
	Port int `toml:"port"`

	// Host is the interface to bind, empty means all interfaces
	Host string `toml:"host"`

	// Greeting is the body served on the root path
	Greeting string `toml:"greeting"`

	// LogDir enables file logging when set
	LogDir string `toml:"log_dir"`

	// LogRotation is a cron expression for rotating the log file
	LogRotation string `toml:"log_rotation"`

	// Environment is either production or development
	Environment string `toml:"environment"`
}

func defaultConfig() *Config {
	return &Config{
		Port:        DefaultPort,
		Greeting:    DefaultGreeting,
		LogRotation: DefaultLogRotation,
		Environment: ProductionEnv,
	}
}

// Load loads the configuration from config.toml and environment variables
func Load() (*Config, error) {
	return LoadFile(DefaultConfigFile)
}

// LoadFile is Load with an explicit config file path. A missing file is not an error.
func LoadFile(configPath string) (*Config, error) {
	config := defaultConfig()

	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	// PORT follows the usual PaaS convention: an empty value counts as unset
	if port := os.Getenv("PORT"); port != "" {
		p, err := ParsePort(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		config.Port = p
	}

	if host := os.Getenv("HOST"); host != "" {
		config.Host = host
	}

	if greeting := os.Getenv("GREETING"); greeting != "" {
		config.Greeting = greeting
	}

	if logDir := os.Getenv("LOG_DIR"); logDir != "" {
		config.LogDir = logDir
	}

	if rotation := os.Getenv("LOG_ROTATION"); rotation != "" {
		config.LogRotation = rotation
	}

	if env := os.Getenv("GREETER_ENV"); env != "" {
		config.Environment = env
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values that cannot be fixed up silently
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", c.Port)
	}
	if c.Greeting == "" {
		return fmt.Errorf("greeting must not be empty")
	}
	switch c.Environment {
	case ProductionEnv, DevelopmentEnv:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	return nil
}

// ParsePort parses a decimal TCP port number
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("port %q is not a number", s)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range (1-65535)", port)
	}
	return port, nil
}

// ListenAddr returns the host:port pair passed to the listener
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL is the address announced in the startup log
func (c *Config) URL() string {
	host := c.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Port))
}

// IsDevelopment reports whether debug output should be enabled
func (c *Config) IsDevelopment() bool {
	return c.Environment == DevelopmentEnv
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Port: %d", c.Port))
	parts = append(parts, fmt.Sprintf("Host: %s", c.Host))
	parts = append(parts, fmt.Sprintf("LogDir: %s", c.LogDir))
	parts = append(parts, fmt.Sprintf("LogRotation: %s", c.LogRotation))
	parts = append(parts, fmt.Sprintf("Environment: %s", c.Environment))
	return strings.Join(parts, ", ")
}
