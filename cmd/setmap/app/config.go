package app

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/setmap/pkg/constants"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files. Command-line flags override
// these values after parsing.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Import configuration
	Generations []int
	SetsURL     string
	StatsURL    string
	Timeout     time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. Environment variables (SETMAP_*)
//  3. .env files
//  4. Config file (~/.setmap.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("SETMAP")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".setmap")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	gens, err := ParseGenerations(viper.GetString("gens"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Import configuration
		Generations: gens,
		SetsURL:     viper.GetString("sets_url"),
		StatsURL:    viper.GetString("stats_url"),
		Timeout:     viper.GetDuration("timeout"),

		// Logging configuration
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.Timeout == 0 {
		config.Timeout = constants.DefaultHTTPTimeout
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags so flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// ParseGenerations parses a generation selector like "9", "8,9", or "1-3,7".
// An empty selector means every supported generation.
func ParseGenerations(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi := part, part
		if before, after, found := strings.Cut(part, "-"); found {
			lo, hi = strings.TrimSpace(before), strings.TrimSpace(after)
		}

		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("invalid generation %q", part)
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("invalid generation %q", part)
		}
		if start > end {
			return nil, fmt.Errorf("invalid generation range %q", part)
		}

		for gen := start; gen <= end; gen++ {
			if gen < constants.FirstGeneration || gen > constants.LastGeneration {
				return nil, fmt.Errorf("generation %d is out of range (%d-%d)",
					gen, constants.FirstGeneration, constants.LastGeneration)
			}
			seen[gen] = true
		}
	}

	gens := make([]int, 0, len(seen))
	for gen := range seen {
		gens = append(gens, gen)
	}
	sort.Ints(gens)
	return gens, nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
