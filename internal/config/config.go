package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/arcanaland/rummy/internal/bot"
	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/meld"
	"github.com/arcanaland/rummy/internal/solver"
)

// Config represents the application configuration
type Config struct {
	Rules  RulesSection  `toml:"rules"`
	Jokers JokersSection `toml:"jokers"`
	Search SearchSection `toml:"search"`
	Bot    bot.Weights   `toml:"bot"`
	Log    LogSection    `toml:"log"`
}

// RulesSection selects the rule variant
type RulesSection struct {
	RequireSecondSequence bool `toml:"require_second_sequence"`
	IdenticalTriplet      bool `toml:"identical_triplet"`
	NaturalWildcards      bool `toml:"natural_wildcards"`
	DistinctSuitSets      bool `toml:"distinct_suit_sets"`
	MinMeldSize           int  `toml:"min_meld_size"`
	MaxMeldSize           int  `toml:"max_meld_size"`
	HandSize              int  `toml:"hand_size"`
}

// JokersSection selects how a turned wildcard expands into jokers
type JokersSection struct {
	AltColor  bool `toml:"alt_color"`
	OneUp     bool `toml:"one_up"`
	WholeRank bool `toml:"whole_rank"`
}

// SearchSection bounds the win search
type SearchSection struct {
	NodeBudget int `toml:"node_budget"`
}

// LogSection configures logging
type LogSection struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	rules := meld.DefaultRules()
	jokers := card.DefaultJokerOptions()
	return &Config{
		Rules: RulesSection{
			RequireSecondSequence: rules.RequireSecondSequence,
			IdenticalTriplet:      rules.IdenticalTriplet,
			NaturalWildcards:      rules.NaturalWildcards,
			DistinctSuitSets:      rules.DistinctSuitSets,
			MinMeldSize:           rules.MinMeldSize,
			MaxMeldSize:           rules.MaxMeldSize,
			HandSize:              rules.HandSize,
		},
		Jokers: JokersSection{
			AltColor:  jokers.AltColor,
			OneUp:     jokers.OneUp,
			WholeRank: jokers.WholeRank,
		},
		Bot: bot.DefaultWeights(),
		Log: LogSection{Level: "warn"},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file. RUMMY_CONFIG
// overrides the XDG location.
func GetConfigFilePath() string {
	if p := os.Getenv("RUMMY_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(GetXDGConfigHome(), "rummy", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	return decodeFile(configPath)
}

func decodeFile(configPath string) (*Config, error) {
	// Missing keys keep their defaults.
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if lvl := os.Getenv("RUMMY_LOG_LEVEL"); lvl != "" {
		config.Log.Level = lvl
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return config, nil
}

// createDefaultConfig writes a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	config := Default()
	if err := Save(configPath, config); err != nil {
		return nil, err
	}

	if lvl := os.Getenv("RUMMY_LOG_LEVEL"); lvl != "" {
		config.Log.Level = lvl
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return config, nil
}

// Save writes config to path as TOML, creating its directory if needed
func Save(path string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// Validate checks value ranges that TOML decoding cannot
func (c *Config) Validate() error {
	r := c.Rules
	if r.MinMeldSize < 3 {
		return fmt.Errorf("rules.min_meld_size must be at least 3, got %d", r.MinMeldSize)
	}
	if r.MaxMeldSize < r.MinMeldSize {
		return fmt.Errorf("rules.max_meld_size (%d) is below rules.min_meld_size (%d)", r.MaxMeldSize, r.MinMeldSize)
	}
	if r.HandSize < r.MinMeldSize || r.HandSize > solver.MaxCards {
		return fmt.Errorf("rules.hand_size must be between %d and %d, got %d", r.MinMeldSize, solver.MaxCards, r.HandSize)
	}
	if c.Search.NodeBudget < 0 {
		return fmt.Errorf("search.node_budget must not be negative")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// MeldRules converts the rules section
func (c *Config) MeldRules() meld.Rules {
	return meld.Rules{
		RequireSecondSequence: c.Rules.RequireSecondSequence,
		IdenticalTriplet:      c.Rules.IdenticalTriplet,
		NaturalWildcards:      c.Rules.NaturalWildcards,
		DistinctSuitSets:      c.Rules.DistinctSuitSets,
		MinMeldSize:           c.Rules.MinMeldSize,
		MaxMeldSize:           c.Rules.MaxMeldSize,
		HandSize:              c.Rules.HandSize,
	}
}

// JokerOptions converts the jokers section
func (c *Config) JokerOptions() card.JokerOptions {
	return card.JokerOptions{
		AltColor:  c.Jokers.AltColor,
		OneUp:     c.Jokers.OneUp,
		WholeRank: c.Jokers.WholeRank,
	}
}

// Logger builds a logger at the configured level, writing to stderr
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}
