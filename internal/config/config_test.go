package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/rummy/internal/bot"
	"github.com/arcanaland/rummy/internal/meld"
	"github.com/arcanaland/rummy/internal/solver"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("RUMMY_CONFIG", "")
	t.Setenv("RUMMY_LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "rummy", "config.toml")
	assert.Equal(t, path, GetConfigFilePath())
	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rummy.toml")
	t.Setenv("RUMMY_CONFIG", path)
	t.Setenv("RUMMY_LOG_LEVEL", "")

	data := `
[rules]
require_second_sequence = true

[bot]
joker = 500
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Rules.RequireSecondSequence)
	assert.True(t, cfg.Rules.NaturalWildcards)
	assert.Equal(t, 13, cfg.Rules.HandSize)
	assert.Equal(t, 500, cfg.Bot.Joker)
	assert.Equal(t, bot.DefaultWeights().Adjacent, cfg.Bot.Adjacent)

	rules := cfg.MeldRules()
	want := meld.DefaultRules()
	want.RequireSecondSequence = true
	assert.Equal(t, want, rules)
}

func TestLogLevelOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rummy.toml")
	t.Setenv("RUMMY_CONFIG", path)
	t.Setenv("RUMMY_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, logrus.DebugLevel, cfg.Logger().GetLevel())
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"small meld", "[rules]\nmin_meld_size = 2\n"},
		{"max below min", "[rules]\nmax_meld_size = 2\n"},
		{"huge hand", "[rules]\nhand_size = 65\n"},
		{"negative budget", "[search]\nnode_budget = -1\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"bad toml", "[rules\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rummy.toml")
			t.Setenv("RUMMY_CONFIG", path)
			t.Setenv("RUMMY_LOG_LEVEL", "")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "rummy", "config.toml")
	require.NoError(t, Save(path, Default()))

	t.Setenv("RUMMY_CONFIG", path)
	t.Setenv("RUMMY_LOG_LEVEL", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFirstLoadValidatesLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rummy", "config.toml")
	t.Setenv("RUMMY_CONFIG", path)
	t.Setenv("RUMMY_LOG_LEVEL", "loud")

	_, err := LoadConfig()
	assert.Error(t, err)

	// The second load reads the file written by the first and fails the same way.
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestHandSizeLimit(t *testing.T) {
	cfg := Default()
	cfg.Rules.HandSize = solver.MaxCards
	assert.NoError(t, cfg.Validate())

	cfg.Rules.HandSize = solver.MaxCards + 1
	assert.Error(t, cfg.Validate())
}

func TestJokerOptions(t *testing.T) {
	cfg := Default()
	cfg.Jokers.OneUp = true
	opts := cfg.JokerOptions()
	assert.True(t, opts.AltColor)
	assert.True(t, opts.OneUp)
	assert.True(t, opts.WholeRank)
}
