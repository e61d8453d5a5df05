package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/rummy/internal/config"
)

var (
	cfg    *config.Config
	logger *logrus.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rummy",
	Short: "Rule engine and bot for Indian Rummy hands",
	Long: `Rummy checks 13-card Indian Rummy hands for a legal declaration, finds the
winning discard of a 14-card hand and runs the heuristic bot on a hand.

Cards are written as rank and suit: AS, 10H, QD, 7C. JK is a printed joker.
Repeated faces from a second deck may be numbered: 7S 7S#2.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/rummy/config.toml)")
	RootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(arrangeCmd)
	RootCmd.AddCommand(discardCmd)
	RootCmd.AddCommand(botCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(configCmd)
}

// loadEnv applies .env from the working directory and the --config and
// --log-level flags as environment overrides.
func loadEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env: %w", err)
	}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		os.Setenv("RUMMY_CONFIG", path)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		os.Setenv("RUMMY_LOG_LEVEL", level)
	}
	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	if err := loadEnv(cmd); err != nil {
		return err
	}

	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		return err
	}
	logger = cfg.Logger()
	logger.WithField("config", config.GetConfigFilePath()).Debug("config loaded")
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
