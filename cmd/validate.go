package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/rummy/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a hand file",
	Long: `Validate checks a TOML hand file before it is handed to the engine.
It reports unreadable cards, wrong hand sizes and duplicate card identities as
errors, and unusual but playable hands as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handPath := args[0]

		// Check if path exists
		if _, err := os.Stat(handPath); os.IsNotExist(err) {
			return fmt.Errorf("hand file not found: %s", handPath)
		}

		// Create validator and run validation
		v := validator.NewValidator(handPath, cfg.MeldRules())
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Hand '%s' is valid.\n", handPath)
		} else {
			fmt.Printf("❌ Hand '%s' has %d validation errors:\n", handPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
