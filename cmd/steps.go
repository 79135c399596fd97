package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomodakengo/playwright-ai/internal/ai"
)

var stepsProviderFlag string
var stepsModelFlag string

// stepsCmd represents the steps command.
var stepsCmd = newStepsCmd()

func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps <step text>",
		Short: "Interpret a natural-language test step",
		Long: `Interpret one natural-language test step against the newest snapshot in
the output directory and print the resolved action as JSON.

Conventional steps are resolved locally; anything else is sent to the
configured AI provider.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSteps(cmd, strings.Join(args, " "))
		},
	}

	configureStepsFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

func configureStepsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&stepsProviderFlag, providerFlagName, viper.GetString(providerConfigKey), "AI provider for unmatched steps: openai or claude")
	bindFlagToConfig(cmd.Flags().Lookup(providerFlagName), providerConfigKey)

	cmd.Flags().StringVar(&stepsModelFlag, modelFlagName, viper.GetString(modelConfigKey), "model name for the AI provider")
	bindFlagToConfig(cmd.Flags().Lookup(modelFlagName), modelConfigKey)
}

func runSteps(cmd *cobra.Command, step string) error {
	outputDir := viper.GetString(outputFlagName)

	snapshot, snapshotPath, err := store.Latest(outputDir)
	if err != nil {
		return fmt.Errorf("failed to load latest snapshot from %s: %w", outputDir, err)
	}

	slog.Debug("interpreting step", "step", step, "snapshot", snapshotPath)

	var provider ai.Provider

	if name := viper.GetString(providerConfigKey); name != "" {
		provider, err = ai.NewProvider(name, viper.GetString(modelConfigKey))
		if err != nil {
			return err
		}
	}

	action, err := ai.Interpret(cmd.Context(), provider, step, snapshot)
	if err != nil {
		return err
	}

	return ui.DisplayAction(cmd.Context(), step, action)
}
