// Package cmd provides the root command and CLI setup for playwright-ai.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tomodakengo/playwright-ai/internal/adapter"
	"github.com/tomodakengo/playwright-ai/internal/controller"
	m "github.com/tomodakengo/playwright-ai/internal/model"
)

var store adapter.SnapshotStore
var writer adapter.ArtifactWriter
var ui controller.UI

// newExtractor builds the browser driver for a generation run. Tests
// swap it for a fake.
var newExtractor = func(driver string, headless bool) (adapter.Extractor, error) {
	switch driver {
	case "playwright":
		return adapter.NewPlaywrightExtractor(headless), nil
	case "rod":
		return adapter.NewRodExtractor(headless), nil
	}

	return nil, fmt.Errorf("unknown driver: %s (supported: playwright, rod)", driver)
}

// outputDirFlag is a root-level flag shared by commands that read/write
// artifacts and snapshots.
var outputDirFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

func init() {
	// Provider API keys are commonly kept in a .env file.
	_ = godotenv.Load()

	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	store = adapter.NewSnapshotStore()
	writer = adapter.NewArtifactWriter()
}

const rootLongDescription = `playwright-ai generates Playwright page object classes from live pages,
records a snapshot of every generation run, and compares snapshots across
runs to detect UI drift before it breaks your test suite.`

const generateLongDescription = `Extract interactive elements from each URL, resolve a locator and a stable
identifier for every element, and write a TypeScript page object class plus
a snapshot file into the output directory.

Multiple URLs are processed concurrently, bounded by --parallel.`

const diffLongDescription = `Load two snapshot files and classify every element identifier into added,
removed, modified or unchanged.

Exits 0 when the snapshots agree, 2 when drift is detected and 1 on usage
or load errors.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "playwright-ai",
		Short: "Playwright page object generator with drift detection",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for generated page objects and snapshots",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Drift maps to exit code 2 so CI can gate on it; every other error is 1.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, m.ErrDrift) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}
