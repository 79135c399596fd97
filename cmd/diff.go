package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomodakengo/playwright-ai/internal/adapter"
	"github.com/tomodakengo/playwright-ai/internal/controller"
	"github.com/tomodakengo/playwright-ai/internal/domain"
	m "github.com/tomodakengo/playwright-ai/internal/model"
)

var diffModeFlag string
var diffJSONFlag bool
var diffInteractiveFlag bool

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old-snapshot> <new-snapshot>",
		Short: "Compare two snapshots and report drift",
		Long:  diffLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], args[1])
		},
	}

	configureDiffFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func configureDiffFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&diffModeFlag, modeFlagName, "m", string(domain.DiffLocators), "comparison mode: locators or descriptors")
	cmd.Flags().BoolVar(&diffJSONFlag, jsonFlagName, false, "emit the change report as JSON")
	cmd.Flags().BoolVarP(&diffInteractiveFlag, interactiveFlagName, "i", false, "review the report in a scrollable view")
}

func parseDiffMode(value string) (domain.DiffMode, error) {
	switch mode := domain.DiffMode(value); mode {
	case domain.DiffLocators, domain.DiffDescriptors:
		return mode, nil
	}

	return "", fmt.Errorf("unknown diff mode: %s (supported: %s, %s)", value, domain.DiffLocators, domain.DiffDescriptors)
}

func runDiff(cmd *cobra.Command, oldPath, newPath string) error {
	mode, err := parseDiffMode(diffModeFlag)
	if err != nil {
		return err
	}

	oldSnapshot, err := store.Load(oldPath)
	if err != nil {
		return fmt.Errorf("failed to load old snapshot %s: %w", oldPath, err)
	}

	newSnapshot, err := store.Load(newPath)
	if err != nil {
		return fmt.Errorf("failed to load new snapshot %s: %w", newPath, err)
	}

	report := domain.Diff(oldSnapshot.Elements, newSnapshot.Elements, mode)

	if err := displayReport(cmd, report, mode, oldSnapshot, newSnapshot); err != nil {
		return err
	}

	if report.HasChanges() {
		return m.ErrDrift
	}

	return nil
}

func displayReport(cmd *cobra.Command, report m.ChangeReport, mode domain.DiffMode, oldSnapshot, newSnapshot *m.Snapshot) error {
	if diffJSONFlag {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}

		cmd.Println(string(encoded))

		return nil
	}

	if diffInteractiveFlag {
		return controller.NewTUI(cmd.OutOrStdout()).ReviewChangeReport(report, string(mode))
	}

	if err := ui.DisplayChangeReport(cmd.Context(), report, string(mode)); err != nil {
		return err
	}

	// Regenerate both page objects from their recorded config so the
	// report is backed by a source-level diff of the actual artifacts.
	oldSource := domain.Synthesize(oldSnapshot.Elements, oldSnapshot.Config.Template, oldSnapshot.Config.Naming, oldSnapshot.Page, oldSnapshot.URL)
	newSource := domain.Synthesize(newSnapshot.Elements, newSnapshot.Config.Template, newSnapshot.Config.Naming, newSnapshot.Page, newSnapshot.URL)

	return ui.DisplaySourceDiff(cmd.Context(), newSnapshot.Page+adapter.ArtifactSuffix, oldSource, newSource)
}
