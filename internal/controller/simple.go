package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// Bucket styling for change reports.
var (
	addedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	modifiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	unchangedStyle = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayGeneration prints a summary table of generated page objects.
func (s *SimpleUI) DisplayGeneration(ctx context.Context, results []GenerationResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	totalElements := 0
	for _, result := range results {
		totalElements += result.Elements
	}

	s.printf("\n%s", renderGenerationTable(results, totalElements))

	for _, result := range results {
		if result.Screenshot != "" {
			s.printf("Screenshot: %s\n", result.Screenshot)
		}
	}

	return nil
}

func renderGenerationTable(results []GenerationResult, totalElements int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Page", "URL", "Elements", "Artifact"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	for _, result := range results {
		table.Append([]string{
			result.Page,
			result.URL,
			fmt.Sprintf("%d", result.Elements),
			result.Path,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Pages %d", len(results)),
		"",
		fmt.Sprintf("%d", totalElements),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayChangeReport prints each bucket of the report, colorized when
// the terminal supports it.
func (s *SimpleUI) DisplayChangeReport(ctx context.Context, report m.ChangeReport, mode string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !report.HasChanges() {
		s.printf("No changes detected (%d elements unchanged, mode: %s)\n", len(report.Unchanged), mode)

		return nil
	}

	s.printf("Changes detected (mode: %s):\n\n", mode)

	for _, element := range report.Added {
		s.printf("%s\n", addedStyle.Render(fmt.Sprintf("  + %s  %s", element.Identifier, element.Expression)))
	}

	for _, element := range report.Removed {
		s.printf("%s\n", removedStyle.Render(fmt.Sprintf("  - %s  %s", element.Identifier, element.Expression)))
	}

	for _, pair := range report.Modified {
		s.printf("%s\n", modifiedStyle.Render(fmt.Sprintf("  ~ %s", pair.Old.Identifier)))
		s.printf("%s\n", modifiedStyle.Render(fmt.Sprintf("      was: %s", pair.Old.Expression)))
		s.printf("%s\n", modifiedStyle.Render(fmt.Sprintf("      now: %s", pair.New.Expression)))
	}

	for _, element := range report.Unchanged {
		s.printf("%s\n", unchangedStyle.Render(fmt.Sprintf("    %s", element.Identifier)))
	}

	s.printf("\nAdded: %d | Removed: %d | Modified: %d | Unchanged: %d\n",
		len(report.Added), len(report.Removed), len(report.Modified), len(report.Unchanged))

	return nil
}

// DisplaySourceDiff prints a unified diff between two artifact sources.
func (s *SimpleUI) DisplaySourceDiff(ctx context.Context, name, before, after string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if before == after {
		return nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name + " (old)",
		ToFile:   name + " (new)",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("failed to render diff: %w", err)
	}

	s.printf("\n%s", text)

	return nil
}

// DisplayAction prints an interpreted step as indented JSON.
func (s *SimpleUI) DisplayAction(ctx context.Context, step string, action m.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(action, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode action: %w", err)
	}

	s.printf("Step: %s\n%s\n", step, encoded)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
