package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// TUI implements interactive drift review using Bubble Tea.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// ReviewChangeReport displays a change report in a scrollable view. When
// the report fits on screen it is printed directly without entering the
// alternate screen.
func (p *TUI) ReviewChangeReport(report m.ChangeReport, mode string) error {
	model := newChangeReportModel(report, mode)

	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())

		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// changeReportModel represents the Bubble Tea model for reviewing drift.
type changeReportModel struct {
	report   m.ChangeReport
	mode     string
	lines    []string
	height   int
	width    int
	offset   int
	quitting bool
}

func newChangeReportModel(report m.ChangeReport, mode string) changeReportModel {
	return changeReportModel{
		report: report,
		mode:   mode,
		lines:  buildReportLines(report),
	}
}

func buildReportLines(report m.ChangeReport) []string {
	lines := []string{}

	for _, element := range report.Added {
		lines = append(lines, addedStyle.Render(fmt.Sprintf("  + %s  %s", element.Identifier, element.Expression)))
	}

	for _, element := range report.Removed {
		lines = append(lines, removedStyle.Render(fmt.Sprintf("  - %s  %s", element.Identifier, element.Expression)))
	}

	for _, pair := range report.Modified {
		lines = append(lines, modifiedStyle.Render(fmt.Sprintf("  ~ %s", pair.Old.Identifier)))
		lines = append(lines, modifiedStyle.Render(fmt.Sprintf("      was: %s", pair.Old.Expression)))
		lines = append(lines, modifiedStyle.Render(fmt.Sprintf("      now: %s", pair.New.Expression)))
	}

	for _, element := range report.Unchanged {
		lines = append(lines, unchangedStyle.Render(fmt.Sprintf("    %s", element.Identifier)))
	}

	return lines
}

func (crm changeReportModel) Init() tea.Cmd {
	return nil
}

func (crm changeReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		crm.height = msg.Height
		crm.width = msg.Width

		return crm, nil

	case tea.KeyMsg:
		return crm.handleKeyPress(msg)
	}

	return crm, nil
}

//nolint:exhaustive // We only handle specific navigation keys
func (crm changeReportModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		crm.quitting = true
		return crm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		crm.quitting = true
		return crm, tea.Quit

	case "down", "j":
		crm.offset++

		maxOffset := crm.maxOffset()
		if crm.offset > maxOffset {
			crm.offset = maxOffset
		}

		return crm, nil

	case "up", "k":
		crm.offset--
		if crm.offset < 0 {
			crm.offset = 0
		}

		return crm, nil

	case "g", "home":
		crm.offset = 0

		return crm, nil

	case "G", "end":
		crm.offset = crm.maxOffset()

		return crm, nil

	case "d", "pgdown":
		crm.offset += crm.itemsPerPage()

		maxOffset := crm.maxOffset()
		if crm.offset > maxOffset {
			crm.offset = maxOffset
		}

		return crm, nil

	case "u", "pgup":
		crm.offset -= crm.itemsPerPage()
		if crm.offset < 0 {
			crm.offset = 0
		}

		return crm, nil
	}

	return crm, nil
}

// itemsPerPage calculates how many report lines fit on screen.
func (crm changeReportModel) itemsPerPage() int {
	if crm.height == 0 {
		return 10 // Default
	}
	// Reserve space for:
	// - Title: 2 lines
	// - Summary: 2 lines
	// - Footer: 3 lines
	reserved := 7

	available := crm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// maxOffset returns the maximum scroll offset.
func (crm changeReportModel) maxOffset() int {
	perPage := crm.itemsPerPage()
	if perPage <= 0 {
		return 0
	}

	maxOff := len(crm.lines) - perPage
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the report is too large to fit on screen.
func (crm changeReportModel) needsPagination() bool {
	if len(crm.lines) == 0 {
		return false
	}

	return len(crm.lines) > crm.itemsPerPage() && crm.height > 0
}

func (crm changeReportModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Drift review (mode: %s)\n\n", crm.mode)

	if len(crm.lines) == 0 {
		b.WriteString("  No elements to review\n")

		return b.String()
	}

	crm.renderLines(&b)

	return b.String()
}

func (crm changeReportModel) renderLines(b *strings.Builder) {
	needsPagination := crm.needsPagination()
	itemsPerPage := crm.itemsPerPage()

	start := crm.offset

	end := start + itemsPerPage
	if end > len(crm.lines) {
		end = len(crm.lines)
	}

	if start >= len(crm.lines) {
		start = len(crm.lines) - 1
		if start < 0 {
			start = 0
		}
	}

	visible := crm.lines
	if needsPagination {
		visible = crm.lines[start:end]
	}

	for _, line := range visible {
		fmt.Fprintf(b, "%s\n", line)
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  Added: %d | Removed: %d | Modified: %d | Unchanged: %d\n",
		len(crm.report.Added), len(crm.report.Removed),
		len(crm.report.Modified), len(crm.report.Unchanged))

	if needsPagination {
		b.WriteString("\n")

		currentPage := (crm.offset / itemsPerPage) + 1
		totalPages := (len(crm.lines) + itemsPerPage - 1) / itemsPerPage
		fmt.Fprintf(b, "  Page %d/%d | Showing %d-%d of %d\n",
			currentPage, totalPages, start+1, end, len(crm.lines))
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}
}
