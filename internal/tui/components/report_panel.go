package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tallyhq/tally/internal/report"
	"github.com/tallyhq/tally/internal/tui/themes"
)

// ReportPanelModel renders the financial report and owns the export path
// prompt.
type ReportPanelModel struct {
	theme     themes.Theme
	summary   report.Summary
	pathInput textinput.Model
	width     int
	height    int
	prompting bool
}

// NewReportPanel creates a report panel. defaultPath is offered whenever the
// export prompt opens.
func NewReportPanel(theme themes.Theme, defaultPath string) ReportPanelModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "books.csv"
	pathInput.SetValue(defaultPath)
	pathInput.CharLimit = 255
	pathInput.Width = 40

	return ReportPanelModel{
		theme:     theme,
		pathInput: pathInput,
	}
}

// SetSummary replaces the displayed summary snapshot.
func (m *ReportPanelModel) SetSummary(s report.Summary) {
	m.summary = s
}

// Prompting reports whether the export path prompt is open.
func (m ReportPanelModel) Prompting() bool {
	return m.prompting
}

// Update handles messages.
func (m ReportPanelModel) Update(msg tea.Msg) (ReportPanelModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.prompting {
		switch keyMsg.String() {
		case "esc":
			m.prompting = false
			m.pathInput.Blur()
			return m, nil
		case "enter":
			path := m.pathInput.Value()
			if path == "" {
				return m, nil
			}
			m.prompting = false
			m.pathInput.Blur()
			return m, func() tea.Msg { return ExportRequestMsg{Path: path} }
		default:
			newInput, cmd := m.pathInput.Update(msg)
			m.pathInput = newInput
			return m, cmd
		}
	}

	if keyMsg.String() == "x" {
		m.prompting = true
		m.pathInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// Resize updates the component size.
func (m *ReportPanelModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the report.
func (m ReportPanelModel) View() string {
	lines := []string{m.theme.Title.Render("Financial Report"), ""}
	labelStyle := lipgloss.NewStyle().Bold(true).Width(22)
	for _, row := range m.summary.Rows() {
		lines = append(lines, labelStyle.Render(row.Label+":")+" "+m.theme.Normal.Render(row.Value))
	}
	lines = append(lines, "")

	if m.prompting {
		lines = append(lines,
			m.theme.Bold.Render("Export to:")+" "+m.pathInput.View(),
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Enter: export · Esc: cancel"),
		)
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Press x to export the books as CSV"))
	}

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
