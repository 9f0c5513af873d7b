package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/session"
)

var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	taglineStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	heroBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 2)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successBannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorBannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	fileCardStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("110")).Padding(0, 1).MarginLeft(1)
	currentLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))
	dirEntryStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	dropArmedStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(0, 1)
	dropIdleStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("244")).Padding(0, 1)
	helpBoxStyle       = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("141")).Padding(1, 2)
)

func (m *model) View() string {
	switch m.stage {
	case stageBrowse:
		return m.viewBrowse()
	default:
		return m.viewMain()
	}
}

func (m *model) viewMain() string {
	parts := []string{m.heroView(), m.documentCard(), m.reportPanel(), m.composerPanel()}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		message := m.infoMessage
		if m.sess.Busy() {
			message = fmt.Sprintf("%s %s", m.spinner.View(), message)
		}
		parts = append(parts, helperStyle.Render(message))
	}
	parts = append(parts, helperStyle.Render("o: choose document • u: upload • a: ask • ?: help • Esc: quit"))
	if m.helpVisible {
		parts = append(parts, m.helpView())
	}
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	hero := titleStyle.Render(appTitle) + "\n" + taglineStyle.Render(heroTagline)
	return heroBoxStyle.Render(hero)
}

func (m *model) documentCard() string {
	b := strings.Builder{}
	b.WriteString(sectionHeaderStyle.Render("Document"))
	b.WriteRune('\n')
	file := m.sess.File()
	if file == nil {
		b.WriteString(helperStyle.Render("No document selected. Press o to browse for a PDF."))
		return b.String()
	}
	detail := fmt.Sprintf("%s · %s%s", file.Name, humanSize(file.Size), pagesSuffix(file.Pages))
	b.WriteString(fileCardStyle.Render(detail))
	if m.sess.Uploading() {
		b.WriteRune('\n')
		b.WriteString(helperStyle.Render(fmt.Sprintf("%s Uploading…", m.spinner.View())))
		return b.String()
	}
	if outcome := m.sess.Outcome(); outcome != nil {
		b.WriteRune('\n')
		if outcome.Status == session.StatusSuccess {
			b.WriteString(successBannerStyle.Render("✓ " + outcome.Message))
		} else {
			b.WriteString(errorBannerStyle.Render("✗ " + outcome.Message))
		}
	}
	return b.String()
}

func (m *model) reportPanel() string {
	b := strings.Builder{}
	b.WriteString(sectionHeaderStyle.Render("Report"))
	b.WriteRune('\n')
	switch {
	case m.sess.Asking():
		b.WriteString(helperStyle.Render(fmt.Sprintf("%s Generating report…", m.spinner.View())))
	case m.sess.AskError() != "":
		b.WriteString(errorStyle.Render(m.sess.AskError()))
		if m.sess.Report() != "" {
			b.WriteRune('\n')
			b.WriteString(m.viewport.View())
		}
	case m.sess.Report() == "":
		b.WriteString(helperStyle.Render("Ask a question to generate a report."))
	default:
		b.WriteString(m.viewport.View())
	}
	return b.String()
}

func (m *model) composerPanel() string {
	return joinNonEmpty([]string{
		sectionHeaderStyle.Render("Ask the Document"),
		m.composer.View(),
		helperStyle.Render("Enter: submit question • Esc: leave the composer"),
	})
}

func (m *model) viewBrowse() string {
	b := strings.Builder{}
	b.WriteString(m.heroView())
	b.WriteString("\n\n")
	b.WriteString(sectionHeaderStyle.Render("Choose a PDF"))
	b.WriteRune('\n')
	b.WriteString(helperStyle.Render(m.browser.dir))
	b.WriteString("\n\n")

	switch {
	case m.browser.loading:
		b.WriteString(fmt.Sprintf("%s Reading directory…", m.spinner.View()))
	case m.browser.errText != "":
		b.WriteString(errorStyle.Render(m.browser.errText))
	case len(m.browser.entries) == 0:
		b.WriteString(helperStyle.Render("Nothing here. Backspace goes up a level."))
	default:
		for idx, entry := range m.browser.entries {
			line := browseEntryLine(entry)
			if idx == m.browser.cursor {
				line = currentLineStyle.Render(line)
			} else if entry.Dir {
				line = dirEntryStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteRune('\n')
		}
	}

	b.WriteString("\n")
	b.WriteString(m.dropTargetView())
	b.WriteString("\n")
	b.WriteString(helperStyle.Render("Enter: select • Backspace: parent dir • Esc: cancel"))
	return b.String()
}

// dropTargetView renders the drop zone, lit while the hover flag is set.
func (m *model) dropTargetView() string {
	if m.sess.DragHover() {
		return dropArmedStyle.Render("Drop target armed: Enter selects this file")
	}
	return dropIdleStyle.Render("Hover a file to arm the drop target")
}

func browseEntryLine(entry browseEntry) string {
	if entry.Dir {
		return fmt.Sprintf("  %s/", entry.Name)
	}
	return fmt.Sprintf("  %s  (%s)", entry.Name, humanSize(entry.Size))
}

func (m *model) helpView() string {
	rows := []string{
		"o          browse for a document",
		"u          upload the selected document",
		"a / i      focus the question composer",
		"Enter      submit or retry the current question",
		"j/k, g/G   scroll the report",
		"?          toggle this overlay",
		"Esc        blur composer / close overlay / quit",
		"Ctrl+C     quit",
	}
	return helpBoxStyle.Render(sectionHeaderStyle.Render("Keys") + "\n" + strings.Join(rows, "\n"))
}

func (m *model) refreshReport() {
	report := m.sess.Report()
	if report == "" {
		m.viewport.SetContent("")
		return
	}
	wrap := m.viewport.Width
	if wrap <= 0 {
		wrap = 80
	}
	m.viewport.SetContent(wordwrap.String(report, wrap))
}

func pagesSuffix(pages int) string {
	if pages <= 0 {
		return ""
	}
	if pages == 1 {
		return " · 1 page"
	}
	return fmt.Sprintf(" · %d pages", pages)
}

func humanSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGT"[exp])
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			filtered = append(filtered, part)
		}
	}
	return strings.Join(filtered, "\n\n")
}
