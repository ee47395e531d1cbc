package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/solterra/reservas/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == constants.StateAdding {
		content := m.form.View()
		if m.formError != "" {
			content = lipgloss.JoinVertical(lipgloss.Left,
				formErrorStyle.Render("Error: "+m.formError),
				"",
				content,
			)
		}
		return docStyle.Render(content)
	}

	header := appTitleStyle.Render("Gestor de Reservas — " + m.today)

	var banner string
	if msg := m.store.LastError(); msg != "" {
		banner = bannerStyle.Render("Error: " + msg + "  (pulsa 'r' para reintentar)")
	}

	var content string
	if !m.firstLoadDone && m.store.Loading() && banner == "" {
		content = loadingStyle.Render("Cargando reservas...")
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.tables[tableLunch].View(m.now),
			"",
			m.tables[tableDinner].View(m.now),
			"",
			m.tables[tableFuture].View(m.now),
		)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		banner,
		content,
		"",
		m.help.View(m.keys),
	))
}
