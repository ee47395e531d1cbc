// Package restable renders one reservation bucket as a titled table with
// lateness coloring and a selectable cursor.
package restable

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/solterra/reservas/internal/classify"
	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Bold(true)

	arrivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	title    string
	isFuture bool
	rows     []models.Reservation
	cursor   int
	focused  bool
}

func New(title string, isFuture bool) Model {
	return Model{title: title, isFuture: isFuture}
}

// SetRows replaces the displayed rows, keeping the cursor in bounds.
func (m *Model) SetRows(rows []models.Reservation) {
	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Focus() { m.focused = true }

func (m *Model) Blur() { m.focused = false }

func (m *Model) Focused() bool { return m.focused }

func (m *Model) IsFuture() bool { return m.isFuture }

func (m *Model) Len() int { return len(m.rows) }

func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) CursorDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// SetArrived patches the arrived flag of the row with the given id, if it
// is displayed here. Used for instant feedback ahead of a snapshot sync.
func (m *Model) SetArrived(id string, arrived bool) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Arrived = arrived
			return
		}
	}
}

// Selected returns the reservation under the cursor, if any.
func (m *Model) Selected() (models.Reservation, bool) {
	if len(m.rows) == 0 {
		return models.Reservation{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) View(now time.Time) string {
	var b strings.Builder

	title := m.title
	if m.focused {
		title = "▸ " + title
	} else {
		title = "  " + title
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString("  " + emptyStyle.Render("No hay reservas para mostrar."))
		return b.String()
	}

	b.WriteString("  " + headerStyle.Render(m.formatRow(
		"Fecha", "Hora", "Nombre", "Hab.", "Cant.", "Teléfono", "Tipo", "Observación", "Llegó")))
	b.WriteString("\n")

	for i, r := range m.rows {
		arrived := " "
		if r.Arrived {
			arrived = "✓"
		}
		line := m.formatRow(r.Fecha, r.Hora, r.Nombre, r.Habitacion,
			fmt.Sprintf("%d", r.Cantidad), r.Telefono, string(r.Tipo), r.Observacion, arrived)

		style := latenessStyle(classify.Lateness(r, now, m.isFuture))
		if m.focused && i == m.cursor {
			style = style.Inherit(selectedStyle)
		}
		b.WriteString("  " + style.Render(line))
		if i < len(m.rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// formatRow lays out one line. The today tables omit the fecha and tipo
// columns, matching the original dashboard headers.
func (m *Model) formatRow(fecha, hora, nombre, habitacion, cantidad, telefono, tipo, observacion, arrived string) string {
	if m.isFuture {
		return fmt.Sprintf("%-12s %-6s %-20s %-6s %5s  %-12s %-9s %-24s %s",
			fecha, hora, nombre, habitacion, cantidad, telefono, tipo, observacion, arrived)
	}
	return fmt.Sprintf("%-6s %-20s %-6s %5s  %-12s %-24s %s",
		hora, nombre, habitacion, cantidad, telefono, observacion, arrived)
}

func latenessStyle(l constants.Lateness) lipgloss.Style {
	switch l {
	case constants.LatenessArrived:
		return arrivedStyle
	case constants.LatenessWarn:
		return warnStyle
	case constants.LatenessCritical:
		return criticalStyle
	default:
		return lipgloss.NewStyle()
	}
}
