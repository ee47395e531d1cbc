package cli

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
	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Bold(true)

	arrivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// RenderBuckets renders the three classified sections the way the dashboard
// shows them. now drives lateness coloring.
func RenderBuckets(records []models.Reservation, today string, now time.Time) string {
	lunch, dinner, future := classify.Buckets(records, today)

	sections := []string{
		renderSection("Reservas de Hoy - Almuerzo", lunch, false, now),
		renderSection("Reservas de Hoy - Cena", dinner, false, now),
		renderSection("Reservas Futuras", future, true, now),
	}
	return strings.Join(sections, "\n\n")
}

func renderSection(title string, rows []models.Reservation, isFuture bool, now time.Time) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(title))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(emptyStyle.Render("No hay reservas para mostrar."))
		return b.String()
	}

	b.WriteString(headerStyle.Render(formatRow(isFuture, "Fecha", "Hora", "Nombre", "Hab.", "Cant.", "Teléfono", "Tipo", "Observación", "Llegó")))
	b.WriteString("\n")
	for i, r := range rows {
		arrived := " "
		if r.Arrived {
			arrived = "✓"
		}
		line := formatRow(isFuture, r.Fecha, r.Hora, r.Nombre, r.Habitacion,
			fmt.Sprintf("%d", r.Cantidad), r.Telefono, string(r.Tipo), r.Observacion, arrived)
		b.WriteString(LatenessStyle(classify.Lateness(r, now, isFuture)).Render(line))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// formatRow lays out one table line. Today's sections omit the fecha and
// tipo columns, matching the original dashboard headers.
func formatRow(isFuture bool, fecha, hora, nombre, habitacion, cantidad, telefono, tipo, observacion, arrived string) string {
	if isFuture {
		return fmt.Sprintf("%-12s %-6s %-20s %-6s %5s  %-12s %-9s %-24s %s",
			fecha, hora, nombre, habitacion, cantidad, telefono, tipo, observacion, arrived)
	}
	return fmt.Sprintf("%-6s %-20s %-6s %5s  %-12s %-24s %s",
		hora, nombre, habitacion, cantidad, telefono, observacion, arrived)
}

// LatenessStyle maps a lateness state to its display style.
func LatenessStyle(l constants.Lateness) lipgloss.Style {
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
