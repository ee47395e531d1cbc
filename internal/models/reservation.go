package models

import "github.com/solterra/reservas/internal/constants"

// Reservation is a single table booking as the sheet stores it. Fecha and
// Hora stay strings in the sheet's formats (YYYY-MM-DD, HH:MM); both are
// zero-padded so lexicographic order is chronological order.
type Reservation struct {
	ID          string            `json:"id"`
	Fecha       string            `json:"fecha"`
	Hora        string            `json:"hora"`
	Nombre      string            `json:"nombre"`
	Habitacion  string            `json:"habitacion"`
	Cantidad    int               `json:"cantidad"`
	Telefono    string            `json:"telefono"`
	Tipo        constants.Sitting `json:"tipo"`
	Observacion string            `json:"observacion"`
	Arrived     bool              `json:"arrived"`
}

// Draft is a reservation as submitted by staff: everything except the ID,
// which only the sheet assigns, and Arrived, which starts false.
type Draft struct {
	Fecha       string            `json:"fecha"`
	Hora        string            `json:"hora"`
	Nombre      string            `json:"nombre"`
	Habitacion  string            `json:"habitacion"`
	Cantidad    int               `json:"cantidad"`
	Telefono    string            `json:"telefono"`
	Tipo        constants.Sitting `json:"tipo"`
	Observacion string            `json:"observacion"`
}
