package sheets

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/models"
)

// The sheet serializes loosely: ids may arrive as numbers, cantidad as a
// string, arrived as the strings "TRUE"/"true". rawReservation absorbs all
// of that and Normalize produces a typed record. Unvalidated sheet data
// never leaves this package.
type rawReservation struct {
	ID          json.RawMessage `json:"id"`
	Fecha       string          `json:"fecha"`
	Hora        string          `json:"hora"`
	Nombre      string          `json:"nombre"`
	Habitacion  string          `json:"habitacion"`
	Cantidad    json.RawMessage `json:"cantidad"`
	Telefono    string          `json:"telefono"`
	Tipo        string          `json:"tipo"`
	Observacion string          `json:"observacion"`
	Arrived     json.RawMessage `json:"arrived"`
}

// Normalize converts a raw sheet row into a typed Reservation.
func (r rawReservation) Normalize() models.Reservation {
	return models.Reservation{
		ID:          decodeString(r.ID),
		Fecha:       r.Fecha,
		Hora:        r.Hora,
		Nombre:      r.Nombre,
		Habitacion:  r.Habitacion,
		Cantidad:    decodeCount(r.Cantidad),
		Telefono:    r.Telefono,
		Tipo:        constants.Sitting(r.Tipo),
		Observacion: r.Observacion,
		Arrived:     decodeArrived(r.Arrived),
	}
}

// decodeString renders a raw JSON scalar as a string. Numbers keep their
// decimal representation so numeric sheet ids stay stable.
func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// decodeCount parses a party size, defaulting to 1 when the cell is empty
// or not numeric.
func decodeCount(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 1
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil && n != 0 {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n != 0 {
			return n
		}
	}
	return 1
}

// decodeArrived is strict: only boolean true or the string "true"
// (case-insensitive) count as arrived.
func decodeArrived(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.EqualFold(s, "true")
	}
	return false
}
