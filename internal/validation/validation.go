package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/models"
	"github.com/solterra/reservas/internal/utils"
)

// phonePattern is the shape the sheet expects (e.g. 011-4567890). The
// backend does not enforce it, so a mismatch is a warning, not an error.
var phonePattern = regexp.MustCompile(`^\d{3}-\d{7}$`)

// CheckDraft validates a reservation draft before it is sent to the sheet.
// It returns the first hard error found, or nil if the draft is sendable.
func CheckDraft(d models.Draft) error {
	if strings.TrimSpace(d.Nombre) == "" {
		return fmt.Errorf("nombre is required")
	}
	if !utils.ValidateDateFormat(d.Fecha) {
		return fmt.Errorf("invalid fecha %q (expected YYYY-MM-DD)", d.Fecha)
	}
	if !utils.ValidateTimeFormat(d.Hora) {
		return fmt.Errorf("invalid hora %q (expected HH:MM)", d.Hora)
	}
	if d.Cantidad < 1 {
		return fmt.Errorf("cantidad must be at least 1")
	}
	if d.Tipo != constants.SittingLunch && d.Tipo != constants.SittingDinner {
		return fmt.Errorf("tipo must be %s or %s", constants.SittingLunch, constants.SittingDinner)
	}
	return nil
}

// PhoneWarning returns a human-readable warning when the phone number does
// not match the expected shape, and "" when it does or is empty.
func PhoneWarning(telefono string) string {
	if telefono == "" || phonePattern.MatchString(telefono) {
		return ""
	}
	return fmt.Sprintf("telefono %q does not match the expected XXX-XXXXXXX shape", telefono)
}
