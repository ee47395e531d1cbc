package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/models"
	"github.com/solterra/reservas/internal/utils"
)

// DraftFormModel holds the add-reservation form values as strings, the way
// huh edits them.
type DraftFormModel struct {
	Nombre      string
	Habitacion  string
	Fecha       string
	Hora        string
	Cantidad    string
	Telefono    string
	Tipo        constants.Sitting
	Observacion string
}

// NewDraftFormModel returns form state with the defaults the original form
// used: today's date, a party of one.
func NewDraftFormModel() *DraftFormModel {
	return &DraftFormModel{
		Fecha:    utils.Today(),
		Cantidad: "1",
		Tipo:     constants.SittingLunch,
	}
}

// Draft converts the form values into a sendable draft. Call only after the
// form validated.
func (fm *DraftFormModel) Draft() models.Draft {
	cantidad, err := strconv.Atoi(strings.TrimSpace(fm.Cantidad))
	if err != nil || cantidad < 1 {
		cantidad = 1
	}
	return models.Draft{
		Fecha:       fm.Fecha,
		Hora:        fm.Hora,
		Nombre:      fm.Nombre,
		Habitacion:  fm.Habitacion,
		Cantidad:    cantidad,
		Telefono:    fm.Telefono,
		Tipo:        fm.Tipo,
		Observacion: fm.Observacion,
	}
}

// NewAddForm creates the add-reservation form
func NewAddForm(fm *DraftFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nombre").
				Value(&fm.Nombre).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("el nombre es obligatorio")
					}
					return nil
				}),
			huh.NewInput().
				Title("Fecha (YYYY-MM-DD)").
				Value(&fm.Fecha).
				Validate(func(s string) error {
					if !utils.ValidateDateFormat(s) {
						return fmt.Errorf("fecha inválida (YYYY-MM-DD)")
					}
					return nil
				}),
			huh.NewInput().
				Title("Hora (HH:MM)").
				Value(&fm.Hora).
				Validate(func(s string) error {
					if !utils.ValidateTimeFormat(s) {
						return fmt.Errorf("hora inválida (HH:MM)")
					}
					return nil
				}),
			huh.NewSelect[constants.Sitting]().
				Title("Tipo").
				Options(
					huh.NewOption("Almuerzo", constants.SittingLunch),
					huh.NewOption("Cena", constants.SittingDinner),
				).
				Value(&fm.Tipo),
			huh.NewInput().
				Title("Cantidad").
				Value(&fm.Cantidad).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					if i < 1 {
						return fmt.Errorf("la cantidad debe ser al menos 1")
					}
					return nil
				}),
			huh.NewInput().
				Title("Habitación").
				Value(&fm.Habitacion),
			huh.NewInput().
				Title("Teléfono").
				Description("Formato XXX-XXXXXXX").
				Value(&fm.Telefono),
			huh.NewInput().
				Title("Observación").
				Value(&fm.Observacion),
		),
	)
}
