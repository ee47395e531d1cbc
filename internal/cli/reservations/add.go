package reservations

import (
	"context"
	"fmt"

	"github.com/solterra/reservas/internal/cli"
	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/models"
	"github.com/solterra/reservas/internal/utils"
	"github.com/solterra/reservas/internal/validation"
)

type AddCmd struct {
	Nombre      string `arg:"" help:"Guest name."`
	Hora        string `short:"H" help:"Reservation time (HH:MM)." required:""`
	Fecha       string `short:"f" help:"Reservation date (YYYY-MM-DD). Defaults to today."`
	Cantidad    int    `short:"c" help:"Party size." default:"1"`
	Tipo        string `short:"t" help:"Sitting (ALMUERZO|CENA)." enum:"ALMUERZO,CENA" required:""`
	Habitacion  string `short:"r" help:"Room/unit identifier."`
	Telefono    string `short:"p" help:"Phone number (XXX-XXXXXXX)."`
	Observacion string `short:"o" help:"Free-text note."`
}

func (c *AddCmd) Validate() error {
	if c.Fecha == "" {
		c.Fecha = utils.Today()
	}
	return validation.CheckDraft(c.draft())
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if warn := validation.PhoneWarning(c.Telefono); warn != "" {
		fmt.Printf("⚠ %s\n", warn)
	}

	cmdCtx, cancel := context.WithTimeout(context.Background(), 2*ctx.Config.HTTPTimeout)
	defer cancel()

	if err := ctx.Store.Add(cmdCtx, c.draft()); err != nil {
		return fmt.Errorf("%s: %w", ctx.Store.LastError(), err)
	}

	fmt.Printf("✓ Reserva guardada: %s, %s %s (%d pers.)\n", c.Nombre, c.Fecha, c.Hora, c.Cantidad)
	return nil
}

func (c *AddCmd) draft() models.Draft {
	return models.Draft{
		Fecha:       c.Fecha,
		Hora:        c.Hora,
		Nombre:      c.Nombre,
		Habitacion:  c.Habitacion,
		Cantidad:    c.Cantidad,
		Telefono:    c.Telefono,
		Tipo:        constants.Sitting(c.Tipo),
		Observacion: c.Observacion,
	}
}
