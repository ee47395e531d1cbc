package reservations

import (
	"context"
	"fmt"

	"github.com/solterra/reservas/internal/cli"
)

type ArriveCmd struct {
	ID   string `arg:"" help:"Reservation id."`
	Undo bool   `help:"Mark the guest as not arrived instead."`
}

func (c *ArriveCmd) Run(ctx *cli.Context) error {
	arrived := !c.Undo

	cmdCtx, cancel := context.WithTimeout(context.Background(), 2*ctx.Config.HTTPTimeout)
	defer cancel()

	// Load the current set first so the optimistic write has a record to
	// mutate and roll back.
	if err := ctx.Store.Refresh(cmdCtx); err != nil {
		return fmt.Errorf("%s: %w", ctx.Store.LastError(), err)
	}

	if err := ctx.Store.SetArrived(cmdCtx, c.ID, arrived); err != nil {
		return fmt.Errorf("%s: %w", ctx.Store.LastError(), err)
	}

	if arrived {
		fmt.Printf("✓ Reserva %s marcada como llegada\n", c.ID)
	} else {
		fmt.Printf("✓ Reserva %s marcada como pendiente\n", c.ID)
	}
	return nil
}
