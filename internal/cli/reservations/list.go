package reservations

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/solterra/reservas/internal/cli"
	"github.com/solterra/reservas/internal/utils"
)

type ListCmd struct {
	JSON bool `help:"Print the raw reservation list as JSON."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	cmdCtx, cancel := context.WithTimeout(context.Background(), ctx.Config.HTTPTimeout)
	defer cancel()

	if err := ctx.Store.Refresh(cmdCtx); err != nil {
		return fmt.Errorf("%s: %w", ctx.Store.LastError(), err)
	}
	records := ctx.Store.Snapshot()

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	fmt.Println(cli.RenderBuckets(records, utils.Today(), time.Now()))
	return nil
}
