package reservations

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/solterra/reservas/internal/cli"
	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/logger"
	"github.com/solterra/reservas/internal/scheduler"
	"github.com/solterra/reservas/internal/utils"
)

// WatchCmd is the scriptable analogue of the TUI: it re-prints the
// classified view every minute so lateness coloring stays current, and
// re-fetches from the sheet at the configured poll interval.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	refresh := func() {
		reqCtx, cancel := context.WithTimeout(sigCtx, ctx.Config.HTTPTimeout)
		defer cancel()
		if err := ctx.Store.Refresh(reqCtx); err != nil {
			logger.Warn("watch refresh failed", "error", err)
		}
	}

	render := func(now time.Time) {
		fmt.Print("\033[H\033[2J") // clear screen
		fmt.Println(cli.RenderBuckets(ctx.Store.Snapshot(), utils.Today(), now))
		if msg := ctx.Store.LastError(); msg != "" {
			fmt.Printf("\nError: %s\n", msg)
		}
	}

	refresh()
	render(time.Now())

	// The scheduler only advances "now"; fetching stays on its own slower
	// cadence.
	sched := scheduler.New(constants.ReclassifyInterval, render)
	sched.Start()
	defer sched.Stop()

	poll := time.NewTicker(ctx.Config.PollInterval)
	defer poll.Stop()

	for {
		select {
		case <-poll.C:
			refresh()
			render(time.Now())
		case <-sigCtx.Done():
			return nil
		}
	}
}
