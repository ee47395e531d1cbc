package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/solterra/reservas/internal/cli"
	"github.com/solterra/reservas/internal/cli/reservations"
	"github.com/solterra/reservas/internal/cli/system"
	"github.com/solterra/reservas/internal/config"
	"github.com/solterra/reservas/internal/constants"
	apperrors "github.com/solterra/reservas/internal/errors"
	"github.com/solterra/reservas/internal/logger"
	"github.com/solterra/reservas/internal/sheets"
	"github.com/solterra/reservas/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	URL     string `help:"Apps Script endpoint URL. Overrides RESERVAS_SHEET_URL and the OS keyring." type:"string"`
	Debug   bool   `help:"Enable debug logging (mirrors the log to stderr)."`

	Tui    system.TuiCmd          `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	List   reservations.ListCmd   `cmd:"" help:"Print the classified reservation lists."`
	Add    reservations.AddCmd    `cmd:"" help:"Add a reservation."`
	Arrive reservations.ArriveCmd `cmd:"" help:"Mark a guest as arrived."`
	Watch  reservations.WatchCmd  `cmd:"" help:"Continuously print the dashboard, re-classifying every minute."`
	Doctor system.DoctorCmd       `cmd:"" help:"Run health checks and diagnostics."`
	Config system.ConfigCmd       `cmd:"" help:"Manage the stored sheet endpoint."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Restaurant reservation dashboard backed by a Google Sheet"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug && !isTUICommand(ctx.Command()),
		ConfigDir: filepath.Join(configDir, constants.AppName),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{}

	// Config management must work before any endpoint is configured.
	if !strings.HasPrefix(ctx.Command(), "config") {
		cfg, err := config.Load(CLI.URL)
		if err != nil {
			apperrors.Fatal(err)
		}
		client := sheets.New(cfg.SheetURL, cfg.HTTPTimeout)
		appCtx.Config = cfg
		appCtx.Client = client
		appCtx.Store = store.New(client)
	}

	apperrors.Fatal(ctx.Run(appCtx))
}

// isTUICommand reports whether the selected command renders the alt screen,
// where stderr mirroring would corrupt the display.
func isTUICommand(command string) bool {
	return command == "tui" || command == "watch"
}
