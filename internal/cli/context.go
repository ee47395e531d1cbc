package cli

import (
	"github.com/solterra/reservas/internal/config"
	"github.com/solterra/reservas/internal/sheets"
	"github.com/solterra/reservas/internal/store"
)

// Context carries the wired application dependencies into kong commands.
type Context struct {
	Config config.Config
	Client *sheets.Client
	Store  *store.Store
}

var _ store.Remote = (*sheets.Client)(nil)
