package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/store"
	"github.com/solterra/reservas/internal/tui/components/restable"
	"github.com/solterra/reservas/internal/utils"
)

// Order of the three bucket tables on screen.
const (
	tableLunch = iota
	tableDinner
	tableFuture
	tableCount
)

type Model struct {
	store *store.Store
	state constants.SessionState
	keys  KeyMap
	help  help.Model

	// now only advances on the minute tick; lateness coloring is a pure
	// function of it and the snapshot.
	now    time.Time
	today  string
	tables [tableCount]restable.Model
	focus  int

	form      *huh.Form
	draftForm *DraftFormModel
	formError string

	firstLoadDone bool
	quitting      bool
	width         int
	height        int
}

func NewModel(s *store.Store) Model {
	m := Model{
		store: s,
		state: constants.StateDashboard,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		now:   time.Now(),
		today: utils.Today(),
	}
	m.tables[tableLunch] = restable.New("Reservas de Hoy - Almuerzo", false)
	m.tables[tableDinner] = restable.New("Reservas de Hoy - Cena", false)
	m.tables[tableFuture] = restable.New("Reservas Futuras", true)
	m.tables[tableLunch].Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tick())
}
