package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/solterra/reservas/internal/classify"
	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/utils"
)

// TickMsg advances the classification clock once a minute. It never
// triggers a fetch.
type TickMsg time.Time

type refreshDoneMsg struct{}

type addDoneMsg struct{ err error }

type arriveDoneMsg struct{ err error }

func tick() tea.Cmd {
	return tea.Tick(constants.ReclassifyInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) refreshCmd() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		// Errors surface through the store's LastError banner.
		_ = s.Refresh(context.Background())
		return refreshDoneMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		m.today = utils.Today()
		m.syncTables()
		return m, tick()

	case refreshDoneMsg:
		m.firstLoadDone = true
		m.syncTables()
		return m, nil

	case addDoneMsg:
		if msg.err != nil {
			// Keep the staff's input: reopen the form with the same values
			// and show what went wrong.
			m.formError = m.store.LastError()
			m.form = NewAddForm(m.draftForm)
			m.state = constants.StateAdding
			return m, m.form.Init()
		}
		m.formError = ""
		m.syncTables()
		return m, nil

	case arriveDoneMsg:
		// On failure the store already rolled the field back; either way
		// the snapshot is authoritative now.
		m.syncTables()
		return m, nil
	}

	if m.state == constants.StateAdding {
		return m.updateAdding(msg)
	}
	return m.updateDashboard(msg)
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateDashboard
		m.formError = ""
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		draft := m.draftForm.Draft()
		s := m.store
		m.state = constants.StateDashboard
		cmds = append(cmds, func() tea.Msg {
			return addDoneMsg{err: s.Add(context.Background(), draft)}
		})
	case huh.StateAborted:
		m.state = constants.StateDashboard
		m.formError = ""
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(keyMsg, m.keys.Tab):
		m.moveFocus(1)
		return m, nil

	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		m.tables[m.focus].CursorUp()
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		m.tables[m.focus].CursorDown()
		return m, nil

	case key.Matches(keyMsg, m.keys.Refresh):
		return m, m.refreshCmd()

	case key.Matches(keyMsg, m.keys.Add):
		m.draftForm = NewDraftFormModel()
		m.form = NewAddForm(m.draftForm)
		m.formError = ""
		m.state = constants.StateAdding
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Toggle):
		sel, ok := m.tables[m.focus].Selected()
		if !ok {
			return m, nil
		}
		arrived := !sel.Arrived
		s := m.store
		cmd := func() tea.Msg {
			return arriveDoneMsg{err: s.SetArrived(context.Background(), sel.ID, arrived)}
		}
		// The store flips the field before its network call returns; mirror
		// that in the visible rows so the toggle feels instant. The next
		// snapshot sync reconciles, including any rollback.
		m.patchRow(sel.ID, arrived)
		return m, cmd
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	m.tables[m.focus].Blur()
	m.focus = (m.focus + delta + tableCount) % tableCount
	m.tables[m.focus].Focus()
}

// syncTables re-buckets the store snapshot into the three tables.
func (m *Model) syncTables() {
	lunch, dinner, future := classify.Buckets(m.store.Snapshot(), m.today)
	m.tables[tableLunch].SetRows(lunch)
	m.tables[tableDinner].SetRows(dinner)
	m.tables[tableFuture].SetRows(future)
}

// patchRow updates the arrived flag of a single displayed row without
// waiting for the store round-trip.
func (m *Model) patchRow(id string, arrived bool) {
	for i := range m.tables {
		m.tables[i].SetArrived(id, arrived)
	}
}
