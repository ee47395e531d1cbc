// Package store owns the in-memory reservation set for the lifetime of a
// dashboard session. All mutation goes through it; readers only ever see
// snapshots. The sheet remains the system of record; on any doubt the
// answer is another Refresh.
package store

import (
	"context"
	"sync"

	"github.com/solterra/reservas/internal/logger"
	"github.com/solterra/reservas/internal/models"
)

// Remote is the slice of the sheets client the store needs.
type Remote interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Create(ctx context.Context, draft models.Draft) error
	SetArrived(ctx context.Context, id string, arrived bool) error
}

// User-facing messages, kept in the staff's language like the rest of the
// dashboard surface.
const (
	msgLoadFailed   = "No se pudieron cargar las reservas. Verifica la URL del script y los permisos."
	msgSaveFailed   = "No se pudo guardar la reserva. Por favor, inténtalo de nuevo."
	msgUpdateFailed = "No se pudo actualizar el estado de la reserva."
)

type Store struct {
	remote Remote

	mu      sync.Mutex
	current []models.Reservation
	loading bool
	lastErr string

	// Refresh fencing: a completed list call is applied only if no newer
	// refresh was issued after it, so a slow stale response can never
	// overwrite a fresher reservation set.
	issuedSeq  uint64
	appliedSeq uint64
}

func New(remote Remote) *Store {
	return &Store{remote: remote}
}

// Refresh replaces the reservation set wholesale from the sheet. On failure
// the last known-good set is kept and LastError carries a user-facing
// message. Concurrent calls are safe; whichever was issued last wins.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.issuedSeq++
	seq := s.issuedSeq
	s.mu.Unlock()

	records, err := s.remote.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		logger.Error("refresh failed", "error", err)
		s.lastErr = msgLoadFailed
		return err
	}
	if seq < s.appliedSeq {
		// A refresh issued after this one already landed.
		logger.Debug("discarding stale refresh", "seq", seq, "applied", s.appliedSeq)
		return nil
	}
	s.current = records
	s.appliedSeq = seq
	s.lastErr = ""
	return nil
}

// Add sends a draft to the sheet and, on success, refreshes so the new row
// shows up with its sheet-assigned id. On failure the error propagates and
// the caller's draft is untouched, so a form can keep its input. A failed
// post-add refresh does not fail the Add: the row was saved, and the refresh
// failure surfaces through LastError like any other.
func (s *Store) Add(ctx context.Context, draft models.Draft) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	if err := s.remote.Create(ctx, draft); err != nil {
		logger.Error("add failed", "error", err, "nombre", draft.Nombre)
		s.mu.Lock()
		s.loading = false
		s.lastErr = msgSaveFailed
		s.mu.Unlock()
		return err
	}

	_ = s.Refresh(ctx)
	return nil
}

// SetArrived optimistically flips the arrived flag on the matching record,
// then confirms with the sheet. On failure only that one field is rolled
// back, so concurrent edits to other records are never clobbered.
func (s *Store) SetArrived(ctx context.Context, id string, arrived bool) error {
	s.mu.Lock()
	prior, found := s.setArrivedLocked(id, arrived)
	s.mu.Unlock()

	if err := s.remote.SetArrived(ctx, id, arrived); err != nil {
		logger.Error("status update failed", "error", err, "id", id)
		s.mu.Lock()
		if found {
			s.setArrivedLocked(id, prior)
		}
		s.lastErr = msgUpdateFailed
		s.mu.Unlock()
		return err
	}
	return nil
}

// setArrivedLocked mutates the arrived flag of the record with the given id
// and reports its prior value. Callers hold s.mu.
func (s *Store) setArrivedLocked(id string, arrived bool) (prior bool, found bool) {
	for i := range s.current {
		if s.current[i].ID == id {
			prior = s.current[i].Arrived
			s.current[i].Arrived = arrived
			return prior, true
		}
	}
	return false, false
}

// Snapshot returns a copy of the current reservation set.
func (s *Store) Snapshot() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Reservation, len(s.current))
	copy(out, s.current)
	return out
}

// Loading reports whether a refresh or add is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the user-facing message for the most recent failure,
// or "" when the last operation succeeded.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
