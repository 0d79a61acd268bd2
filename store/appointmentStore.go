// Package store owns the desk-session appointment collection. It is the
// only shared mutable resource: everything else reads copies, and all
// mutation goes through ApplyLocal (optimistic edits), MarkSaved (confirmed
// writes) and Refresh (authoritative replaces run through reconciliation).
package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"ClinicDesk/cache"
	"ClinicDesk/models"
	"ClinicDesk/reconcile"
)

const (
	snapshotCacheKey = "desk_snapshot_cache"
	snapshotExpiry   = 24 * time.Hour
)

// AppointmentStore holds the current reconciled collection plus a degraded
// flag that marks the collection as a last-known-good snapshot after a
// failed refresh.
type AppointmentStore struct {
	mu           sync.RWMutex
	appointments []models.Appointment
	degraded     bool
	cache        *cache.Cache
}

// NewAppointmentStore creates an empty store. cache may be nil; then no
// snapshot is persisted across restarts.
func NewAppointmentStore(cache *cache.Cache) *AppointmentStore {
	return &AppointmentStore{cache: cache}
}

// Snapshot returns a copy of the current collection. Callers never see the
// backing slice.
func (s *AppointmentStore) Snapshot() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// Get returns the appointment with the given id, if present.
func (s *AppointmentStore) Get(id uint) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, appt := range s.appointments {
		if appt.ID == id {
			return appt, true
		}
	}
	return models.Appointment{}, false
}

// Refresh replaces the collection with the server view merged against any
// unsaved local edits. It is an idempotent full replace, so overlapping
// refreshes may complete in any order. A successful refresh clears the
// degraded flag and persists the snapshot.
func (s *AppointmentStore) Refresh(ctx context.Context, server []models.Appointment) {
	s.mu.Lock()
	s.appointments = reconcile.Merge(server, s.appointments)
	s.degraded = false
	snapshot := make([]models.Appointment, len(s.appointments))
	copy(snapshot, s.appointments)
	s.mu.Unlock()

	s.persistSnapshot(ctx, snapshot)
}

// ApplyLocal stores an optimistic mutation. New records (fresh checkout
// results) are appended; existing ones are replaced in place.
func (s *AppointmentStore) ApplyLocal(appt models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == appt.ID {
			s.appointments[i] = appt
			return
		}
	}
	s.appointments = append(s.appointments, appt)
}

// MarkSaved records that the server confirmed a write: the modification
// markers are cleared so the next refresh takes the server version.
func (s *AppointmentStore) MarkSaved(appt models.Appointment) {
	appt.LocallyModified = false
	appt.PendingReason = ""
	s.ApplyLocal(appt)
}

// MarkDegraded flags the collection as a stale last-known-good snapshot
// after a failed refresh. The collection itself is kept, never blanked.
func (s *AppointmentStore) MarkDegraded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.degraded = true
}

// Degraded reports whether the collection is a stale snapshot.
func (s *AppointmentStore) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// Restore loads the persisted snapshot, if any. Called once at startup so a
// restart during a backend outage still serves last-known-good data; the
// restored collection starts out degraded until a refresh succeeds.
func (s *AppointmentStore) Restore(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, snapshotCacheKey)
	if err != nil || raw == "" {
		return err
	}
	var appointments []models.Appointment
	if err := json.Unmarshal([]byte(raw), &appointments); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = appointments
	s.degraded = true
	return nil
}

func (s *AppointmentStore) persistSnapshot(ctx context.Context, snapshot []models.Appointment) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("Failed to marshal desk snapshot: %v", err)
		return
	}
	if err := s.cache.Set(ctx, snapshotCacheKey, raw, snapshotExpiry); err != nil {
		log.Printf("Failed to persist desk snapshot: %v", err)
	}
}
