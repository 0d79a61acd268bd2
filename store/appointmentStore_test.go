package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClinicDesk/cache"
	"ClinicDesk/models"
)

func testCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewCacheWithClient(client)
}

func appt(id uint, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{ID: id, Status: status, PaymentStatus: models.PaymentNone, VisitDate: "2026-09-01"}
}

func TestRefreshMergesOptimisticEdit(t *testing.T) {
	s := NewAppointmentStore(nil)
	s.Refresh(context.Background(), []models.Appointment{appt(1, models.StatusScheduled), appt(2, models.StatusQueued)})

	cancelled := appt(2, models.StatusCancelled)
	cancelled.LocallyModified = true
	s.ApplyLocal(cancelled)

	// Server has not caught up yet; the refresh must not undo the cancel.
	s.Refresh(context.Background(), []models.Appointment{appt(1, models.StatusScheduled), appt(2, models.StatusQueued)})

	got, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, models.StatusCancelled, got.Status)
	assert.True(t, got.LocallyModified)
}

func TestMarkSavedLetsServerWin(t *testing.T) {
	s := NewAppointmentStore(nil)
	s.Refresh(context.Background(), []models.Appointment{appt(2, models.StatusQueued)})

	cancelled := appt(2, models.StatusCancelled)
	cancelled.LocallyModified = true
	s.ApplyLocal(cancelled)
	s.MarkSaved(cancelled)

	// Once the write is confirmed the server view is authoritative again.
	s.Refresh(context.Background(), []models.Appointment{appt(2, models.StatusCancelled)})
	got, ok := s.Get(2)
	require.True(t, ok)
	assert.False(t, got.LocallyModified)
}

func TestSnapshotReturnsCopy(t *testing.T) {
	s := NewAppointmentStore(nil)
	s.Refresh(context.Background(), []models.Appointment{appt(1, models.StatusScheduled)})

	snap := s.Snapshot()
	snap[0].Status = models.StatusDone

	got, _ := s.Get(1)
	assert.Equal(t, models.StatusScheduled, got.Status)
}

func TestDegradedFlagLifecycle(t *testing.T) {
	s := NewAppointmentStore(nil)
	s.Refresh(context.Background(), []models.Appointment{appt(1, models.StatusScheduled)})

	s.MarkDegraded()
	assert.True(t, s.Degraded())
	assert.Len(t, s.Snapshot(), 1, "degraded store keeps last-known-good data")

	s.Refresh(context.Background(), []models.Appointment{appt(1, models.StatusScheduled)})
	assert.False(t, s.Degraded())
}

func TestSnapshotSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	c := testCache(t)

	s := NewAppointmentStore(c)
	s.Refresh(ctx, []models.Appointment{appt(1, models.StatusScheduled), appt(2, models.StatusQueued)})

	restarted := NewAppointmentStore(c)
	require.NoError(t, restarted.Restore(ctx))
	assert.Len(t, restarted.Snapshot(), 2)
	assert.True(t, restarted.Degraded(), "restored snapshot is stale until a refresh succeeds")
}

func TestRestoreWithEmptyCache(t *testing.T) {
	s := NewAppointmentStore(testCache(t))
	require.NoError(t, s.Restore(context.Background()))
	assert.Empty(t, s.Snapshot())
}

func TestApplyLocalAppendsNewRecords(t *testing.T) {
	s := NewAppointmentStore(nil)
	created := appt(10, models.StatusScheduled)
	s.ApplyLocal(created)

	got, ok := s.Get(10)
	require.True(t, ok)
	assert.Equal(t, created, got)
}
