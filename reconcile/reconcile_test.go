package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClinicDesk/models"
)

func serverAppt(id uint, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		ID:            id,
		PatientID:     "p-1",
		Status:        status,
		PaymentStatus: models.PaymentNone,
		VisitDate:     "2026-09-01",
	}
}

func TestMergeLocalOverrideWins(t *testing.T) {
	server := []models.Appointment{
		serverAppt(1, models.StatusScheduled),
		serverAppt(7, models.StatusQueued),
	}
	localCancel := serverAppt(7, models.StatusCancelled)
	localCancel.CancelReason = "patient called to cancel"
	localCancel.LocallyModified = true

	merged := Merge(server, []models.Appointment{localCancel})
	require.Len(t, merged, 2)
	assert.Equal(t, serverAppt(1, models.StatusScheduled), merged[0])
	assert.Equal(t, models.StatusCancelled, merged[1].Status)
	assert.Equal(t, "patient called to cancel", merged[1].CancelReason)
	assert.True(t, merged[1].LocallyModified)
}

func TestMergeUnflaggedLocalIsIgnored(t *testing.T) {
	server := []models.Appointment{serverAppt(1, models.StatusQueued)}
	stale := serverAppt(1, models.StatusCancelled) // not flagged

	merged := Merge(server, []models.Appointment{stale})
	require.Len(t, merged, 1)
	assert.Equal(t, models.StatusQueued, merged[0].Status)
	assert.False(t, merged[0].LocallyModified)
}

func TestMergeServerOnlyRecordsAppearVerbatim(t *testing.T) {
	server := []models.Appointment{
		serverAppt(1, models.StatusScheduled),
		serverAppt(2, models.StatusQueued),
		serverAppt(3, models.StatusDone),
	}
	merged := Merge(server, nil)
	assert.Equal(t, server, merged)
}

func TestMergeDropsLocalOnlyRecords(t *testing.T) {
	server := []models.Appointment{serverAppt(1, models.StatusScheduled)}
	orphan := serverAppt(99, models.StatusQueued)
	flaggedOrphan := serverAppt(98, models.StatusQueued)
	flaggedOrphan.LocallyModified = true

	merged := Merge(server, []models.Appointment{orphan, flaggedOrphan})
	require.Len(t, merged, 1)
	assert.Equal(t, uint(1), merged[0].ID)
}

func TestMergePreservesServerOrder(t *testing.T) {
	server := []models.Appointment{
		serverAppt(5, models.StatusQueued),
		serverAppt(2, models.StatusQueued),
		serverAppt(9, models.StatusQueued),
	}
	override := serverAppt(2, models.StatusInCabinet)
	override.LocallyModified = true

	merged := Merge(server, []models.Appointment{override})
	require.Len(t, merged, 3)
	assert.Equal(t, []uint{5, 2, 9}, []uint{merged[0].ID, merged[1].ID, merged[2].ID})
	assert.Equal(t, models.StatusInCabinet, merged[1].Status)
}

func TestMergeKeepsServerQueueAssignment(t *testing.T) {
	// The registrar paid locally before the server handed out a queue
	// number; the refresh carries the number and must not lose it.
	withQueue := serverAppt(4, models.StatusQueued)
	n := 12
	withQueue.QueueNumber = &n
	withQueue.QueueNumberStatus = "waiting"

	paid := serverAppt(4, models.StatusQueued)
	paid.PaymentStatus = models.PaymentPaid
	paid.LocallyModified = true

	merged := Merge([]models.Appointment{withQueue}, []models.Appointment{paid})
	require.Len(t, merged, 1)
	assert.Equal(t, models.PaymentPaid, merged[0].PaymentStatus)
	require.NotNil(t, merged[0].QueueNumber)
	assert.Equal(t, 12, *merged[0].QueueNumber)
}

func TestMergeIsPureAndIdempotent(t *testing.T) {
	server := []models.Appointment{
		serverAppt(1, models.StatusScheduled),
		serverAppt(2, models.StatusQueued),
	}
	override := serverAppt(2, models.StatusCancelled)
	override.CancelReason = "weather"
	override.LocallyModified = true
	local := []models.Appointment{override}

	first := Merge(server, local)
	second := Merge(server, local)
	assert.Equal(t, first, second)

	// Inputs are untouched.
	assert.Equal(t, models.StatusQueued, server[1].Status)
	assert.Equal(t, models.StatusCancelled, local[0].Status)

	// Reconciling the merge result against the same server view is a
	// fixpoint: overlapping refreshes can land in any order.
	third := Merge(server, first)
	assert.Equal(t, first, third)
}
