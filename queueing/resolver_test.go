package queueing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ClinicDesk/models"
)

const today = "2026-08-30"

func intPtr(n int) *int { return &n }

func TestResolveExplicitNumberWithExplicitStatus(t *testing.T) {
	appt := models.Appointment{
		ID:                1,
		VisitDate:         today,
		QueueNumber:       intPtr(5),
		QueueNumberStatus: "called",
	}
	got := Resolve(appt, []models.Appointment{appt}, today)
	assert.Equal(t, Display{Number: "5", Status: "called"}, got)
}

func TestResolveExplicitNumberStatusFromMatchingEntry(t *testing.T) {
	appt := models.Appointment{
		ID:          1,
		VisitDate:   today,
		QueueNumber: intPtr(5),
		QueueNumbers: []models.QueueEntry{
			{Number: 3, Status: "served"},
			{Number: 5, Status: "waiting"},
		},
	}
	got := Resolve(appt, nil, today)
	assert.Equal(t, Display{Number: "5", Status: "waiting"}, got)
}

func TestResolveExplicitNumberFallsBackToFirstEntry(t *testing.T) {
	appt := models.Appointment{
		ID:          1,
		VisitDate:   today,
		QueueNumber: intPtr(9),
		QueueNumbers: []models.QueueEntry{
			{Number: 3, Status: "served"},
		},
	}
	got := Resolve(appt, nil, today)
	assert.Equal(t, Display{Number: "9", Status: "served"}, got)
}

func TestResolveExplicitNumberFallsBackToOwnStatus(t *testing.T) {
	appt := models.Appointment{
		ID:          1,
		VisitDate:   today,
		Status:      models.StatusQueued,
		QueueNumber: intPtr(2),
	}
	got := Resolve(appt, nil, today)
	assert.Equal(t, Display{Number: "2", Status: "queued"}, got)
}

func TestResolveExplicitNumberDefaultsToWaiting(t *testing.T) {
	appt := models.Appointment{ID: 1, VisitDate: today, QueueNumber: intPtr(2)}
	got := Resolve(appt, nil, today)
	assert.Equal(t, Display{Number: "2", Status: StatusWaiting}, got)
}

func TestResolveFirstAssignmentWhenNoExplicitNumber(t *testing.T) {
	appt := models.Appointment{
		ID:        1,
		VisitDate: today,
		QueueNumbers: []models.QueueEntry{
			{Number: 4, Status: "called"},
			{Number: 8, Status: "waiting"},
		},
	}
	got := Resolve(appt, nil, today)
	assert.Equal(t, Display{Number: "4", Status: "called"}, got)
}

func TestResolveSynthesizesPositionForToday(t *testing.T) {
	todays := []models.Appointment{
		{ID: 10, VisitDate: today},
		{ID: 11, VisitDate: today, Status: models.StatusQueued},
		{ID: 12, VisitDate: today},
	}
	got := Resolve(todays[1], todays, today)
	assert.Equal(t, Display{Number: "2", Status: "queued"}, got)
}

func TestResolveNotToday(t *testing.T) {
	appt := models.Appointment{ID: 1, VisitDate: "2026-09-15", Status: models.StatusScheduled}
	got := Resolve(appt, nil, today)
	assert.Equal(t, Display{Number: NotTodayNumber, Status: StatusNotToday}, got)
}

func TestResolveTodayButAbsentFromCollection(t *testing.T) {
	appt := models.Appointment{ID: 99, VisitDate: today}
	got := Resolve(appt, []models.Appointment{{ID: 1, VisitDate: today}}, today)
	assert.Equal(t, Display{Number: NotTodayNumber, Status: StatusNotToday}, got)
}
