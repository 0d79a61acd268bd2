// Package queueing derives the patient-facing queue position shown for an
// appointment on the desk board.
package queueing

import (
	"strconv"

	"ClinicDesk/models"
)

// Display statuses with no appointment-status counterpart.
const (
	StatusWaiting  = "waiting"
	StatusNotToday = "not_today"
)

// NotTodayNumber is the non-numeric placeholder shown for visits on another
// day; no queue semantics attach to it.
const NotTodayNumber = "-"

// Display is the rendered queue cell: a display number and its sub-status.
type Display struct {
	Number string `json:"number"`
	Status string `json:"status"`
}

// Resolve derives the queue number and status for one appointment. todays is
// the full collection for the current day in load order; today is the
// current date in YYYY-MM-DD form.
//
// Rule order: an explicit queue number on a same-day visit wins; then the
// first entry of the queue assignment list; then a synthesized 1-based
// position among today's appointments; visits on other days get the inactive
// placeholder.
func Resolve(appt models.Appointment, todays []models.Appointment, today string) Display {
	if appt.VisitDate == today && appt.QueueNumber != nil {
		return Display{
			Number: strconv.Itoa(*appt.QueueNumber),
			Status: statusForNumber(appt, *appt.QueueNumber),
		}
	}
	if len(appt.QueueNumbers) > 0 {
		entry := appt.QueueNumbers[0]
		return Display{Number: strconv.Itoa(entry.Number), Status: entry.Status}
	}
	if appt.VisitDate == today {
		for i, other := range todays {
			if other.ID == appt.ID {
				return Display{Number: strconv.Itoa(i + 1), Status: fallbackStatus(appt)}
			}
		}
	}
	return Display{Number: NotTodayNumber, Status: StatusNotToday}
}

// statusForNumber resolves the sub-status for an explicit queue number:
// the explicit status field, then the matching assignment entry, then the
// first assignment entry, then the appointment's own status.
func statusForNumber(appt models.Appointment, number int) string {
	if appt.QueueNumberStatus != "" {
		return appt.QueueNumberStatus
	}
	for _, entry := range appt.QueueNumbers {
		if entry.Number == number {
			return entry.Status
		}
	}
	if len(appt.QueueNumbers) > 0 {
		return appt.QueueNumbers[0].Status
	}
	return fallbackStatus(appt)
}

func fallbackStatus(appt models.Appointment) string {
	if appt.Status != "" {
		return string(appt.Status)
	}
	return StatusWaiting
}
