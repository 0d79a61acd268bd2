// Package workflow validates and applies status and payment transitions for
// a single appointment. Apply is pure: it never mutates its input and an
// invalid action returns the appointment unchanged with a typed error.
package workflow

import (
	"strings"
	"time"
	"unicode/utf8"

	"ClinicDesk/apperrors"
	"ClinicDesk/models"
)

// Action is one registrar-triggered transition.
type Action string

const (
	ActionPay        Action = "pay"
	ActionConfirm    Action = "confirm"
	ActionStartVisit Action = "start_visit"
	ActionComplete   Action = "complete"
	ActionCancel     Action = "cancel"
	ActionMarkNoShow Action = "mark_no_show"
	ActionReschedule Action = "reschedule"
)

const (
	cancelReasonMinLen = 3
	cancelReasonMaxLen = 500
)

// Request carries the optional payload of a transition: a free-text reason
// or summary, and the new date for a reschedule.
type Request struct {
	Reason  string
	NewDate string
}

// Result is the outcome of a successful transition. NoOp marks an
// informational outcome that changed nothing, e.g. paying an already-paid
// appointment.
type Result struct {
	Appointment models.Appointment
	NoOp        bool
	Info        string
}

// Apply runs one action against the appointment and returns the updated
// record. Every applied transition marks the record locally modified so the
// next authoritative refresh knows to preserve it.
func Apply(appt models.Appointment, action Action, req Request) (Result, error) {
	switch action {
	case ActionPay:
		return applyPay(appt)
	case ActionConfirm:
		return applyConfirm(appt)
	case ActionStartVisit:
		return applyStartVisit(appt)
	case ActionComplete:
		return applyComplete(appt, req)
	case ActionCancel:
		return applyCancel(appt, req)
	case ActionMarkNoShow:
		return applyMarkNoShow(appt, req)
	case ActionReschedule:
		return applyReschedule(appt, req)
	}
	return Result{Appointment: appt}, &apperrors.InvalidTransitionError{
		Action: string(action),
		Status: string(appt.Status),
	}
}

// applyPay settles payment and moves the appointment into the visible
// queue. Paying twice is an informational no-op, not an error. A terminal
// appointment cannot be paid back into the queue.
func applyPay(appt models.Appointment) (Result, error) {
	if appt.Status.Terminal() {
		return invalid(appt, ActionPay)
	}
	if appt.PaymentStatus == models.PaymentPaid {
		return Result{Appointment: appt, NoOp: true, Info: "appointment is already paid"}, nil
	}
	appt.PaymentStatus = models.PaymentPaid
	appt.Status = models.StatusQueued
	return markModified(appt, "paid"), nil
}

func applyConfirm(appt models.Appointment) (Result, error) {
	if appt.Status != models.StatusScheduled {
		return invalid(appt, ActionConfirm)
	}
	appt.Status = models.StatusConfirmed
	return markModified(appt, "confirmed"), nil
}

func applyStartVisit(appt models.Appointment) (Result, error) {
	switch appt.Status {
	case models.StatusQueued, models.StatusConfirmed, models.StatusWaiting:
		appt.Status = models.StatusInCabinet
		return markModified(appt, "visit started"), nil
	}
	return invalid(appt, ActionStartVisit)
}

func applyComplete(appt models.Appointment, req Request) (Result, error) {
	switch appt.Status {
	case models.StatusInCabinet, models.StatusCalled:
		appt.Status = models.StatusDone
		appt.VisitSummary = strings.TrimSpace(req.Reason)
		return markModified(appt, "visit completed"), nil
	}
	return invalid(appt, ActionComplete)
}

func applyCancel(appt models.Appointment, req Request) (Result, error) {
	if appt.Status == models.StatusDone || appt.Status == models.StatusCancelled {
		return invalid(appt, ActionCancel)
	}
	reason := strings.TrimSpace(req.Reason)
	if n := utf8.RuneCountInString(reason); n < cancelReasonMinLen || n > cancelReasonMaxLen {
		return Result{Appointment: appt}, &apperrors.ValidationError{
			Field:   "reason",
			Message: "cancellation reason must be between 3 and 500 characters",
		}
	}
	appt.Status = models.StatusCancelled
	appt.CancelReason = reason
	return markModified(appt, reason), nil
}

func applyMarkNoShow(appt models.Appointment, req Request) (Result, error) {
	switch appt.Status {
	case models.StatusQueued, models.StatusWaiting, models.StatusConfirmed:
		appt.Status = models.StatusNoShow
		appt.CancelReason = strings.TrimSpace(req.Reason)
		return markModified(appt, "marked no-show"), nil
	}
	return invalid(appt, ActionMarkNoShow)
}

func applyReschedule(appt models.Appointment, req Request) (Result, error) {
	if appt.Status == models.StatusDone || appt.Status == models.StatusInCabinet {
		return invalid(appt, ActionReschedule)
	}
	if _, err := time.Parse("2006-01-02", req.NewDate); err != nil {
		return Result{Appointment: appt}, &apperrors.ValidationError{
			Field:   "new_date",
			Message: "new date must be a valid calendar date in YYYY-MM-DD form",
		}
	}
	appt.VisitDate = req.NewDate
	return markModified(appt, "rescheduled to "+req.NewDate), nil
}

func markModified(appt models.Appointment, pendingReason string) Result {
	appt.LocallyModified = true
	appt.PendingReason = pendingReason
	return Result{Appointment: appt}
}

func invalid(appt models.Appointment, action Action) (Result, error) {
	return Result{Appointment: appt}, &apperrors.InvalidTransitionError{
		Action: string(action),
		Status: string(appt.Status),
	}
}
