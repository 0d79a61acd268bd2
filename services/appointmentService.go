package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"ClinicDesk/apperrors"
	"ClinicDesk/models"
	"ClinicDesk/queueing"
	"ClinicDesk/repositories"
	"ClinicDesk/store"
	"ClinicDesk/workflow"
)

// AppointmentService owns the refresh cycle and applies all
// status-transition actions. Transitions are optimistic: the desk store is
// updated first, then the write is persisted; a failed write leaves the
// optimistic record flagged for the next reconciliation and surfaces a
// retryable error.
type AppointmentService struct {
	repository *repositories.AppointmentRepository
	deskStore  *store.AppointmentStore
	fetchLimit int
}

func NewAppointmentService(repository *repositories.AppointmentRepository, deskStore *store.AppointmentStore, fetchLimit int) *AppointmentService {
	return &AppointmentService{repository: repository, deskStore: deskStore, fetchLimit: fetchLimit}
}

// Collection returns the post-reconciliation collection plus the degraded
// flag ("offline/demo" indicator).
func (s *AppointmentService) Collection() ([]models.Appointment, bool) {
	return s.deskStore.Snapshot(), s.deskStore.Degraded()
}

// Refresh pulls the authoritative collection and reconciles it into the
// desk store. A failed read never blanks the collection: the store keeps
// its last-known-good snapshot and is marked degraded.
func (s *AppointmentService) Refresh(ctx context.Context) error {
	server, err := s.repository.GetAll(ctx, s.fetchLimit)
	if err != nil {
		s.deskStore.MarkDegraded()
		return &apperrors.NetworkError{Op: "refresh appointments", Err: err}
	}
	s.deskStore.Refresh(ctx, server)
	return nil
}

// StartRefreshLoop refreshes the collection on a fixed interval until ctx
// is cancelled. Overlap with manual refreshes is harmless: every refresh is
// an idempotent full replace.
func (s *AppointmentService) StartRefreshLoop(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					log.Printf("Periodic refresh failed, serving last-known-good: %v", err)
				}
			}
		}
	}()
}

// Transition applies one state-machine action to the appointment.
func (s *AppointmentService) Transition(ctx context.Context, id uint, action workflow.Action, req workflow.Request) (*workflow.Result, error) {
	appt, ok := s.deskStore.Get(id)
	if !ok {
		loaded, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return nil, &apperrors.NetworkError{Op: "load appointment", Err: err}
		}
		if loaded == nil {
			return nil, &apperrors.NotFoundError{Kind: "appointment", Ref: itoa(id)}
		}
		appt = *loaded
	}

	result, err := workflow.Apply(appt, action, req)
	if err != nil {
		return nil, err
	}
	if result.NoOp {
		return &result, nil
	}

	// Optimistic update first, so the desk reflects the action immediately.
	s.deskStore.ApplyLocal(result.Appointment)

	persisted := result.Appointment
	if err := s.repository.Update(ctx, &persisted); err != nil {
		// No automatic retry: the registrar re-triggers the action, and the
		// flagged record survives the next refresh meanwhile.
		return &result, &apperrors.NetworkError{Op: string(action), Err: err}
	}
	s.deskStore.MarkSaved(result.Appointment)
	return &result, nil
}

// QueueBoardEntry is one row of the department queue board.
type QueueBoardEntry struct {
	Appointment models.Appointment   `json:"appointment"`
	Queue       queueing.Display     `json:"queue"`
	Cost        workflow.CostDisplay `json:"cost"`
}

// QueueBoard resolves queue positions for every appointment on the given
// day, optionally filtered by department.
func (s *AppointmentService) QueueBoard(date string, department models.DepartmentTag) []QueueBoardEntry {
	snapshot := s.deskStore.Snapshot()
	todays := make([]models.Appointment, 0, len(snapshot))
	for _, appt := range snapshot {
		if appt.VisitDate == date {
			todays = append(todays, appt)
		}
	}

	entries := make([]QueueBoardEntry, 0, len(todays))
	for _, appt := range todays {
		if department != "" && appt.Department != department {
			continue
		}
		entries = append(entries, QueueBoardEntry{
			Appointment: appt,
			Queue:       queueing.Resolve(appt, todays, date),
			Cost:        workflow.DisplayCost(appt),
		})
	}
	return entries
}

// CallNext calls the first waiting paid appointment of the department into
// the cabinet queue. The board is the producer of the "called" status that
// the state machine accepts complete() from.
func (s *AppointmentService) CallNext(ctx context.Context, date string, department models.DepartmentTag) (*models.Appointment, error) {
	snapshot := s.deskStore.Snapshot()
	for _, appt := range snapshot {
		if appt.VisitDate != date || appt.Department != department {
			continue
		}
		if appt.Status != models.StatusQueued && appt.Status != models.StatusWaiting {
			continue
		}
		appt.Status = models.StatusCalled
		appt.QueueNumberStatus = "called"
		appt.LocallyModified = true
		appt.PendingReason = "called to cabinet"
		s.deskStore.ApplyLocal(appt)

		persisted := appt
		if err := s.repository.Update(ctx, &persisted); err != nil {
			return &appt, &apperrors.NetworkError{Op: "call next", Err: err}
		}
		s.deskStore.MarkSaved(appt)
		return &appt, nil
	}
	return nil, &apperrors.NotFoundError{Kind: "queued appointment", Ref: string(department)}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
