package services

import (
	"context"
	"time"

	"ClinicDesk/apperrors"
	"ClinicDesk/models"
	"ClinicDesk/pricing"
	"ClinicDesk/repositories"
	"ClinicDesk/store"
	"ClinicDesk/utils"
	"ClinicDesk/visits"
)

// CheckoutService turns a validated cart into one appointment per visit
// group and records the result in the desk store.
type CheckoutService struct {
	appointments *repositories.AppointmentRepository
	patients     *repositories.PatientRepository
	catalog      *repositories.ServiceRepository
	deskStore    *store.AppointmentStore
}

func NewCheckoutService(
	appointments *repositories.AppointmentRepository,
	patients *repositories.PatientRepository,
	catalog *repositories.ServiceRepository,
	deskStore *store.AppointmentStore,
) *CheckoutService {
	return &CheckoutService{
		appointments: appointments,
		patients:     patients,
		catalog:      catalog,
		deskStore:    deskStore,
	}
}

// CheckoutResult is the outcome of one checkout: the created appointments,
// the cart total, and any data-integrity warnings from pricing.
type CheckoutResult struct {
	Appointments []models.Appointment `json:"appointments"`
	Total        int64                `json:"total"`
	Warnings     []string             `json:"warnings,omitempty"`
}

// Checkout validates the cart, prices it, groups it into visits and creates
// one appointment per visit. All created rows share one invoice when the
// cart produced more than one visit; each row still carries its own
// itemized cost.
func (s *CheckoutService) Checkout(ctx context.Context, cart models.Cart) (*CheckoutResult, error) {
	cart.DiscountMode = models.NormalizeDiscountMode(string(cart.DiscountMode), cart.AllFree)

	patient, err := s.patients.GetByID(ctx, cart.PatientID)
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "load patient", Err: err}
	}
	if patient == nil {
		return nil, &apperrors.NotFoundError{Kind: "patient", Ref: cart.PatientID}
	}

	services, err := s.catalog.GetMap(ctx)
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "load service catalog", Err: err}
	}
	if err := utils.ValidateCart(cart, services); err != nil {
		return nil, err
	}

	total, warnings := pricing.ComputeCartTotal(cart, services)
	groups := visits.GroupCart(cart, services)

	appointments := make([]models.Appointment, 0, len(groups))
	for _, group := range groups {
		appointments = append(appointments, s.buildAppointment(cart, group, services, total, len(groups) > 1))
	}

	created, err := s.appointments.CreateBatch(ctx, appointments)
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "create appointments", Err: err}
	}
	for _, appt := range created {
		s.deskStore.MarkSaved(appt)
	}
	return &CheckoutResult{Appointments: created, Total: total, Warnings: warnings}, nil
}

func (s *CheckoutService) buildAppointment(
	cart models.Cart,
	group models.VisitGroup,
	services map[uint]models.ClinicService,
	cartTotal int64,
	shared bool,
) models.Appointment {
	var groupCost int64
	for _, item := range group.Items {
		var service *models.ClinicService
		if sv, ok := services[item.ServiceID]; ok {
			service = &sv
		}
		groupCost += pricing.ComputeLineTotal(item, service, cart.DiscountMode)
	}
	return models.Appointment{
		PatientID:        cart.PatientID,
		DoctorID:         group.DoctorID,
		Department:       group.Department,
		VisitDate:        group.VisitDate,
		VisitTime:        group.VisitTime,
		Status:           models.StatusScheduled,
		PaymentStatus:    models.PaymentNone,
		Cost:             float64(groupCost),
		InvoiceAmount:    float64(cartTotal),
		HasSharedInvoice: shared,
		DiscountMode:     cart.DiscountMode,
		Notes:            cart.Notes,
		CreatedAt:        time.Now(),
	}
}
