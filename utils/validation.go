package utils

import (
	"ClinicDesk/apperrors"
	"ClinicDesk/models"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^\d{2}:\d{2}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// ValidatePatientInput validates a patient record coming from the
// registration form.
func ValidatePatientInput(patient models.Patient) error {
	err := validation.ValidateStruct(&patient,
		validation.Field(&patient.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.DateOfBirth, validation.Required, validation.Match(datePattern)),
		validation.Field(&patient.Phone, validation.Match(phonePattern)),
	)
	if err != nil {
		return &apperrors.ValidationError{Field: "patient", Message: err.Error()}
	}
	return nil
}

// ValidateCart checks the checkout preconditions: at least one line item,
// positive quantities, a visit date on every line, and an assigned provider
// for every service that requires one.
func ValidateCart(cart models.Cart, services map[uint]models.ClinicService) error {
	if len(cart.Items) == 0 {
		return &apperrors.ValidationError{Field: "items", Message: "cart must contain at least one line item"}
	}
	for _, item := range cart.Items {
		if err := validation.ValidateStruct(&item,
			validation.Field(&item.ServiceID, validation.Required),
			validation.Field(&item.Quantity, validation.Required, validation.Min(1)),
			validation.Field(&item.VisitDate, validation.Required, validation.Match(datePattern)),
			validation.Field(&item.VisitTime, validation.Match(timePattern)),
		); err != nil {
			return &apperrors.ValidationError{Field: "items", Message: err.Error()}
		}
		service, ok := services[item.ServiceID]
		if !ok {
			// Missing catalog reference is a warning at pricing time, not a
			// checkout blocker.
			continue
		}
		if service.RequiresProvider && (item.DoctorID == nil || *item.DoctorID == "") {
			return &apperrors.ValidationError{
				Field:   "items",
				Message: "service " + service.Name + " requires an assigned provider",
			}
		}
	}
	return nil
}
