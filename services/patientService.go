package services

import (
	"context"
	"errors"

	"ClinicDesk/apperrors"
	"ClinicDesk/models"
	"ClinicDesk/repositories"
	"ClinicDesk/utils"
)

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

// Search matches patients by free-text query or phone prefix.
func (s *PatientService) Search(ctx context.Context, query string, limit int) ([]models.Patient, error) {
	if query == "" {
		return nil, &apperrors.ValidationError{Field: "query", Message: "search query must not be empty"}
	}
	patients, err := s.repository.Search(ctx, query, limit)
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "search patients", Err: err}
	}
	return patients, nil
}

// Create registers a new patient. A duplicate phone is recovered by
// returning the existing match instead of failing outward; the second
// return value reports whether the patient already existed.
func (s *PatientService) Create(ctx context.Context, patient *models.Patient) (*models.Patient, bool, error) {
	if err := utils.ValidatePatientInput(*patient); err != nil {
		return nil, false, err
	}
	err := s.repository.Create(ctx, patient)
	if err == nil {
		return patient, false, nil
	}
	var conflict *apperrors.ConflictError
	if errors.As(err, &conflict) {
		if existing, ok := conflict.Existing.(*models.Patient); ok {
			return existing, true, nil
		}
		return nil, false, err
	}
	return nil, false, &apperrors.NetworkError{Op: "create patient", Err: err}
}

// GetByID loads one patient record.
func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "load patient", Err: err}
	}
	if patient == nil {
		return nil, &apperrors.NotFoundError{Kind: "patient", Ref: id}
	}
	return patient, nil
}

// UpdateContact updates the only mutable fields of a linked patient.
func (s *PatientService) UpdateContact(ctx context.Context, id, phone, address string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repository.UpdateContact(ctx, id, phone, address); err != nil {
		return &apperrors.NetworkError{Op: "update patient contact", Err: err}
	}
	return nil
}
