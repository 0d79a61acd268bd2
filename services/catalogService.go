package services

import (
	"context"

	"ClinicDesk/apperrors"
	"ClinicDesk/models"
	"ClinicDesk/repositories"
	"ClinicDesk/visits"
)

// CatalogService serves the service and provider catalogs in the shapes the
// booking UI consumes.
type CatalogService struct {
	services *repositories.ServiceRepository
	doctors  *repositories.DoctorRepository
}

func NewCatalogService(services *repositories.ServiceRepository, doctors *repositories.DoctorRepository) *CatalogService {
	return &CatalogService{services: services, doctors: doctors}
}

// ServicesByDepartment returns the catalog grouped by department tag.
func (s *CatalogService) ServicesByDepartment(ctx context.Context) (map[models.DepartmentTag][]models.ClinicService, error) {
	services, err := s.services.GetAll(ctx)
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "load service catalog", Err: err}
	}
	grouped := make(map[models.DepartmentTag][]models.ClinicService)
	for _, service := range services {
		tag := visits.ClassifyDepartment(&service)
		grouped[tag] = append(grouped[tag], service)
	}
	return grouped, nil
}

// Doctors returns the provider catalog.
func (s *CatalogService) Doctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.doctors.GetAll(ctx)
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "load doctors", Err: err}
	}
	return doctors, nil
}
