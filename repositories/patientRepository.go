package repositories

import (
	"ClinicDesk/apperrors"
	"ClinicDesk/cache"
	"ClinicDesk/database"
	"ClinicDesk/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 24 * time.Hour
)

type PatientRepository struct {
	cache *cache.Cache
}

func NewPatientRepository(cache *cache.Cache) *PatientRepository {
	return &PatientRepository{cache: cache}
}

// Create inserts a new patient. A duplicate phone is reported as a
// ConflictError carrying the existing record, so the caller can link the
// appointment to it instead of failing outward.
func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	if patient.Phone != "" {
		existing, err := r.FindByPhone(ctx, patient.Phone)
		if err != nil {
			return err
		}
		if existing != nil {
			return &apperrors.ConflictError{Kind: "patient", Ref: patient.Phone, Existing: existing}
		}
	}
	if err := database.DB.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	if err := r.cache.DeleteAll(ctx, "patients_cache*"); err != nil {
		log.Printf("Failed to invalidate patients cache: %v", err)
	}
	return nil
}

// GetByID loads one patient.
func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(id)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatient != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err = database.DB.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

// FindByPhone returns the patient registered with the exact phone, or nil.
func (r *PatientRepository) FindByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	var patient models.Patient
	err := database.DB.WithContext(ctx).First(&patient, "phone = ?", phone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find patient by phone: %w", err)
	}
	return &patient, nil
}

// Search matches patients by free-text name fragments or phone prefix.
// Search results are not cached: the query space is unbounded.
func (r *PatientRepository) Search(ctx context.Context, query string, limit int) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + query + "%"
	var patients []models.Patient
	err := database.DB.WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR middle_name ILIKE ? OR phone LIKE ?",
			pattern, pattern, pattern, query+"%").
		Order("last_name ASC, first_name ASC").
		Limit(limit).
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	return patients, nil
}

// UpdateContact updates the mutable contact fields. Identity fields are
// immutable once the patient is linked to an appointment.
func (r *PatientRepository) UpdateContact(ctx context.Context, id, phone, address string) error {
	err := database.DB.WithContext(ctx).Model(&models.Patient{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"phone": phone, "address": address}).Error
	if err != nil {
		return fmt.Errorf("failed to update patient contact: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
		log.Printf("Failed to delete patient cache: %v", err)
	}
	return nil
}

func (r *PatientRepository) getPatientCacheKey(id string) string {
	return fmt.Sprintf("patient_cache:%s", id)
}
