package repositories

import (
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
	AppointmentCacheExpiry = 1 * time.Hour
	appointmentsCachePfx   = "appointments_cache"
)

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

// withLock runs fn under a Redis write lock for the appointment, retrying
// acquisition a few times before giving up.
func (r *AppointmentRepository) withLock(ctx context.Context, id uint, fn func() error) error {
	lockKey := fmt.Sprintf("appointment_lock:%d", id)
	lockValue := uuid.New().String()
	maxRetries := 3
	retryDelay := 500 * time.Millisecond
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()
	return fn()
}

// CreateBatch inserts the appointments produced by one checkout in a single
// transaction, so a failed visit never leaves a partial cart behind.
func (r *AppointmentRepository) CreateBatch(ctx context.Context, appointments []models.Appointment) ([]models.Appointment, error) {
	for i := range appointments {
		if !appointments[i].Status.Valid() {
			return nil, fmt.Errorf("invalid status value %q", appointments[i].Status)
		}
	}
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range appointments {
			if err := tx.Create(&appointments[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create appointments: %w", err)
	}
	if err := r.invalidateCollectionCache(ctx); err != nil {
		log.Printf("Failed to invalidate appointments cache: %v", err)
	}
	return appointments, nil
}

// GetByID loads one appointment with its patient and doctor display fields.
func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getAppointmentCacheKey(id)
	cachedAppointment, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedAppointment != "" {
		var appointment models.Appointment
		if err := json.Unmarshal([]byte(cachedAppointment), &appointment); err == nil {
			return &appointment, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	err = database.DB.WithContext(ctx).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, first_name, middle_name, last_name, phone, date_of_birth")
		}).
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, first_name, last_name, specialty, cabinet")
		}).
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	appointmentJSON, err := json.Marshal(appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointment: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}

	return &appointment, nil
}

// GetAll returns the appointment collection in creation order, capped at
// limit when limit is positive. Creation order is what the queue resolver
// uses to synthesize positions, so it must be stable across refreshes.
func (r *AppointmentRepository) GetAll(ctx context.Context, limit int) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("%s:%d", appointmentsCachePfx, limit)
	cachedAppointments, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedAppointments != "" {
		var appointments []models.Appointment
		if err := json.Unmarshal([]byte(cachedAppointments), &appointments); err == nil {
			return appointments, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get appointments from cache: %v", err)
	}

	query := database.DB.WithContext(ctx).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, first_name, middle_name, last_name, phone, date_of_birth")
		}).
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, first_name, last_name, specialty, cabinet")
		}).
		Order("created_at ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all appointments: %w", err)
	}

	appointmentsJSON, err := json.Marshal(appointments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointments: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentsJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointments in cache: %v", err)
	}

	return appointments, nil
}

// Update persists a transitioned appointment under a write lock. There is no
// Delete: cancellation is a status, not a removal.
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if !appointment.Status.Valid() {
		return fmt.Errorf("invalid status value %q", appointment.Status)
	}
	return r.withLock(ctx, appointment.ID, func() error {
		if err := database.DB.WithContext(ctx).Save(appointment).Error; err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}
		if err := r.cache.Delete(ctx, r.getAppointmentCacheKey(appointment.ID)); err != nil {
			log.Printf("Failed to delete appointment cache: %v", err)
		}
		return r.invalidateCollectionCache(ctx)
	})
}

func (r *AppointmentRepository) invalidateCollectionCache(ctx context.Context) error {
	return r.cache.DeleteAll(ctx, appointmentsCachePfx+"*")
}

func (r *AppointmentRepository) getAppointmentCacheKey(id uint) string {
	return fmt.Sprintf("appointment_cache:%d", id)
}
