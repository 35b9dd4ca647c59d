package repositories

import (
	"RadiologyCenter/cache"
	"RadiologyCenter/database"
	"RadiologyCenter/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	appointmentCacheExpiry = 24 * time.Hour
	appointmentsListKey    = "appointments_cache"
)

// AppointmentFilter narrows a paged appointment query. Nil / empty fields
// are ignored; set fields are AND-combined.
type AppointmentFilter struct {
	UnitID        *uint
	PatientID     *uint
	Status        string
	ExaminationID *uint
}

// apply adds the set filter conditions to the query. Unit and examination
// filters go through the appointment_examination join.
func (f AppointmentFilter) apply(query *gorm.DB) *gorm.DB {
	if f.PatientID != nil {
		query = query.Where("appointment.patient_id = ?", *f.PatientID)
	}
	if f.Status != "" {
		query = query.Where("appointment.status = ?", f.Status)
	}
	if f.ExaminationID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM appointment_examination ae WHERE ae.appointment_id = appointment.id AND ae.examination_id = ?)",
			*f.ExaminationID)
	}
	if f.UnitID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM appointment_examination ae JOIN examination e ON e.id = ae.examination_id WHERE ae.appointment_id = appointment.id AND e.unit_id = ?)",
			*f.UnitID)
	}
	return query
}

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

// Create inserts the appointment and its examination links in one
// transaction, so a failed link insert never leaves a bare appointment.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	release, err := acquireLock(ctx, fmt.Sprintf("appointment_lock:%d", appointment.PatientID))
	if err != nil {
		return err
	}
	defer release()

	err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(appointment).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return r.invalidate(ctx, appointment.ID)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := appointmentCacheKey(id)
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var appointment models.Appointment
		if err := json.Unmarshal([]byte(cached), &appointment); err == nil {
			return &appointment, nil
		}
	} else if err != nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	err := database.DB.WithContext(ctx).
		Preload("Examinations").
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if data, err := json.Marshal(appointment); err == nil {
		if err := r.cache.Set(ctx, cacheKey, data, appointmentCacheExpiry); err != nil {
			log.Printf("Failed to set appointment in cache: %v", err)
		}
	}

	return &appointment, nil
}

func (r *AppointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cached, err := r.cache.Get(ctx, appointmentsListKey); err == nil && cached != "" {
		var appointments []models.Appointment
		if err := json.Unmarshal([]byte(cached), &appointments); err == nil {
			return appointments, nil
		}
	} else if err != nil {
		log.Printf("Failed to get appointments from cache: %v", err)
	}

	var appointments []models.Appointment
	err := database.DB.WithContext(ctx).
		Preload("Examinations").
		Order("scheduled_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all appointments: %w", err)
	}

	if data, err := json.Marshal(appointments); err == nil {
		if err := r.cache.Set(ctx, appointmentsListKey, data, appointmentCacheExpiry); err != nil {
			log.Printf("Failed to set appointments in cache: %v", err)
		}
	}

	return appointments, nil
}

// GetPaged returns one page of appointments plus the total matching count.
func (r *AppointmentRepository) GetPaged(ctx context.Context, page PageRequest, filter AppointmentFilter) ([]models.Appointment, int64, error) {
	query := filter.apply(database.DB.WithContext(ctx).Model(&models.Appointment{}))

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	var appointments []models.Appointment
	err := query.
		Preload("Examinations").
		Order("scheduled_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get paged appointments: %w", err)
	}

	return appointments, totalCount, nil
}

// Update saves the appointment and replaces its examination links in one
// transaction.
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	release, err := acquireLock(ctx, fmt.Sprintf("appointment_lock:%d", appointment.ID))
	if err != nil {
		return err
	}
	defer release()

	links := appointment.Examinations
	appointment.Examinations = nil

	err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Examinations").Save(appointment).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.AppointmentExamination{}, "appointment_id = ?", appointment.ID).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
	appointment.Examinations = links
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return r.invalidate(ctx, appointment.ID)
}

// Delete removes the appointment. Examination links go with it through the
// cascade constraint. Returns false when no row matched.
func (r *AppointmentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	release, err := acquireLock(ctx, fmt.Sprintf("appointment_lock:%d", id))
	if err != nil {
		return false, err
	}
	defer release()

	result := database.DB.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	return true, r.invalidate(ctx, id)
}

func (r *AppointmentRepository) invalidate(ctx context.Context, id uint) error {
	if err := r.cache.Delete(ctx, appointmentCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete appointment cache: %w", err)
	}
	return r.cache.Delete(ctx, appointmentsListKey)
}

func appointmentCacheKey(id uint) string {
	return fmt.Sprintf("appointment_cache:%d", id)
}
