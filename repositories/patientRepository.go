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
	patientCacheExpiry = 24 * time.Hour
	patientsListKey    = "patients_cache"
)

type PatientRepository struct {
	cache *cache.Cache
}

func NewPatientRepository(cache *cache.Cache) *PatientRepository {
	return &PatientRepository{cache: cache}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	release, err := acquireLock(ctx, fmt.Sprintf("patient_lock:%s_%s", patient.FullName, patient.DateOfBirth))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return r.invalidate(ctx, patient.ID)
}

func (r *PatientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := patientCacheKey(id)
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cached), &patient); err == nil {
			return &patient, nil
		}
	} else if err != nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err := database.DB.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if data, err := json.Marshal(patient); err == nil {
		if err := r.cache.Set(ctx, cacheKey, data, patientCacheExpiry); err != nil {
			log.Printf("Failed to set patient in cache: %v", err)
		}
	}

	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cached, err := r.cache.Get(ctx, patientsListKey); err == nil && cached != "" {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cached), &patients); err == nil {
			return patients, nil
		}
	} else if err != nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	if err := database.DB.WithContext(ctx).Order("full_name").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	if data, err := json.Marshal(patients); err == nil {
		if err := r.cache.Set(ctx, patientsListKey, data, patientCacheExpiry); err != nil {
			log.Printf("Failed to set patients in cache: %v", err)
		}
	}

	return patients, nil
}

// GetPaged returns one page of patients, optionally filtered by a
// case-insensitive name fragment.
func (r *PatientRepository) GetPaged(ctx context.Context, page PageRequest, name string) ([]models.Patient, int64, error) {
	query := database.DB.WithContext(ctx).Model(&models.Patient{})
	if name != "" {
		query = query.Where("full_name ILIKE ?", "%"+name+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	var patients []models.Patient
	err := query.Order("full_name").Offset(page.Offset()).Limit(page.Limit()).Find(&patients).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get paged patients: %w", err)
	}
	return patients, totalCount, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	release, err := acquireLock(ctx, fmt.Sprintf("patient_lock:%d", patient.ID))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.WithContext(ctx).Save(patient).Error; err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return r.invalidate(ctx, patient.ID)
}

func (r *PatientRepository) Delete(ctx context.Context, id uint) (bool, error) {
	release, err := acquireLock(ctx, fmt.Sprintf("patient_lock:%d", id))
	if err != nil {
		return false, err
	}
	defer release()

	result := database.DB.WithContext(ctx).Delete(&models.Patient{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	return true, r.invalidate(ctx, id)
}

func (r *PatientRepository) invalidate(ctx context.Context, id uint) error {
	if err := r.cache.Delete(ctx, patientCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.Delete(ctx, patientsListKey)
}

func patientCacheKey(id uint) string {
	return fmt.Sprintf("patient_cache:%d", id)
}
