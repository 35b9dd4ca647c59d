package repositories

import (
	"RadiologyCenter/database"
	"RadiologyCenter/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type PatientInsuranceRepository struct{}

func NewPatientInsuranceRepository() *PatientInsuranceRepository {
	return &PatientInsuranceRepository{}
}

func (r *PatientInsuranceRepository) Create(ctx context.Context, enrollment *models.PatientInsurance) error {
	if err := database.DB.WithContext(ctx).Create(enrollment).Error; err != nil {
		return fmt.Errorf("failed to create patient insurance: %w", err)
	}
	return nil
}

func (r *PatientInsuranceRepository) GetByID(ctx context.Context, id uint) (*models.PatientInsurance, error) {
	var enrollment models.PatientInsurance
	err := database.DB.WithContext(ctx).First(&enrollment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient insurance: %w", err)
	}
	return &enrollment, nil
}

func (r *PatientInsuranceRepository) GetAll(ctx context.Context) ([]models.PatientInsurance, error) {
	var enrollments []models.PatientInsurance
	if err := database.DB.WithContext(ctx).Order("created_at DESC").Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all patient insurances: %w", err)
	}
	return enrollments, nil
}

func (r *PatientInsuranceRepository) GetPaged(ctx context.Context, page PageRequest, patientID *uint) ([]models.PatientInsurance, int64, error) {
	query := database.DB.WithContext(ctx).Model(&models.PatientInsurance{})
	if patientID != nil {
		query = query.Where("patient_id = ?", *patientID)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count patient insurances: %w", err)
	}

	var enrollments []models.PatientInsurance
	err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit()).Find(&enrollments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get paged patient insurances: %w", err)
	}
	return enrollments, totalCount, nil
}

func (r *PatientInsuranceRepository) Update(ctx context.Context, enrollment *models.PatientInsurance) error {
	if err := database.DB.WithContext(ctx).Save(enrollment).Error; err != nil {
		return fmt.Errorf("failed to update patient insurance: %w", err)
	}
	return nil
}

func (r *PatientInsuranceRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := database.DB.WithContext(ctx).Delete(&models.PatientInsurance{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete patient insurance: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
