package repositories

import (
	"RadiologyCenter/database"
	"RadiologyCenter/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type PatientContractRepository struct{}

func NewPatientContractRepository() *PatientContractRepository {
	return &PatientContractRepository{}
}

func (r *PatientContractRepository) Create(ctx context.Context, enrollment *models.PatientContract) error {
	if err := database.DB.WithContext(ctx).Create(enrollment).Error; err != nil {
		return fmt.Errorf("failed to create patient contract: %w", err)
	}
	return nil
}

func (r *PatientContractRepository) GetByID(ctx context.Context, id uint) (*models.PatientContract, error) {
	var enrollment models.PatientContract
	err := database.DB.WithContext(ctx).First(&enrollment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient contract: %w", err)
	}
	return &enrollment, nil
}

func (r *PatientContractRepository) GetAll(ctx context.Context) ([]models.PatientContract, error) {
	var enrollments []models.PatientContract
	if err := database.DB.WithContext(ctx).Order("created_at DESC").Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all patient contracts: %w", err)
	}
	return enrollments, nil
}

func (r *PatientContractRepository) GetPaged(ctx context.Context, page PageRequest, patientID *uint) ([]models.PatientContract, int64, error) {
	query := database.DB.WithContext(ctx).Model(&models.PatientContract{})
	if patientID != nil {
		query = query.Where("patient_id = ?", *patientID)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count patient contracts: %w", err)
	}

	var enrollments []models.PatientContract
	err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit()).Find(&enrollments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get paged patient contracts: %w", err)
	}
	return enrollments, totalCount, nil
}

func (r *PatientContractRepository) Update(ctx context.Context, enrollment *models.PatientContract) error {
	if err := database.DB.WithContext(ctx).Save(enrollment).Error; err != nil {
		return fmt.Errorf("failed to update patient contract: %w", err)
	}
	return nil
}

func (r *PatientContractRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := database.DB.WithContext(ctx).Delete(&models.PatientContract{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete patient contract: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
