package repositories

import (
	"RadiologyCenter/database"
	"RadiologyCenter/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrExaminationInUse signals that an examination is still referenced by
// an appointment and cannot be deleted.
var ErrExaminationInUse = errors.New("examination is referenced by an appointment")

type ExaminationRepository struct{}

func NewExaminationRepository() *ExaminationRepository {
	return &ExaminationRepository{}
}

func (r *ExaminationRepository) Create(ctx context.Context, examination *models.Examination) error {
	if err := database.DB.WithContext(ctx).Create(examination).Error; err != nil {
		return fmt.Errorf("failed to create examination: %w", err)
	}
	return nil
}

func (r *ExaminationRepository) GetByID(ctx context.Context, id uint) (*models.Examination, error) {
	var examination models.Examination
	err := database.DB.WithContext(ctx).First(&examination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get examination: %w", err)
	}
	return &examination, nil
}

// GetByIDs fetches the examinations for the given ids in one query.
func (r *ExaminationRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Examination, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var examinations []models.Examination
	if err := database.DB.WithContext(ctx).Where("id IN ?", ids).Find(&examinations).Error; err != nil {
		return nil, fmt.Errorf("failed to get examinations: %w", err)
	}
	return examinations, nil
}

func (r *ExaminationRepository) GetAll(ctx context.Context) ([]models.Examination, error) {
	var examinations []models.Examination
	if err := database.DB.WithContext(ctx).Order("exam_name_en").Find(&examinations).Error; err != nil {
		return nil, fmt.Errorf("failed to get all examinations: %w", err)
	}
	return examinations, nil
}

func (r *ExaminationRepository) GetPaged(ctx context.Context, page PageRequest, unitID *uint) ([]models.Examination, int64, error) {
	query := database.DB.WithContext(ctx).Model(&models.Examination{})
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count examinations: %w", err)
	}

	var examinations []models.Examination
	err := query.Order("exam_name_en").Offset(page.Offset()).Limit(page.Limit()).Find(&examinations).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get paged examinations: %w", err)
	}
	return examinations, totalCount, nil
}

func (r *ExaminationRepository) Update(ctx context.Context, examination *models.Examination) error {
	if err := database.DB.WithContext(ctx).Save(examination).Error; err != nil {
		return fmt.Errorf("failed to update examination: %w", err)
	}
	return nil
}

// Delete removes the examination unless an appointment still references
// it. The FK constraint restricts the delete as well; the explicit count
// turns a driver error into a clean domain error.
func (r *ExaminationRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var links int64
	err := database.DB.WithContext(ctx).
		Model(&models.AppointmentExamination{}).
		Where("examination_id = ?", id).
		Count(&links).Error
	if err != nil {
		return false, fmt.Errorf("failed to count examination links: %w", err)
	}
	if links > 0 {
		return false, ErrExaminationInUse
	}

	result := database.DB.WithContext(ctx).Delete(&models.Examination{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete examination: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
