package repositories

import (
	"RadiologyCenter/database"
	"RadiologyCenter/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type UnitRepository struct{}

func NewUnitRepository() *UnitRepository {
	return &UnitRepository{}
}

func (r *UnitRepository) Create(ctx context.Context, unit *models.Unit) error {
	if err := database.DB.WithContext(ctx).Create(unit).Error; err != nil {
		return fmt.Errorf("failed to create unit: %w", err)
	}
	return nil
}

func (r *UnitRepository) GetByID(ctx context.Context, id uint) (*models.Unit, error) {
	var unit models.Unit
	err := database.DB.WithContext(ctx).First(&unit, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}
	return &unit, nil
}

func (r *UnitRepository) GetAll(ctx context.Context) ([]models.Unit, error) {
	var units []models.Unit
	if err := database.DB.WithContext(ctx).Order("name").Find(&units).Error; err != nil {
		return nil, fmt.Errorf("failed to get all units: %w", err)
	}
	return units, nil
}

func (r *UnitRepository) GetPaged(ctx context.Context, page PageRequest) ([]models.Unit, int64, error) {
	query := database.DB.WithContext(ctx).Model(&models.Unit{})

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count units: %w", err)
	}

	var units []models.Unit
	err := query.Order("name").Offset(page.Offset()).Limit(page.Limit()).Find(&units).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get paged units: %w", err)
	}
	return units, totalCount, nil
}

func (r *UnitRepository) Update(ctx context.Context, unit *models.Unit) error {
	if err := database.DB.WithContext(ctx).Save(unit).Error; err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}
	return nil
}

func (r *UnitRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := database.DB.WithContext(ctx).Delete(&models.Unit{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete unit: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
