package repositories

import (
	"RadiologyCenter/database"
	"RadiologyCenter/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type InsuranceProviderRepository struct{}

func NewInsuranceProviderRepository() *InsuranceProviderRepository {
	return &InsuranceProviderRepository{}
}

func (r *InsuranceProviderRepository) Create(ctx context.Context, provider *models.InsuranceProvider) error {
	if err := database.DB.WithContext(ctx).Create(provider).Error; err != nil {
		return fmt.Errorf("failed to create insurance provider: %w", err)
	}
	return nil
}

func (r *InsuranceProviderRepository) GetByID(ctx context.Context, id uint) (*models.InsuranceProvider, error) {
	var provider models.InsuranceProvider
	err := database.DB.WithContext(ctx).First(&provider, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get insurance provider: %w", err)
	}
	return &provider, nil
}

func (r *InsuranceProviderRepository) GetAll(ctx context.Context) ([]models.InsuranceProvider, error) {
	var providers []models.InsuranceProvider
	if err := database.DB.WithContext(ctx).Order("name").Find(&providers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all insurance providers: %w", err)
	}
	return providers, nil
}

func (r *InsuranceProviderRepository) GetPaged(ctx context.Context, page PageRequest) ([]models.InsuranceProvider, int64, error) {
	query := database.DB.WithContext(ctx).Model(&models.InsuranceProvider{})

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count insurance providers: %w", err)
	}

	var providers []models.InsuranceProvider
	err := query.Order("name").Offset(page.Offset()).Limit(page.Limit()).Find(&providers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get paged insurance providers: %w", err)
	}
	return providers, totalCount, nil
}

func (r *InsuranceProviderRepository) Update(ctx context.Context, provider *models.InsuranceProvider) error {
	if err := database.DB.WithContext(ctx).Save(provider).Error; err != nil {
		return fmt.Errorf("failed to update insurance provider: %w", err)
	}
	return nil
}

func (r *InsuranceProviderRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := database.DB.WithContext(ctx).Delete(&models.InsuranceProvider{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete insurance provider: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
