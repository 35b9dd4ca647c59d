package repositories

import (
	"RadiologyCenter/database"
	"RadiologyCenter/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ContractRepository struct{}

func NewContractRepository() *ContractRepository {
	return &ContractRepository{}
}

func (r *ContractRepository) Create(ctx context.Context, contract *models.Contract) error {
	if err := database.DB.WithContext(ctx).Create(contract).Error; err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id uint) (*models.Contract, error) {
	var contract models.Contract
	err := database.DB.WithContext(ctx).First(&contract, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return &contract, nil
}

func (r *ContractRepository) GetAll(ctx context.Context) ([]models.Contract, error) {
	var contracts []models.Contract
	if err := database.DB.WithContext(ctx).Order("name").Find(&contracts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all contracts: %w", err)
	}
	return contracts, nil
}

func (r *ContractRepository) GetPaged(ctx context.Context, page PageRequest) ([]models.Contract, int64, error) {
	query := database.DB.WithContext(ctx).Model(&models.Contract{})

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contracts: %w", err)
	}

	var contracts []models.Contract
	err := query.Order("name").Offset(page.Offset()).Limit(page.Limit()).Find(&contracts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get paged contracts: %w", err)
	}
	return contracts, totalCount, nil
}

func (r *ContractRepository) Update(ctx context.Context, contract *models.Contract) error {
	if err := database.DB.WithContext(ctx).Save(contract).Error; err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}
	return nil
}

func (r *ContractRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := database.DB.WithContext(ctx).Delete(&models.Contract{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete contract: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
