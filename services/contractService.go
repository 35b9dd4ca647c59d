package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"context"
	"time"
)

type ContractService struct {
	repository *repositories.ContractRepository
	audit      *AuditService
}

func NewContractService(repository *repositories.ContractRepository, audit *AuditService) *ContractService {
	return &ContractService{repository: repository, audit: audit}
}

func (s *ContractService) GetAll(ctx context.Context) ([]models.Contract, error) {
	return s.repository.GetAll(ctx)
}

func (s *ContractService) GetByID(ctx context.Context, id uint) (*models.Contract, error) {
	contract, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}
	return contract, nil
}

func (s *ContractService) GetPaged(ctx context.Context, page repositories.PageRequest) ([]models.Contract, int64, error) {
	return s.repository.GetPaged(ctx, page)
}

func (s *ContractService) Create(ctx context.Context, actor string, contract *models.Contract) error {
	contract.ID = 0
	contract.CreatedBy = actor
	if err := s.repository.Create(ctx, contract); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, models.AuditCreate, "Contract", contract.ID, nil, contract)
	return nil
}

func (s *ContractService) Update(ctx context.Context, actor string, id uint, contract *models.Contract) error {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrContractNotFound
	}

	previous := *existing
	now := time.Now().UTC()
	existing.Name = contract.Name
	existing.Type = contract.Type
	existing.Details = contract.Details
	existing.ValidFrom = contract.ValidFrom
	existing.ValidTo = contract.ValidTo
	existing.CoveragePercent = contract.CoveragePercent
	existing.DiscountAmount = contract.DiscountAmount
	existing.UpdatedBy = actor
	existing.UpdatedAt = &now

	if err := s.repository.Update(ctx, existing); err != nil {
		return err
	}
	*contract = *existing
	s.audit.Record(ctx, actor, models.AuditUpdate, "Contract", id, &previous, existing)
	return nil
}

func (s *ContractService) Delete(ctx context.Context, actor string, id uint) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContractNotFound
	}
	s.audit.Record(ctx, actor, models.AuditDelete, "Contract", id, nil, nil)
	return nil
}
