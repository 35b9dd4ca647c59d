package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"context"
	"time"
)

type InsuranceProviderService struct {
	repository *repositories.InsuranceProviderRepository
	audit      *AuditService
}

func NewInsuranceProviderService(repository *repositories.InsuranceProviderRepository, audit *AuditService) *InsuranceProviderService {
	return &InsuranceProviderService{repository: repository, audit: audit}
}

func (s *InsuranceProviderService) GetAll(ctx context.Context) ([]models.InsuranceProvider, error) {
	return s.repository.GetAll(ctx)
}

func (s *InsuranceProviderService) GetByID(ctx context.Context, id uint) (*models.InsuranceProvider, error) {
	provider, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrInsuranceProviderNotFound
	}
	return provider, nil
}

func (s *InsuranceProviderService) GetPaged(ctx context.Context, page repositories.PageRequest) ([]models.InsuranceProvider, int64, error) {
	return s.repository.GetPaged(ctx, page)
}

func (s *InsuranceProviderService) Create(ctx context.Context, actor string, provider *models.InsuranceProvider) error {
	provider.ID = 0
	provider.CreatedBy = actor
	if err := s.repository.Create(ctx, provider); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, models.AuditCreate, "InsuranceProvider", provider.ID, nil, provider)
	return nil
}

func (s *InsuranceProviderService) Update(ctx context.Context, actor string, id uint, provider *models.InsuranceProvider) error {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrInsuranceProviderNotFound
	}

	previous := *existing
	now := time.Now().UTC()
	existing.Name = provider.Name
	existing.ContactInfo = provider.ContactInfo
	existing.PolicyDetails = provider.PolicyDetails
	existing.CoveragePercent = provider.CoveragePercent
	existing.DiscountAmount = provider.DiscountAmount
	existing.UpdatedBy = actor
	existing.UpdatedAt = &now

	if err := s.repository.Update(ctx, existing); err != nil {
		return err
	}
	*provider = *existing
	s.audit.Record(ctx, actor, models.AuditUpdate, "InsuranceProvider", id, &previous, existing)
	return nil
}

func (s *InsuranceProviderService) Delete(ctx context.Context, actor string, id uint) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInsuranceProviderNotFound
	}
	s.audit.Record(ctx, actor, models.AuditDelete, "InsuranceProvider", id, nil, nil)
	return nil
}
