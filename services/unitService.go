package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"context"
	"time"
)

type UnitService struct {
	repository *repositories.UnitRepository
	audit      *AuditService
}

func NewUnitService(repository *repositories.UnitRepository, audit *AuditService) *UnitService {
	return &UnitService{repository: repository, audit: audit}
}

func (s *UnitService) GetAll(ctx context.Context) ([]models.Unit, error) {
	return s.repository.GetAll(ctx)
}

func (s *UnitService) GetByID(ctx context.Context, id uint) (*models.Unit, error) {
	unit, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, ErrUnitNotFound
	}
	return unit, nil
}

func (s *UnitService) GetPaged(ctx context.Context, page repositories.PageRequest) ([]models.Unit, int64, error) {
	return s.repository.GetPaged(ctx, page)
}

func (s *UnitService) Create(ctx context.Context, actor string, unit *models.Unit) error {
	unit.ID = 0
	unit.CreatedBy = actor
	if err := s.repository.Create(ctx, unit); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, models.AuditCreate, "Unit", unit.ID, nil, unit)
	return nil
}

func (s *UnitService) Update(ctx context.Context, actor string, id uint, unit *models.Unit) error {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrUnitNotFound
	}

	previous := *existing
	now := time.Now().UTC()
	existing.Name = unit.Name
	existing.Description = unit.Description
	existing.UpdatedBy = actor
	existing.UpdatedAt = &now

	if err := s.repository.Update(ctx, existing); err != nil {
		return err
	}
	*unit = *existing
	s.audit.Record(ctx, actor, models.AuditUpdate, "Unit", id, &previous, existing)
	return nil
}

func (s *UnitService) Delete(ctx context.Context, actor string, id uint) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUnitNotFound
	}
	s.audit.Record(ctx, actor, models.AuditDelete, "Unit", id, nil, nil)
	return nil
}
