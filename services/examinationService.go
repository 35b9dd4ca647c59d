package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"context"
	"time"
)

type ExaminationService struct {
	repository *repositories.ExaminationRepository
	units      *repositories.UnitRepository
	audit      *AuditService
}

func NewExaminationService(repository *repositories.ExaminationRepository, units *repositories.UnitRepository, audit *AuditService) *ExaminationService {
	return &ExaminationService{repository: repository, units: units, audit: audit}
}

func (s *ExaminationService) GetAll(ctx context.Context) ([]models.Examination, error) {
	return s.repository.GetAll(ctx)
}

func (s *ExaminationService) GetByID(ctx context.Context, id uint) (*models.Examination, error) {
	examination, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if examination == nil {
		return nil, ErrExaminationNotFound
	}
	return examination, nil
}

func (s *ExaminationService) GetPaged(ctx context.Context, page repositories.PageRequest, unitID *uint) ([]models.Examination, int64, error) {
	return s.repository.GetPaged(ctx, page, unitID)
}

// Create verifies the owning unit before inserting the examination.
func (s *ExaminationService) Create(ctx context.Context, actor string, examination *models.Examination) error {
	unit, err := s.units.GetByID(ctx, examination.UnitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return ErrUnitNotFound
	}

	examination.ID = 0
	examination.CreatedBy = actor
	if err := s.repository.Create(ctx, examination); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, models.AuditCreate, "Examination", examination.ID, nil, examination)
	return nil
}

func (s *ExaminationService) Update(ctx context.Context, actor string, id uint, examination *models.Examination) error {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrExaminationNotFound
	}

	unit, err := s.units.GetByID(ctx, examination.UnitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return ErrUnitNotFound
	}

	previous := *existing
	now := time.Now().UTC()
	existing.ExamNameEn = examination.ExamNameEn
	existing.ExamNameAr = examination.ExamNameAr
	existing.BasePrice = examination.BasePrice
	existing.UnitID = examination.UnitID
	existing.UpdatedBy = actor
	existing.UpdatedAt = &now

	if err := s.repository.Update(ctx, existing); err != nil {
		return err
	}
	*examination = *existing
	s.audit.Record(ctx, actor, models.AuditUpdate, "Examination", id, &previous, existing)
	return nil
}

// Delete refuses to remove an examination still referenced by any
// appointment; the repository surfaces that as ErrExaminationInUse.
func (s *ExaminationService) Delete(ctx context.Context, actor string, id uint) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExaminationNotFound
	}
	s.audit.Record(ctx, actor, models.AuditDelete, "Examination", id, nil, nil)
	return nil
}
