package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"context"
	"time"
)

// PatientInsuranceService manages historical insurance enrollments. An
// appointment never reads these rows; it holds its own provider FK.
type PatientInsuranceService struct {
	repository *repositories.PatientInsuranceRepository
	patients   *repositories.PatientRepository
	providers  *repositories.InsuranceProviderRepository
	audit      *AuditService
}

func NewPatientInsuranceService(
	repository *repositories.PatientInsuranceRepository,
	patients *repositories.PatientRepository,
	providers *repositories.InsuranceProviderRepository,
	audit *AuditService,
) *PatientInsuranceService {
	return &PatientInsuranceService{repository: repository, patients: patients, providers: providers, audit: audit}
}

func (s *PatientInsuranceService) GetAll(ctx context.Context) ([]models.PatientInsurance, error) {
	return s.repository.GetAll(ctx)
}

func (s *PatientInsuranceService) GetByID(ctx context.Context, id uint) (*models.PatientInsurance, error) {
	enrollment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrPatientInsuranceNotFound
	}
	return enrollment, nil
}

func (s *PatientInsuranceService) GetPaged(ctx context.Context, page repositories.PageRequest, patientID *uint) ([]models.PatientInsurance, int64, error) {
	return s.repository.GetPaged(ctx, page, patientID)
}

func (s *PatientInsuranceService) Create(ctx context.Context, actor string, enrollment *models.PatientInsurance) error {
	if err := s.checkReferences(ctx, enrollment); err != nil {
		return err
	}

	enrollment.ID = 0
	enrollment.CreatedBy = actor
	if err := s.repository.Create(ctx, enrollment); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, models.AuditCreate, "PatientInsurance", enrollment.ID, nil, enrollment)
	return nil
}

func (s *PatientInsuranceService) Update(ctx context.Context, actor string, id uint, enrollment *models.PatientInsurance) error {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPatientInsuranceNotFound
	}
	if err := s.checkReferences(ctx, enrollment); err != nil {
		return err
	}

	previous := *existing
	now := time.Now().UTC()
	existing.PatientID = enrollment.PatientID
	existing.InsuranceProviderID = enrollment.InsuranceProviderID
	existing.PolicyNumber = enrollment.PolicyNumber
	existing.ValidFrom = enrollment.ValidFrom
	existing.ValidTo = enrollment.ValidTo
	existing.UpdatedBy = actor
	existing.UpdatedAt = &now

	if err := s.repository.Update(ctx, existing); err != nil {
		return err
	}
	*enrollment = *existing
	s.audit.Record(ctx, actor, models.AuditUpdate, "PatientInsurance", id, &previous, existing)
	return nil
}

func (s *PatientInsuranceService) Delete(ctx context.Context, actor string, id uint) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPatientInsuranceNotFound
	}
	s.audit.Record(ctx, actor, models.AuditDelete, "PatientInsurance", id, nil, nil)
	return nil
}

func (s *PatientInsuranceService) checkReferences(ctx context.Context, enrollment *models.PatientInsurance) error {
	patient, err := s.patients.GetByID(ctx, enrollment.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	provider, err := s.providers.GetByID(ctx, enrollment.InsuranceProviderID)
	if err != nil {
		return err
	}
	if provider == nil {
		return ErrInsuranceProviderNotFound
	}
	return nil
}
