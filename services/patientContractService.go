package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"context"
	"time"
)

type PatientContractService struct {
	repository *repositories.PatientContractRepository
	patients   *repositories.PatientRepository
	contracts  *repositories.ContractRepository
	audit      *AuditService
}

func NewPatientContractService(
	repository *repositories.PatientContractRepository,
	patients *repositories.PatientRepository,
	contracts *repositories.ContractRepository,
	audit *AuditService,
) *PatientContractService {
	return &PatientContractService{repository: repository, patients: patients, contracts: contracts, audit: audit}
}

func (s *PatientContractService) GetAll(ctx context.Context) ([]models.PatientContract, error) {
	return s.repository.GetAll(ctx)
}

func (s *PatientContractService) GetByID(ctx context.Context, id uint) (*models.PatientContract, error) {
	enrollment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrPatientContractNotFound
	}
	return enrollment, nil
}

func (s *PatientContractService) GetPaged(ctx context.Context, page repositories.PageRequest, patientID *uint) ([]models.PatientContract, int64, error) {
	return s.repository.GetPaged(ctx, page, patientID)
}

func (s *PatientContractService) Create(ctx context.Context, actor string, enrollment *models.PatientContract) error {
	if err := s.checkReferences(ctx, enrollment); err != nil {
		return err
	}

	enrollment.ID = 0
	enrollment.CreatedBy = actor
	if err := s.repository.Create(ctx, enrollment); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, models.AuditCreate, "PatientContract", enrollment.ID, nil, enrollment)
	return nil
}

func (s *PatientContractService) Update(ctx context.Context, actor string, id uint, enrollment *models.PatientContract) error {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPatientContractNotFound
	}
	if err := s.checkReferences(ctx, enrollment); err != nil {
		return err
	}

	previous := *existing
	now := time.Now().UTC()
	existing.PatientID = enrollment.PatientID
	existing.ContractID = enrollment.ContractID
	existing.ContractNumber = enrollment.ContractNumber
	existing.ValidFrom = enrollment.ValidFrom
	existing.ValidTo = enrollment.ValidTo
	existing.UpdatedBy = actor
	existing.UpdatedAt = &now

	if err := s.repository.Update(ctx, existing); err != nil {
		return err
	}
	*enrollment = *existing
	s.audit.Record(ctx, actor, models.AuditUpdate, "PatientContract", id, &previous, existing)
	return nil
}

func (s *PatientContractService) Delete(ctx context.Context, actor string, id uint) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPatientContractNotFound
	}
	s.audit.Record(ctx, actor, models.AuditDelete, "PatientContract", id, nil, nil)
	return nil
}

func (s *PatientContractService) checkReferences(ctx context.Context, enrollment *models.PatientContract) error {
	patient, err := s.patients.GetByID(ctx, enrollment.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	contract, err := s.contracts.GetByID(ctx, enrollment.ContractID)
	if err != nil {
		return err
	}
	if contract == nil {
		return ErrContractNotFound
	}
	return nil
}
