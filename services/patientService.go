package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"context"
	"time"
)

type PatientService struct {
	repository *repositories.PatientRepository
	audit      *AuditService
}

func NewPatientService(repository *repositories.PatientRepository, audit *AuditService) *PatientService {
	return &PatientService{repository: repository, audit: audit}
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.repository.GetAll(ctx)
}

func (s *PatientService) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	patient, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (s *PatientService) GetPaged(ctx context.Context, page repositories.PageRequest, name string) ([]models.Patient, int64, error) {
	return s.repository.GetPaged(ctx, page, name)
}

func (s *PatientService) Create(ctx context.Context, actor string, patient *models.Patient) error {
	patient.ID = 0
	patient.CreatedBy = actor
	if err := s.repository.Create(ctx, patient); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, models.AuditCreate, "Patient", patient.ID, nil, patient)
	return nil
}

func (s *PatientService) Update(ctx context.Context, actor string, id uint, patient *models.Patient) error {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPatientNotFound
	}

	previous := *existing
	now := time.Now().UTC()
	existing.FullName = patient.FullName
	existing.DateOfBirth = patient.DateOfBirth
	existing.Phone = patient.Phone
	existing.Address = patient.Address
	existing.Gender = patient.Gender
	existing.Notes = patient.Notes
	existing.UpdatedBy = actor
	existing.UpdatedAt = &now

	if err := s.repository.Update(ctx, existing); err != nil {
		return err
	}
	*patient = *existing
	s.audit.Record(ctx, actor, models.AuditUpdate, "Patient", id, &previous, existing)
	return nil
}

func (s *PatientService) Delete(ctx context.Context, actor string, id uint) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPatientNotFound
	}
	s.audit.Record(ctx, actor, models.AuditDelete, "Patient", id, nil, nil)
	return nil
}
