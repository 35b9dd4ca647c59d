package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"context"
	"fmt"
	"log"
	"time"
)

// AppointmentRequest carries the client-supplied fields for creating or
// updating an appointment. TotalCost is absent on purpose: the service
// always recomputes it from the booked examinations.
type AppointmentRequest struct {
	PatientID           uint      `json:"patient_id"`
	TransferType        string    `json:"transfer_type"`
	Attachment          string    `json:"attachment"`
	TreatingDoctor      string    `json:"treating_doctor"`
	TechnicalID         *int64    `json:"technical_id"`
	ScheduledAt         time.Time `json:"scheduled_at"`
	Notes               string    `json:"notes"`
	Discount            float64   `json:"discount"`
	DiscountReason      string    `json:"discount_reason"`
	MedicalNotes        string    `json:"medical_notes"`
	InsuranceProviderID *uint     `json:"insurance_provider_id"`
	ContractID          *uint     `json:"contract_id"`
	Status              string    `json:"status"`
	ExaminationIDs      []uint    `json:"examination_ids"`
}

type AppointmentService struct {
	repository   *repositories.AppointmentRepository
	patients     *repositories.PatientRepository
	examinations *repositories.ExaminationRepository
	providers    *repositories.InsuranceProviderRepository
	contracts    *repositories.ContractRepository
	audit        *AuditService
}

func NewAppointmentService(
	repository *repositories.AppointmentRepository,
	patients *repositories.PatientRepository,
	examinations *repositories.ExaminationRepository,
	providers *repositories.InsuranceProviderRepository,
	contracts *repositories.ContractRepository,
	audit *AuditService,
) *AppointmentService {
	return &AppointmentService{
		repository:   repository,
		patients:     patients,
		examinations: examinations,
		providers:    providers,
		contracts:    contracts,
		audit:        audit,
	}
}

func (s *AppointmentService) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return s.repository.GetAll(ctx)
}

func (s *AppointmentService) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	appointment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (s *AppointmentService) GetPaged(ctx context.Context, page repositories.PageRequest, filter repositories.AppointmentFilter) ([]models.Appointment, int64, error) {
	if filter.Status != "" && !models.ValidStatus(filter.Status) {
		return nil, 0, &ValidationError{Message: fmt.Sprintf("invalid status filter %q", filter.Status)}
	}
	return s.repository.GetPaged(ctx, page, filter)
}

// Create maps the request onto a new appointment, attaches its
// examination links, stamps the creator and recomputes the total cost.
func (s *AppointmentService) Create(ctx context.Context, actor string, req AppointmentRequest) (*models.Appointment, error) {
	if err := s.normalize(&req); err != nil {
		return nil, err
	}

	examinations, provider, contract, err := s.resolveReferences(ctx, req)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID:           req.PatientID,
		TransferType:        req.TransferType,
		Attachment:          req.Attachment,
		TreatingDoctor:      req.TreatingDoctor,
		TechnicalID:         req.TechnicalID,
		ScheduledAt:         req.ScheduledAt,
		Notes:               req.Notes,
		Discount:            req.Discount,
		DiscountReason:      req.DiscountReason,
		MedicalNotes:        req.MedicalNotes,
		InsuranceProviderID: req.InsuranceProviderID,
		ContractID:          req.ContractID,
		Status:              req.Status,
		TotalCost:           ComputeTotalCost(examinations, provider, contract, req.Discount),
		CreatedBy:           actor,
	}
	for _, eid := range dedupe(req.ExaminationIDs) {
		appointment.Examinations = append(appointment.Examinations, models.AppointmentExamination{ExaminationID: eid})
	}

	if err := s.repository.Create(ctx, appointment); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, models.AuditCreate, "Appointment", appointment.ID, nil, appointment)
	return appointment, nil
}

// Update overwrites the mutable fields of an existing appointment,
// replaces its examination links and recomputes the total cost. Status
// transitions are logged; none are rejected.
func (s *AppointmentService) Update(ctx context.Context, actor string, id uint, req AppointmentRequest) (*models.Appointment, error) {
	appointment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := s.normalize(&req); err != nil {
		return nil, err
	}
	examinations, provider, contract, err := s.resolveReferences(ctx, req)
	if err != nil {
		return nil, err
	}

	previous := *appointment
	previousStatus := appointment.Status

	now := time.Now().UTC()
	appointment.PatientID = req.PatientID
	appointment.TransferType = req.TransferType
	appointment.Attachment = req.Attachment
	appointment.TreatingDoctor = req.TreatingDoctor
	appointment.TechnicalID = req.TechnicalID
	appointment.ScheduledAt = req.ScheduledAt
	appointment.Notes = req.Notes
	appointment.Discount = req.Discount
	appointment.DiscountReason = req.DiscountReason
	appointment.MedicalNotes = req.MedicalNotes
	appointment.InsuranceProviderID = req.InsuranceProviderID
	appointment.ContractID = req.ContractID
	appointment.Status = req.Status
	appointment.TotalCost = ComputeTotalCost(examinations, provider, contract, req.Discount)
	appointment.UpdatedBy = actor
	appointment.UpdatedAt = &now

	appointment.Examinations = nil
	for _, eid := range dedupe(req.ExaminationIDs) {
		appointment.Examinations = append(appointment.Examinations, models.AppointmentExamination{AppointmentID: id, ExaminationID: eid})
	}

	if err := s.repository.Update(ctx, appointment); err != nil {
		return nil, err
	}
	if previousStatus != appointment.Status {
		log.Printf("Appointment %d status changed from %s to %s", id, previousStatus, appointment.Status)
	}
	s.audit.Record(ctx, actor, models.AuditUpdate, "Appointment", id, &previous, appointment)
	return appointment, nil
}

func (s *AppointmentService) Delete(ctx context.Context, actor string, id uint) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAppointmentNotFound
	}
	s.audit.Record(ctx, actor, models.AuditDelete, "Appointment", id, nil, nil)
	return nil
}

// normalize applies defaults and rejects unknown enum values.
func (s *AppointmentService) normalize(req *AppointmentRequest) error {
	if req.TransferType == "" {
		req.TransferType = models.TransferCash
	}
	if req.Attachment == "" {
		req.Attachment = models.AttachmentUndefined
	}
	if req.Status == "" {
		req.Status = models.StatusPending
	}
	if !models.ValidTransferType(req.TransferType) {
		return &ValidationError{Message: fmt.Sprintf("invalid transfer type %q", req.TransferType)}
	}
	if !models.ValidAttachment(req.Attachment) {
		return &ValidationError{Message: fmt.Sprintf("invalid attachment %q", req.Attachment)}
	}
	if !models.ValidStatus(req.Status) {
		return &ValidationError{Message: fmt.Sprintf("invalid status %q", req.Status)}
	}
	return nil
}

// resolveReferences checks the patient, examinations and optional
// provider/contract, returning what the pricing needs.
func (s *AppointmentService) resolveReferences(ctx context.Context, req AppointmentRequest) ([]models.Examination, *models.InsuranceProvider, *models.Contract, error) {
	patient, err := s.patients.GetByID(ctx, req.PatientID)
	if err != nil {
		return nil, nil, nil, err
	}
	if patient == nil {
		return nil, nil, nil, ErrPatientNotFound
	}

	examinations, err := s.examinations.GetByIDs(ctx, req.ExaminationIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(examinations) != len(dedupe(req.ExaminationIDs)) {
		return nil, nil, nil, ErrExaminationNotFound
	}

	var provider *models.InsuranceProvider
	if req.InsuranceProviderID != nil {
		provider, err = s.providers.GetByID(ctx, *req.InsuranceProviderID)
		if err != nil {
			return nil, nil, nil, err
		}
		if provider == nil {
			return nil, nil, nil, ErrInsuranceProviderNotFound
		}
	}

	var contract *models.Contract
	if req.ContractID != nil {
		contract, err = s.contracts.GetByID(ctx, *req.ContractID)
		if err != nil {
			return nil, nil, nil, err
		}
		if contract == nil {
			return nil, nil, nil, ErrContractNotFound
		}
	}

	return examinations, provider, contract, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	var out []uint
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
