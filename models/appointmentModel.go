package models

import (
	"time"
)

// Appointment status values: any transition between them is accepted.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// Transfer types classify how an appointment is funded.
const (
	TransferEmergency = "Emergency"
	TransferCash      = "Cash"
	TransferUrgent    = "Urgent"
	TransferInsurance = "Insurance"
	TransferContract  = "Contract"
)

// Attachment values
const (
	AttachmentDirect       = "Direct"
	AttachmentWithout      = "Without"
	AttachmentAnother      = "Another"
	AttachmentPrescription = "Prescription"
	AttachmentUndefined    = "Undefined"
)

// ValidStatus reports whether s is one of the appointment status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ValidTransferType reports whether t is one of the transfer type values.
func ValidTransferType(t string) bool {
	switch t {
	case TransferEmergency, TransferCash, TransferUrgent, TransferInsurance, TransferContract:
		return true
	}
	return false
}

// ValidAttachment reports whether a is one of the attachment values.
func ValidAttachment(a string) bool {
	switch a {
	case AttachmentDirect, AttachmentWithout, AttachmentAnother, AttachmentPrescription, AttachmentUndefined:
		return true
	}
	return false
}

// Appointment is the central aggregate: one patient, optional insurance
// provider or contract, and a set of examinations through the join table.
type Appointment struct {
	ID                  uint               `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID           uint               `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Patient             Patient            `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	TransferType        string             `gorm:"column:transfer_type;size:100;check:transfer_type IN ('Emergency', 'Cash', 'Urgent', 'Insurance', 'Contract');not null;default:'Cash'" json:"transfer_type"`
	Attachment          string             `gorm:"column:attachment;size:255;default:'Undefined'" json:"attachment"`
	TreatingDoctor      string             `gorm:"column:treating_doctor;size:100" json:"treating_doctor"`
	TechnicalID         *int64             `gorm:"column:technical_id" json:"technical_id"`
	ScheduledAt         time.Time          `gorm:"column:scheduled_at;not null;index" json:"scheduled_at"`
	Notes               string             `gorm:"column:notes" json:"notes"`
	Discount            float64            `gorm:"column:discount;type:decimal(18,2);default:0" json:"discount"`
	DiscountReason      string             `gorm:"column:discount_reason;size:255" json:"discount_reason"`
	MedicalNotes        string             `gorm:"column:medical_notes;size:255" json:"medical_notes"`
	TotalCost           float64            `gorm:"column:total_cost;type:decimal(18,2);not null;default:0" json:"total_cost"`
	InsuranceProviderID *uint              `gorm:"column:insurance_provider_id;index" json:"insurance_provider_id"`
	InsuranceProvider   *InsuranceProvider `gorm:"foreignKey:InsuranceProviderID;references:ID" json:"-"`
	ContractID          *uint              `gorm:"column:contract_id;index" json:"contract_id"`
	Contract            *Contract          `gorm:"foreignKey:ContractID;references:ID" json:"-"`
	Status              string             `gorm:"column:status;size:20;check:status IN ('Pending', 'Confirmed', 'Cancelled', 'Completed');not null;default:'Pending'" json:"status"`
	CreatedBy           string             `gorm:"column:created_by" json:"created_by"`
	CreatedAt           time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedBy           string             `gorm:"column:updated_by" json:"updated_by"`
	UpdatedAt           *time.Time         `gorm:"column:updated_at" json:"updated_at"`

	Examinations []AppointmentExamination `gorm:"foreignKey:AppointmentID;references:ID;constraint:OnDelete:CASCADE" json:"examinations"`
	Payments     []Payment                `gorm:"foreignKey:AppointmentID;references:ID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// AppointmentExamination joins appointments and examinations. Rows are
// removed with their appointment, but an examination referenced here
// cannot be deleted.
type AppointmentExamination struct {
	AppointmentID uint        `gorm:"primaryKey;column:appointment_id" json:"appointment_id"`
	ExaminationID uint        `gorm:"primaryKey;column:examination_id" json:"examination_id"`
	Examination   Examination `gorm:"foreignKey:ExaminationID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (AppointmentExamination) TableName() string {
	return "appointment_examination"
}
