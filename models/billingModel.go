package models

import (
	"time"
)

// Payment status values
const (
	PaymentPending  = "Pending"
	PaymentPaid     = "Paid"
	PaymentRefunded = "Refunded"
)

// ValidPaymentStatus reports whether s is one of the payment status values.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// InsuranceProvider model. Coverage percent and discount amount are
// applied to appointments that reference the provider.
type InsuranceProvider struct {
	ID              uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name            string     `gorm:"column:name;size:100;not null;unique" json:"name"`
	ContactInfo     string     `gorm:"column:contact_info;size:255" json:"contact_info"`
	PolicyDetails   string     `gorm:"column:policy_details;size:500" json:"policy_details"`
	CoveragePercent *float64   `gorm:"column:coverage_percent;type:decimal(18,2)" json:"coverage_percent"`
	DiscountAmount  *float64   `gorm:"column:discount_amount;type:decimal(18,2)" json:"discount_amount"`
	CreatedBy       string     `gorm:"column:created_by" json:"created_by"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedBy       string     `gorm:"column:updated_by" json:"updated_by"`
	UpdatedAt       *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (InsuranceProvider) TableName() string {
	return "insurance_provider"
}

// Contract model
type Contract struct {
	ID              uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name            string     `gorm:"column:name;size:100;not null" json:"name"`
	Type            string     `gorm:"column:type;size:50" json:"type"`
	Details         string     `gorm:"column:details;size:500" json:"details"`
	ValidFrom       *time.Time `gorm:"column:valid_from" json:"valid_from"`
	ValidTo         *time.Time `gorm:"column:valid_to" json:"valid_to"`
	CoveragePercent *float64   `gorm:"column:coverage_percent;type:decimal(18,2)" json:"coverage_percent"`
	DiscountAmount  *float64   `gorm:"column:discount_amount;type:decimal(18,2)" json:"discount_amount"`
	CreatedBy       string     `gorm:"column:created_by" json:"created_by"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedBy       string     `gorm:"column:updated_by" json:"updated_by"`
	UpdatedAt       *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Contract) TableName() string {
	return "contract"
}

// PatientInsurance is a historical enrollment record linking a patient to
// an insurance provider. Appointments hold their own snapshot FK instead.
type PatientInsurance struct {
	ID                  uint              `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID           uint              `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Patient             Patient           `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	InsuranceProviderID uint              `gorm:"column:insurance_provider_id;not null;index" json:"insurance_provider_id"`
	InsuranceProvider   InsuranceProvider `gorm:"foreignKey:InsuranceProviderID;references:ID" json:"-"`
	PolicyNumber        string            `gorm:"column:policy_number;size:100" json:"policy_number"`
	ValidFrom           *time.Time        `gorm:"column:valid_from" json:"valid_from"`
	ValidTo             *time.Time        `gorm:"column:valid_to" json:"valid_to"`
	CreatedBy           string            `gorm:"column:created_by" json:"created_by"`
	CreatedAt           time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedBy           string            `gorm:"column:updated_by" json:"updated_by"`
	UpdatedAt           *time.Time        `gorm:"column:updated_at" json:"updated_at"`
}

func (PatientInsurance) TableName() string {
	return "patient_insurance"
}

// PatientContract is a historical enrollment record linking a patient to
// a contract.
type PatientContract struct {
	ID             uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID      uint       `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Patient        Patient    `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	ContractID     uint       `gorm:"column:contract_id;not null;index" json:"contract_id"`
	Contract       Contract   `gorm:"foreignKey:ContractID;references:ID" json:"-"`
	ContractNumber string     `gorm:"column:contract_number;size:100" json:"contract_number"`
	ValidFrom      *time.Time `gorm:"column:valid_from" json:"valid_from"`
	ValidTo        *time.Time `gorm:"column:valid_to" json:"valid_to"`
	CreatedBy      string     `gorm:"column:created_by" json:"created_by"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedBy      string     `gorm:"column:updated_by" json:"updated_by"`
	UpdatedAt      *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PatientContract) TableName() string {
	return "patient_contract"
}

// Payment model. PatientName is denormalized for display and filled on
// reads from the linked patient.
type Payment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Amount        float64   `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	Date          time.Time `gorm:"column:date;not null;index" json:"date"`
	Method        string    `gorm:"column:method;size:100" json:"method"`
	Status        string    `gorm:"column:status;size:20;check:status IN ('Pending', 'Paid', 'Refunded');not null;default:'Pending'" json:"status"`
	AppointmentID uint      `gorm:"column:appointment_id;not null;index" json:"appointment_id"`
	PatientID     *uint     `gorm:"column:patient_id;index" json:"patient_id"`
	Patient       *Patient  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Notes         string    `gorm:"column:notes" json:"notes"`
	PatientName   string    `gorm:"-" json:"patient_name"`
}

func (Payment) TableName() string {
	return "payment"
}
