package models

import (
	"time"
)

// Patient model
type Patient struct {
	ID          uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	FullName    string     `gorm:"column:full_name;size:200;not null;index" json:"full_name"`
	DateOfBirth string     `gorm:"column:date_of_birth;not null;index" json:"date_of_birth"`
	Phone       string     `gorm:"column:phone;size:20;not null" json:"phone"`
	Address     string     `gorm:"column:address;size:255" json:"address"`
	Gender      string     `gorm:"column:gender;check:gender IN ('Male', 'Female', 'Other')" json:"gender"`
	Notes       string     `gorm:"column:notes;type:text" json:"notes"`
	CreatedBy   string     `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedBy   string     `gorm:"column:updated_by" json:"updated_by"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at"`

	Appointments []Appointment      `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Insurances   []PatientInsurance `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Contracts    []PatientContract  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Unit model, a department owning a set of examination types
type Unit struct {
	ID          uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string     `gorm:"column:name;size:50;not null;unique" json:"name"`
	Description string     `gorm:"column:description;size:255" json:"description"`
	CreatedBy   string     `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedBy   string     `gorm:"column:updated_by" json:"updated_by"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at"`

	Examinations []Examination `gorm:"foreignKey:UnitID;references:ID" json:"-"`
}

func (Unit) TableName() string {
	return "unit"
}

// Examination model, a billable procedure type with bilingual names
type Examination struct {
	ID         uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ExamNameEn string     `gorm:"column:exam_name_en;size:100;not null;index" json:"exam_name_en"`
	ExamNameAr string     `gorm:"column:exam_name_ar;size:100" json:"exam_name_ar"`
	BasePrice  float64    `gorm:"column:base_price;type:decimal(18,2);not null" json:"base_price"`
	UnitID     uint       `gorm:"column:unit_id;not null;index" json:"unit_id"`
	Unit       Unit       `gorm:"foreignKey:UnitID;references:ID" json:"-"`
	CreatedBy  string     `gorm:"column:created_by;size:100" json:"created_by"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedBy  string     `gorm:"column:updated_by" json:"updated_by"`
	UpdatedAt  *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Examination) TableName() string {
	return "examination"
}
