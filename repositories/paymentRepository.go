package repositories

import (
	"RadiologyCenter/database"
	"RadiologyCenter/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if err := database.DB.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByID loads a payment with its patient for the denormalized name.
func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	err := database.DB.WithContext(ctx).Preload("Patient").First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	fillPatientName(&payment)
	return &payment, nil
}

func (r *PaymentRepository) GetByAppointmentID(ctx context.Context, appointmentID uint) (*models.Payment, error) {
	var payment models.Payment
	err := database.DB.WithContext(ctx).Preload("Patient").First(&payment, "appointment_id = ?", appointmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment by appointment: %w", err)
	}
	fillPatientName(&payment)
	return &payment, nil
}

func (r *PaymentRepository) GetAll(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := database.DB.WithContext(ctx).Preload("Patient").Order("date DESC").Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all payments: %w", err)
	}
	for i := range payments {
		fillPatientName(&payments[i])
	}
	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	if err := database.DB.WithContext(ctx).Omit("Patient").Save(payment).Error; err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := database.DB.WithContext(ctx).Delete(&models.Payment{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete payment: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func fillPatientName(payment *models.Payment) {
	if payment.Patient != nil {
		payment.PatientName = payment.Patient.FullName
	}
}
