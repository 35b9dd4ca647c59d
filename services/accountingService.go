package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"context"
	"sort"
)

// MethodRevenue is one row of the revenue breakdown, grouped by payment
// method.
type MethodRevenue struct {
	Method string  `json:"method"`
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
}

// RevenueReport summarises all payments.
type RevenueReport struct {
	TotalRevenue float64         `json:"total_revenue"`
	PaymentCount int             `json:"payment_count"`
	ByMethod     []MethodRevenue `json:"by_method"`
}

type AccountingService struct {
	payments     *repositories.PaymentRepository
	appointments *repositories.AppointmentRepository
	audit        *AuditService
}

func NewAccountingService(
	payments *repositories.PaymentRepository,
	appointments *repositories.AppointmentRepository,
	audit *AuditService,
) *AccountingService {
	return &AccountingService{payments: payments, appointments: appointments, audit: audit}
}

// BuildReport aggregates every payment into a total-revenue figure and a
// per-method breakdown.
func (s *AccountingService) BuildReport(ctx context.Context) (*RevenueReport, error) {
	payments, err := s.payments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return SummarizePayments(payments), nil
}

// SummarizePayments groups payments by method. Methods are free text, so
// grouping is by the exact stored string; rows come back sorted by method
// for stable output.
func SummarizePayments(payments []models.Payment) *RevenueReport {
	report := &RevenueReport{PaymentCount: len(payments)}
	byMethod := make(map[string]*MethodRevenue)
	for _, payment := range payments {
		report.TotalRevenue += payment.Amount
		row, ok := byMethod[payment.Method]
		if !ok {
			row = &MethodRevenue{Method: payment.Method}
			byMethod[payment.Method] = row
		}
		row.Total += payment.Amount
		row.Count++
	}
	report.ByMethod = make([]MethodRevenue, 0, len(byMethod))
	for _, row := range byMethod {
		report.ByMethod = append(report.ByMethod, *row)
	}
	sort.Slice(report.ByMethod, func(i, j int) bool {
		return report.ByMethod[i].Method < report.ByMethod[j].Method
	})
	return report
}

func (s *AccountingService) GetAllPayments(ctx context.Context) ([]models.Payment, error) {
	return s.payments.GetAll(ctx)
}

func (s *AccountingService) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// GetPaymentByAppointment looks up the payment linked to one appointment.
func (s *AccountingService) GetPaymentByAppointment(ctx context.Context, appointmentID uint) (*models.Payment, error) {
	payment, err := s.payments.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// CreatePayment validates the linked appointment, defaults the status and
// re-fetches after the write so PatientName is filled for the response.
func (s *AccountingService) CreatePayment(ctx context.Context, actor string, payment *models.Payment) (*models.Payment, error) {
	if err := s.normalize(ctx, payment); err != nil {
		return nil, err
	}

	payment.ID = 0
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	created, err := s.payments.GetByID(ctx, payment.ID)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, models.AuditCreate, "Payment", payment.ID, nil, created)
	return created, nil
}

func (s *AccountingService) UpdatePayment(ctx context.Context, actor string, id uint, payment *models.Payment) (*models.Payment, error) {
	existing, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPaymentNotFound
	}
	if err := s.normalize(ctx, payment); err != nil {
		return nil, err
	}

	previous := *existing
	existing.Amount = payment.Amount
	existing.Date = payment.Date
	existing.Method = payment.Method
	existing.Status = payment.Status
	existing.AppointmentID = payment.AppointmentID
	existing.PatientID = payment.PatientID
	existing.Notes = payment.Notes
	existing.Patient = nil

	if err := s.payments.Update(ctx, existing); err != nil {
		return nil, err
	}
	updated, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, models.AuditUpdate, "Payment", id, &previous, updated)
	return updated, nil
}

func (s *AccountingService) DeletePayment(ctx context.Context, actor string, id uint) error {
	deleted, err := s.payments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPaymentNotFound
	}
	s.audit.Record(ctx, actor, models.AuditDelete, "Payment", id, nil, nil)
	return nil
}

func (s *AccountingService) normalize(ctx context.Context, payment *models.Payment) error {
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}
	if !models.ValidPaymentStatus(payment.Status) {
		return &ValidationError{Message: "invalid payment status: " + payment.Status}
	}
	appointment, err := s.appointments.GetByID(ctx, payment.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	return nil
}
