package services

import (
	"RadiologyCenter/models"
	"testing"
)

func TestSummarizePaymentsEmpty(t *testing.T) {
	report := SummarizePayments(nil)
	if report.TotalRevenue != 0 {
		t.Errorf("expected zero revenue, got %v", report.TotalRevenue)
	}
	if report.PaymentCount != 0 {
		t.Errorf("expected zero payments, got %d", report.PaymentCount)
	}
	if len(report.ByMethod) != 0 {
		t.Errorf("expected no method rows, got %d", len(report.ByMethod))
	}
}

func TestSummarizePaymentsGroupsByMethod(t *testing.T) {
	payments := []models.Payment{
		{Amount: 100, Method: "Cash"},
		{Amount: 50, Method: "Card"},
		{Amount: 200, Method: "Cash"},
		{Amount: 75.25, Method: "Transfer"},
	}

	report := SummarizePayments(payments)

	if report.TotalRevenue != 425.25 {
		t.Errorf("expected total 425.25, got %v", report.TotalRevenue)
	}
	if report.PaymentCount != 4 {
		t.Errorf("expected 4 payments, got %d", report.PaymentCount)
	}
	if len(report.ByMethod) != 3 {
		t.Fatalf("expected 3 method rows, got %d", len(report.ByMethod))
	}

	// Rows are sorted by method name.
	expected := []MethodRevenue{
		{Method: "Card", Total: 50, Count: 1},
		{Method: "Cash", Total: 300, Count: 2},
		{Method: "Transfer", Total: 75.25, Count: 1},
	}
	for i, want := range expected {
		got := report.ByMethod[i]
		if got != want {
			t.Errorf("row %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestSummarizePaymentsDistinguishesMethodCase(t *testing.T) {
	payments := []models.Payment{
		{Amount: 10, Method: "cash"},
		{Amount: 20, Method: "Cash"},
	}
	report := SummarizePayments(payments)
	if len(report.ByMethod) != 2 {
		t.Errorf("method is free text, expected 2 rows, got %d", len(report.ByMethod))
	}
}
