package services

import (
	"RadiologyCenter/models"
	"testing"
)

func floatPtr(v float64) *float64 {
	return &v
}

func exams(prices ...float64) []models.Examination {
	out := make([]models.Examination, len(prices))
	for i, p := range prices {
		out[i] = models.Examination{BasePrice: p}
	}
	return out
}

func TestComputeTotalCostSumsBasePrices(t *testing.T) {
	got := ComputeTotalCost(exams(100, 250.50, 49.50), nil, nil, 0)
	if got != 400 {
		t.Errorf("expected 400, got %v", got)
	}
}

func TestComputeTotalCostNoExaminations(t *testing.T) {
	got := ComputeTotalCost(nil, nil, nil, 0)
	if got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestComputeTotalCostProviderCoveragePercent(t *testing.T) {
	provider := &models.InsuranceProvider{CoveragePercent: floatPtr(80)}
	got := ComputeTotalCost(exams(500), provider, nil, 0)
	if got != 100 {
		t.Errorf("expected 100 after 80%% coverage, got %v", got)
	}
}

func TestComputeTotalCostProviderFlatDiscount(t *testing.T) {
	provider := &models.InsuranceProvider{DiscountAmount: floatPtr(30)}
	got := ComputeTotalCost(exams(100), provider, nil, 0)
	if got != 70 {
		t.Errorf("expected 70, got %v", got)
	}
}

func TestComputeTotalCostProviderCoverageThenDiscount(t *testing.T) {
	provider := &models.InsuranceProvider{CoveragePercent: floatPtr(50), DiscountAmount: floatPtr(10)}
	got := ComputeTotalCost(exams(200), provider, nil, 0)
	if got != 90 {
		t.Errorf("expected 90 (200 -> 100 -> 90), got %v", got)
	}
}

func TestComputeTotalCostContractAppliedAfterProvider(t *testing.T) {
	provider := &models.InsuranceProvider{CoveragePercent: floatPtr(50)}
	contract := &models.Contract{CoveragePercent: floatPtr(50)}
	got := ComputeTotalCost(exams(400), provider, contract, 0)
	if got != 100 {
		t.Errorf("expected 100 (400 -> 200 -> 100), got %v", got)
	}
}

func TestComputeTotalCostAppointmentDiscount(t *testing.T) {
	got := ComputeTotalCost(exams(150), nil, nil, 25.5)
	if got != 124.5 {
		t.Errorf("expected 124.5, got %v", got)
	}
}

func TestComputeTotalCostNeverNegative(t *testing.T) {
	provider := &models.InsuranceProvider{DiscountAmount: floatPtr(500)}
	if got := ComputeTotalCost(exams(100), provider, nil, 0); got != 0 {
		t.Errorf("expected 0 when flat discount exceeds total, got %v", got)
	}
	if got := ComputeTotalCost(exams(100), nil, nil, 150); got != 0 {
		t.Errorf("expected 0 when appointment discount exceeds total, got %v", got)
	}
}

func TestComputeTotalCostRoundsToCents(t *testing.T) {
	provider := &models.InsuranceProvider{CoveragePercent: floatPtr(33.333)}
	got := ComputeTotalCost(exams(100), provider, nil, 0)
	if got != 66.67 {
		t.Errorf("expected 66.67, got %v", got)
	}
}
