package services

import (
	"RadiologyCenter/models"
	"math"
)

// ComputeTotalCost derives an appointment's total cost from its booked
// examinations. The gross sum of base prices is reduced by the referenced
// insurance provider's or contract's coverage percent and flat discount,
// then by the appointment's own discount. The result never goes below
// zero and is rounded to cents. The stored value is what this returns;
// clients cannot set it.
func ComputeTotalCost(examinations []models.Examination, provider *models.InsuranceProvider, contract *models.Contract, discount float64) float64 {
	var total float64
	for _, exam := range examinations {
		total += exam.BasePrice
	}

	if provider != nil {
		total = applyCoverage(total, provider.CoveragePercent, provider.DiscountAmount)
	}
	if contract != nil {
		total = applyCoverage(total, contract.CoveragePercent, contract.DiscountAmount)
	}

	total -= discount
	if total < 0 {
		total = 0
	}
	return math.Round(total*100) / 100
}

func applyCoverage(total float64, coveragePercent, discountAmount *float64) float64 {
	if coveragePercent != nil {
		total -= total * (*coveragePercent / 100)
	}
	if discountAmount != nil {
		total -= *discountAmount
	}
	if total < 0 {
		total = 0
	}
	return total
}
