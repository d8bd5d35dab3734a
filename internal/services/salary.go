package services

import (
	"math"
	"sort"

	"jobportal/internal/models"
)

// Pay-period conversion constants. One convention throughout: a year
// is 12 months, 52 weeks, 260 working days (5/week) and 2080 working
// hours (40/week).
const (
	monthsPerYear = 12
	weeksPerYear  = 52
	daysPerYear   = 260
	hoursPerYear  = 2080
)

// NormalizeMonthlyPay converts a job's pay descriptor into one
// comparable monthly-equivalent figure. For ranges the lower bound is
// the representative value. Returns ok=false when the job carries no
// usable figure (no pay type, nil or non-positive amount).
func NormalizeMonthlyPay(job *models.Job) (float64, bool) {
	if job.PayType == nil {
		return 0, false
	}

	var value *float64
	switch *job.PayType {
	case models.PayTypeExact:
		value = job.ExactPay
	case models.PayTypeRange:
		value = job.MinimumPay
	default:
		return 0, false
	}

	if value == nil || *value <= 0 {
		return 0, false
	}

	// A missing pay rate means the amount is taken as monthly.
	rate := models.PayRatePerMonth
	if job.PayRate != nil {
		rate = *job.PayRate
	}

	switch rate {
	case models.PayRatePerHour:
		return *value * hoursPerYear / monthsPerYear, true
	case models.PayRatePerDay:
		return *value * daysPerYear / monthsPerYear, true
	case models.PayRatePerMonth:
		return *value, true
	case models.PayRatePerYear:
		return *value / monthsPerYear, true
	default:
		return 0, false
	}
}

// SalaryStatistics reduces a page of monthly values to their median
// and projects it into every pay period. The median resists outlier
// postings better than the arithmetic mean would on a page-local
// statistic. Empty input yields all zeros.
func SalaryStatistics(monthlyValues []float64) models.SalaryBreakdown {
	if len(monthlyValues) == 0 {
		return models.SalaryBreakdown{}
	}

	sorted := make([]float64, len(monthlyValues))
	copy(sorted, monthlyValues)
	sort.Float64s(sorted)

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		median = sorted[mid]
	} else {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	yearly := median * monthsPerYear
	return models.SalaryBreakdown{
		Yearly:  round2(yearly),
		Monthly: round2(median),
		Weekly:  round2(yearly / weeksPerYear),
		Daily:   round2(yearly / daysPerYear),
		Hourly:  round2(yearly / hoursPerYear),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
