package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobportal/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func payTypePtr(v models.PayType) *models.PayType { return &v }

func payRatePtr(v models.PayRate) *models.PayRate { return &v }

func TestNormalizeMonthlyPay(t *testing.T) {
	tests := []struct {
		name     string
		job      models.Job
		expected float64
		ok       bool
	}{
		{
			name: "exact amount per month",
			job: models.Job{
				PayType:  payTypePtr(models.PayTypeExact),
				ExactPay: floatPtr(5000),
				PayRate:  payRatePtr(models.PayRatePerMonth),
			},
			expected: 5000,
			ok:       true,
		},
		{
			name: "exact amount per year",
			job: models.Job{
				PayType:  payTypePtr(models.PayTypeExact),
				ExactPay: floatPtr(120000),
				PayRate:  payRatePtr(models.PayRatePerYear),
			},
			expected: 10000,
			ok:       true,
		},
		{
			name: "exact amount per hour converts via 2080 hours a year",
			job: models.Job{
				PayType:  payTypePtr(models.PayTypeExact),
				ExactPay: floatPtr(30),
				PayRate:  payRatePtr(models.PayRatePerHour),
			},
			expected: 5200,
			ok:       true,
		},
		{
			name: "exact amount per day converts via 260 days a year",
			job: models.Job{
				PayType:  payTypePtr(models.PayTypeExact),
				ExactPay: floatPtr(240),
				PayRate:  payRatePtr(models.PayRatePerDay),
			},
			expected: 5200,
			ok:       true,
		},
		{
			name: "range uses lower bound",
			job: models.Job{
				PayType:    payTypePtr(models.PayTypeRange),
				MinimumPay: floatPtr(4000),
				MaximumPay: floatPtr(9000),
				PayRate:    payRatePtr(models.PayRatePerMonth),
			},
			expected: 4000,
			ok:       true,
		},
		{
			name: "missing pay rate defaults to monthly",
			job: models.Job{
				PayType:  payTypePtr(models.PayTypeExact),
				ExactPay: floatPtr(3500),
			},
			expected: 3500,
			ok:       true,
		},
		{
			name: "no pay type is unvalued",
			job:  models.Job{},
			ok:   false,
		},
		{
			name: "nil amount is unvalued",
			job: models.Job{
				PayType: payTypePtr(models.PayTypeExact),
				PayRate: payRatePtr(models.PayRatePerMonth),
			},
			ok: false,
		},
		{
			name: "zero amount is unvalued",
			job: models.Job{
				PayType:  payTypePtr(models.PayTypeExact),
				ExactPay: floatPtr(0),
				PayRate:  payRatePtr(models.PayRatePerMonth),
			},
			ok: false,
		},
		{
			name: "negative amount is unvalued",
			job: models.Job{
				PayType:    payTypePtr(models.PayTypeRange),
				MinimumPay: floatPtr(-100),
				MaximumPay: floatPtr(100),
				PayRate:    payRatePtr(models.PayRatePerMonth),
			},
			ok: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthly, ok := NormalizeMonthlyPay(&tt.job)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, monthly, 0.01)
			}
		})
	}
}

func TestSalaryStatistics_MedianOddCount(t *testing.T) {
	breakdown := SalaryStatistics([]float64{7000, 3000, 5000})

	assert.Equal(t, 5000.0, breakdown.Monthly)
	assert.Equal(t, 60000.0, breakdown.Yearly)
}

func TestSalaryStatistics_MedianEvenCount(t *testing.T) {
	breakdown := SalaryStatistics([]float64{3000, 5000, 7000, 9000})

	assert.Equal(t, 6000.0, breakdown.Monthly)
	assert.Equal(t, 72000.0, breakdown.Yearly)
}

func TestSalaryStatistics_EmptyInputIsAllZeros(t *testing.T) {
	breakdown := SalaryStatistics(nil)

	assert.Equal(t, models.SalaryBreakdown{}, breakdown)
}

func TestSalaryStatistics_PeriodProjection(t *testing.T) {
	breakdown := SalaryStatistics([]float64{5200})

	assert.Equal(t, 62400.0, breakdown.Yearly)
	assert.Equal(t, 5200.0, breakdown.Monthly)
	assert.Equal(t, 1200.0, breakdown.Weekly)
	assert.Equal(t, 240.0, breakdown.Daily)
	assert.Equal(t, 30.0, breakdown.Hourly)
}

func TestSalaryStatistics_RoundsToTwoDecimals(t *testing.T) {
	breakdown := SalaryStatistics([]float64{1000})

	// 12000 / 52 = 230.769230...
	assert.Equal(t, 230.77, breakdown.Weekly)
	// 12000 / 2080 = 5.769230...
	assert.Equal(t, 5.77, breakdown.Hourly)
}

func TestSalaryStatistics_DoesNotMutateInput(t *testing.T) {
	values := []float64{9000, 1000, 5000}
	SalaryStatistics(values)

	assert.Equal(t, []float64{9000, 1000, 5000}, values)
}
