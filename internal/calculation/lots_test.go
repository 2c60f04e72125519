package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testLots() []domain.TaxLot {
	return []domain.TaxLot{
		{
			ID: "lot-a", Symbol: "VTI", DateAcquired: date(2023, time.January, 10),
			Quantity:          decimal.NewFromInt(100),
			CostBasisPerShare: decimal.NewFromInt(10),
			TotalCostBasis:    decimal.NewFromInt(1000),
		},
		{
			ID: "lot-b", Symbol: "VTI", DateAcquired: date(2024, time.March, 5),
			Quantity:          decimal.NewFromInt(50),
			CostBasisPerShare: decimal.NewFromInt(20),
			TotalCostBasis:    decimal.NewFromInt(1000),
		},
		{
			ID: "lot-c", Symbol: "VTI", DateAcquired: date(2025, time.February, 1),
			Quantity:          decimal.NewFromInt(25),
			CostBasisPerShare: decimal.NewFromInt(30),
			TotalCostBasis:    decimal.NewFromInt(750),
		},
	}
}

func TestClassifyHoldingPeriod(t *testing.T) {
	tests := []struct {
		name     string
		acquired time.Time
		sold     time.Time
		expected domain.HoldingPeriod
	}{
		{"same day", date(2025, time.March, 1), date(2025, time.March, 1), domain.HoldingShortTerm},
		{"364 days", date(2024, time.January, 2), date(2024, time.December, 31), domain.HoldingShortTerm},
		{"exactly 365 days is short-term", date(2024, time.January, 1), date(2024, time.December, 31), domain.HoldingShortTerm},
		{"366 days is long-term", date(2024, time.January, 1), date(2025, time.January, 1), domain.HoldingLongTerm},
		{"multi-year", date(2020, time.June, 1), date(2025, time.June, 1), domain.HoldingLongTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyHoldingPeriod(tt.acquired, tt.sold))
		})
	}
}

func TestSelectLotsFIFO(t *testing.T) {
	asOf := date(2025, time.June, 1)
	result := SelectLots(testLots(), decimal.NewFromInt(120), decimal.NewFromInt(40), domain.MethodFIFO, asOf, nil)

	require.Len(t, result.Lots, 2)
	assert.Equal(t, "lot-a", result.Lots[0].LotID)
	assert.Equal(t, "lot-b", result.Lots[1].LotID)
	assert.True(t, result.Lots[1].QuantitySold.Equal(decimal.NewFromInt(20)))

	assert.True(t, result.QuantitySold.Equal(decimal.NewFromInt(120)))
	assert.True(t, result.TotalProceeds.Equal(decimal.NewFromInt(4800)))
	assert.True(t, result.TotalCostBasis.Equal(decimal.NewFromInt(1400)))
	assert.True(t, result.TotalGainLoss.Equal(decimal.NewFromInt(3400)))
	assert.True(t, result.ShortTermGainLoss.IsZero())
	assert.True(t, result.LongTermGainLoss.Equal(decimal.NewFromInt(3400)))
}

func TestSelectLotsLIFO(t *testing.T) {
	asOf := date(2025, time.June, 1)
	result := SelectLots(testLots(), decimal.NewFromInt(120), decimal.NewFromInt(40), domain.MethodLIFO, asOf, nil)

	require.Len(t, result.Lots, 3)
	assert.Equal(t, "lot-c", result.Lots[0].LotID)
	assert.Equal(t, "lot-b", result.Lots[1].LotID)
	assert.Equal(t, "lot-a", result.Lots[2].LotID)
	assert.True(t, result.Lots[2].QuantitySold.Equal(decimal.NewFromInt(45)))

	assert.True(t, result.TotalProceeds.Equal(decimal.NewFromInt(4800)))
	assert.True(t, result.TotalCostBasis.Equal(decimal.NewFromInt(2200)))
	assert.True(t, result.TotalGainLoss.Equal(decimal.NewFromInt(2600)))
	// Only the February 2025 lot is short-term as of June 2025.
	assert.True(t, result.ShortTermGainLoss.Equal(decimal.NewFromInt(250)))
	assert.True(t, result.LongTermGainLoss.Equal(decimal.NewFromInt(2350)))
}

func TestSelectLotsSpecificID(t *testing.T) {
	asOf := date(2025, time.June, 1)
	result := SelectLots(testLots(), decimal.NewFromInt(30), decimal.NewFromInt(40), domain.MethodSpecificID, asOf, []string{"lot-b"})

	require.Len(t, result.Lots, 1)
	assert.Equal(t, "lot-b", result.Lots[0].LotID)
	assert.True(t, result.QuantitySold.Equal(decimal.NewFromInt(30)))
	assert.True(t, result.TotalCostBasis.Equal(decimal.NewFromInt(600)))
}

func TestSelectLotsOversell(t *testing.T) {
	asOf := date(2025, time.June, 1)
	result := SelectLots(testLots(), decimal.NewFromInt(500), decimal.NewFromInt(40), domain.MethodFIFO, asOf, nil)

	// Selling more than held sells the entire position without erroring.
	assert.True(t, result.QuantitySold.Equal(decimal.NewFromInt(175)))
	assert.NotEmpty(t, result.Notes)
}

func TestSelectLotsAdjustedBasis(t *testing.T) {
	lots := []domain.TaxLot{{
		ID: "lot-w", Symbol: "VTI", DateAcquired: date(2024, time.January, 2),
		Quantity:           decimal.NewFromInt(10),
		CostBasisPerShare:  decimal.NewFromInt(100),
		TotalCostBasis:     decimal.NewFromInt(1000),
		AdjustedBasis:      decimal.NewFromInt(1200),
		WashSaleAdjustment: decimal.NewFromInt(200),
	}}
	result := SelectLots(lots, decimal.NewFromInt(10), decimal.NewFromInt(90), domain.MethodFIFO, date(2024, time.June, 1), nil)
	// Wash-sale adjusted basis, not original cost, drives the loss.
	assert.True(t, result.TotalGainLoss.Equal(decimal.NewFromInt(-300)))
}

func TestCompareLotStrategies(t *testing.T) {
	asOf := date(2025, time.June, 1)
	comparison := CompareLotStrategies(
		testLots(), decimal.NewFromInt(120), decimal.NewFromInt(40), asOf,
		decimal.NewFromFloat(0.24), decimal.NewFromFloat(0.15), nil)

	require.Len(t, comparison.Results, 2)

	var fifo, lifo domain.LotSelectionResult
	for _, r := range comparison.Results {
		switch r.Method {
		case domain.MethodFIFO:
			fifo = r
		case domain.MethodLIFO:
			lifo = r
		}
	}
	assert.True(t, fifo.EstimatedTax.Equal(decimal.NewFromInt(510)),
		"fifo impact: got %s", fifo.EstimatedTax.String())
	assert.True(t, lifo.EstimatedTax.Equal(decimal.NewFromFloat(412.50)),
		"lifo impact: got %s", lifo.EstimatedTax.String())
	assert.Equal(t, domain.MethodLIFO, comparison.BestMethod)
}
