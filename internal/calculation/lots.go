package calculation

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// Lot selection: classifies holding periods and consumes tax lots to satisfy
// a sale quantity under FIFO, LIFO, or explicit lot identification.

const hoursPerDay = 24

// ClassifyHoldingPeriod classifies a disposal. Long-term requires the day
// count to strictly exceed 365; exactly 365 days is short-term.
func ClassifyHoldingPeriod(acquired, sold time.Time) domain.HoldingPeriod {
	days := int(sold.Sub(acquired).Hours() / hoursPerDay)
	if days > 365 {
		return domain.HoldingLongTerm
	}
	return domain.HoldingShortTerm
}

// orderLots returns the lots in consumption order for a method. Specific-id
// keeps the caller's ordering of the named lots and skips unknown ids.
func orderLots(lots []domain.TaxLot, method domain.LotMethod, specificIDs []string) []domain.TaxLot {
	switch method {
	case domain.MethodSpecificID:
		byID := make(map[string]domain.TaxLot, len(lots))
		for _, lot := range lots {
			byID[lot.ID] = lot
		}
		ordered := make([]domain.TaxLot, 0, len(specificIDs))
		for _, id := range specificIDs {
			if lot, ok := byID[id]; ok {
				ordered = append(ordered, lot)
			}
		}
		return ordered
	case domain.MethodLIFO:
		ordered := append([]domain.TaxLot(nil), lots...)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].DateAcquired.After(ordered[j].DateAcquired)
		})
		return ordered
	default: // FIFO
		ordered := append([]domain.TaxLot(nil), lots...)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].DateAcquired.Before(ordered[j].DateAcquired)
		})
		return ordered
	}
}

// SelectLots consumes lots to satisfy a sale of quantity shares at the given
// price, classifying each consumed lot against asOfDate. Requesting more than
// the available quantity sells everything available and records a note.
func SelectLots(lots []domain.TaxLot, quantity, price decimal.Decimal, method domain.LotMethod, asOfDate time.Time, specificIDs []string) domain.LotSelectionResult {
	result := domain.LotSelectionResult{
		Method:            method,
		RequestedQuantity: quantity,
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return result
	}

	remaining := quantity
	for _, lot := range orderLots(lots, method, specificIDs) {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if lot.Quantity.LessThanOrEqual(decimal.Zero) {
			continue
		}
		sold := decimal.Min(remaining, lot.Quantity)
		proceeds := RoundToCents(sold.Mul(price))
		basis := RoundToCents(lot.Basis().Mul(sold).Div(lot.Quantity))
		gainLoss := proceeds.Sub(basis)
		period := ClassifyHoldingPeriod(lot.DateAcquired, asOfDate)

		result.Lots = append(result.Lots, domain.SelectedLot{
			LotID:         lot.ID,
			Symbol:        lot.Symbol,
			DateAcquired:  lot.DateAcquired,
			QuantitySold:  sold,
			Proceeds:      proceeds,
			CostBasis:     basis,
			GainLoss:      gainLoss,
			HoldingPeriod: period,
		})

		result.QuantitySold = result.QuantitySold.Add(sold)
		result.TotalProceeds = result.TotalProceeds.Add(proceeds)
		result.TotalCostBasis = result.TotalCostBasis.Add(basis)
		result.TotalGainLoss = result.TotalGainLoss.Add(gainLoss)
		if period == domain.HoldingLongTerm {
			result.LongTermGainLoss = result.LongTermGainLoss.Add(gainLoss)
		} else {
			result.ShortTermGainLoss = result.ShortTermGainLoss.Add(gainLoss)
		}
		remaining = remaining.Sub(sold)
	}

	if remaining.GreaterThan(decimal.Zero) {
		result.Notes = append(result.Notes, fmt.Sprintf(
			"requested %s shares but only %s available; selling all available shares",
			quantity.String(), result.QuantitySold.String()))
	}
	return result
}

// estimateTaxImpact weights each method's short/long gain split by the
// supplied ordinary and long-term rates. Losses reduce the estimate.
func estimateTaxImpact(result domain.LotSelectionResult, ordinaryRate, longTermRate decimal.Decimal) decimal.Decimal {
	shortTax := ApplyRate(result.ShortTermGainLoss, ordinaryRate)
	longTax := ApplyRate(result.LongTermGainLoss, longTermRate)
	return RoundToCents(shortTax.Add(longTax))
}

// CompareLotStrategies runs FIFO and LIFO (and specific-id when lot ids are
// supplied) over the same sale request and picks the method with the lowest
// estimated tax.
func CompareLotStrategies(lots []domain.TaxLot, quantity, price decimal.Decimal, asOfDate time.Time, ordinaryRate, longTermRate decimal.Decimal, specificIDs []string) domain.LotStrategyComparison {
	methods := []domain.LotMethod{domain.MethodFIFO, domain.MethodLIFO}
	if len(specificIDs) > 0 {
		methods = append(methods, domain.MethodSpecificID)
	}

	comparison := domain.LotStrategyComparison{}
	for _, method := range methods {
		result := SelectLots(lots, quantity, price, method, asOfDate, specificIDs)
		result.EstimatedTax = estimateTaxImpact(result, ordinaryRate, longTermRate)
		comparison.Results = append(comparison.Results, result)
	}

	best := comparison.Results[0]
	for _, candidate := range comparison.Results[1:] {
		if candidate.EstimatedTax.LessThan(best.EstimatedTax) {
			best = candidate
		}
	}
	comparison.BestMethod = best.Method
	return comparison
}
