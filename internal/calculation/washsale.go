package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// Wash-sale checking: a loss sale is disallowed when a replacement purchase
// of the same security lands inside the closed window of 30 days on either
// side of the sale date.

// WashSaleWindowDays is the one-sided width of the matching window.
const WashSaleWindowDays = 30

// inWashSaleWindow reports whether a purchase date falls within the closed
// window [saleDate-30d, saleDate+30d].
func inWashSaleWindow(saleDate, purchaseDate time.Time) bool {
	start := saleDate.AddDate(0, 0, -WashSaleWindowDays)
	end := saleDate.AddDate(0, 0, WashSaleWindowDays)
	return !purchaseDate.Before(start) && !purchaseDate.After(end)
}

// CheckWashSales matches each loss sale against the earliest still-unconsumed
// purchase of the same symbol inside the window. A purchase satisfies at most
// one sale, so a single replacement is never counted against two losses. Gain
// sales are ignored.
func CheckWashSales(sales []domain.SaleRecord, purchases []domain.PurchaseRecord) domain.WashSaleCheckResult {
	result := domain.WashSaleCheckResult{
		Compliant:           true,
		TotalDisallowedLoss: decimal.Zero,
	}

	consumed := make([]bool, len(purchases))
	for _, sale := range sales {
		if !sale.GainLoss.IsNegative() {
			continue
		}

		matchIdx := -1
		for i, purchase := range purchases {
			if consumed[i] || purchase.Symbol != sale.Symbol {
				continue
			}
			if !inWashSaleWindow(sale.SaleDate, purchase.PurchaseDate) {
				continue
			}
			if matchIdx < 0 || purchase.PurchaseDate.Before(purchases[matchIdx].PurchaseDate) {
				matchIdx = i
			}
		}
		if matchIdx < 0 {
			continue
		}

		consumed[matchIdx] = true
		disallowed := sale.GainLoss.Abs()
		result.Violations = append(result.Violations, domain.WashSaleViolation{
			Symbol:          sale.Symbol,
			SaleLotID:       sale.LotID,
			SaleDate:        sale.SaleDate,
			PurchaseDate:    purchases[matchIdx].PurchaseDate,
			DisallowedLoss:  disallowed,
			BasisAdjustment: disallowed,
		})
		result.TotalDisallowedLoss = result.TotalDisallowedLoss.Add(disallowed)
	}

	result.Compliant = len(result.Violations) == 0
	return result
}

// WouldTriggerWashSale reports whether selling the symbol at a loss on the
// proposed date would be disallowed given the recent purchase history.
func WouldTriggerWashSale(symbol string, proposedDate time.Time, recentPurchases []domain.PurchaseRecord) bool {
	for _, purchase := range recentPurchases {
		if purchase.Symbol == symbol && inWashSaleWindow(proposedDate, purchase.PurchaseDate) {
			return true
		}
	}
	return false
}

// EarliestSafeRepurchaseDate returns the first date a repurchase cannot match
// the sale: 31 days after the sale.
func EarliestSafeRepurchaseDate(saleDate time.Time) time.Time {
	return saleDate.AddDate(0, 0, WashSaleWindowDays+1)
}
