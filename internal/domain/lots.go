package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxLot is a discrete purchase record of a security. Lots are owned by the
// caller's position store; the engine treats them as read-only input.
type TaxLot struct {
	ID                 string          `yaml:"id" json:"id"`
	Symbol             string          `yaml:"symbol" json:"symbol"`
	DateAcquired       time.Time       `yaml:"date_acquired" json:"date_acquired"`
	Quantity           decimal.Decimal `yaml:"quantity" json:"quantity"`
	CostBasisPerShare  decimal.Decimal `yaml:"cost_basis_per_share" json:"cost_basis_per_share"`
	TotalCostBasis     decimal.Decimal `yaml:"total_cost_basis" json:"total_cost_basis"`
	AdjustedBasis      decimal.Decimal `yaml:"adjusted_basis,omitempty" json:"adjusted_basis,omitempty"`
	WashSaleAdjustment decimal.Decimal `yaml:"wash_sale_adjustment,omitempty" json:"wash_sale_adjustment,omitempty"`
	AccountID          string          `yaml:"account_id,omitempty" json:"account_id,omitempty"`
}

// Basis returns the adjusted basis when one has been recorded, otherwise the
// original total cost basis.
func (l TaxLot) Basis() decimal.Decimal {
	if !l.AdjustedBasis.IsZero() {
		return l.AdjustedBasis
	}
	return l.TotalCostBasis
}

// Position aggregates the lots for one security in one account.
type Position struct {
	Symbol        string          `yaml:"symbol" json:"symbol"`
	TotalQuantity decimal.Decimal `yaml:"total_quantity" json:"total_quantity"`
	Lots          []TaxLot        `yaml:"lots" json:"lots"`
	CurrentPrice  decimal.Decimal `yaml:"current_price" json:"current_price"`
	AccountID     string          `yaml:"account_id,omitempty" json:"account_id,omitempty"`
}

// HoldingPeriod classifies a disposal as short- or long-term. Exactly 365 days
// is short-term; long-term requires strictly more than 365 days.
type HoldingPeriod string

const (
	HoldingShortTerm HoldingPeriod = "short_term"
	HoldingLongTerm  HoldingPeriod = "long_term"
)

// LotMethod selects the disposal strategy for a sale.
type LotMethod string

const (
	MethodFIFO       LotMethod = "fifo"
	MethodLIFO       LotMethod = "lifo"
	MethodSpecificID LotMethod = "specific_id"
)

// SelectedLot records one lot (or portion of a lot) consumed by a sale.
type SelectedLot struct {
	LotID         string          `yaml:"lot_id" json:"lot_id"`
	Symbol        string          `yaml:"symbol" json:"symbol"`
	DateAcquired  time.Time       `yaml:"date_acquired" json:"date_acquired"`
	QuantitySold  decimal.Decimal `yaml:"quantity_sold" json:"quantity_sold"`
	Proceeds      decimal.Decimal `yaml:"proceeds" json:"proceeds"`
	CostBasis     decimal.Decimal `yaml:"cost_basis" json:"cost_basis"`
	GainLoss      decimal.Decimal `yaml:"gain_loss" json:"gain_loss"`
	HoldingPeriod HoldingPeriod   `yaml:"holding_period" json:"holding_period"`
}

// LotSelectionResult is the per-method breakdown of a simulated sale.
type LotSelectionResult struct {
	Method            LotMethod       `yaml:"method" json:"method"`
	RequestedQuantity decimal.Decimal `yaml:"requested_quantity" json:"requested_quantity"`
	QuantitySold      decimal.Decimal `yaml:"quantity_sold" json:"quantity_sold"`
	TotalProceeds     decimal.Decimal `yaml:"total_proceeds" json:"total_proceeds"`
	TotalCostBasis    decimal.Decimal `yaml:"total_cost_basis" json:"total_cost_basis"`
	TotalGainLoss     decimal.Decimal `yaml:"total_gain_loss" json:"total_gain_loss"`
	ShortTermGainLoss decimal.Decimal `yaml:"short_term_gain_loss" json:"short_term_gain_loss"`
	LongTermGainLoss  decimal.Decimal `yaml:"long_term_gain_loss" json:"long_term_gain_loss"`
	Lots              []SelectedLot   `yaml:"lots" json:"lots"`
	EstimatedTax      decimal.Decimal `yaml:"estimated_tax" json:"estimated_tax"`
	Notes             []string        `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// LotStrategyComparison runs multiple disposal strategies over the same sale
// request. BestMethod is the strategy with the lowest estimated tax.
type LotStrategyComparison struct {
	Results    []LotSelectionResult `yaml:"results" json:"results"`
	BestMethod LotMethod            `yaml:"best_method" json:"best_method"`
}

// SaleRecord is a realized disposal examined by the wash-sale checker.
// GainLoss < 0 marks a loss sale eligible for matching.
type SaleRecord struct {
	Symbol   string          `yaml:"symbol" json:"symbol"`
	LotID    string          `yaml:"lot_id,omitempty" json:"lot_id,omitempty"`
	SaleDate time.Time       `yaml:"sale_date" json:"sale_date"`
	Quantity decimal.Decimal `yaml:"quantity" json:"quantity"`
	GainLoss decimal.Decimal `yaml:"gain_loss" json:"gain_loss"`
}

// PurchaseRecord is a replacement purchase candidate for wash-sale matching.
type PurchaseRecord struct {
	Symbol       string          `yaml:"symbol" json:"symbol"`
	PurchaseDate time.Time       `yaml:"purchase_date" json:"purchase_date"`
	Quantity     decimal.Decimal `yaml:"quantity" json:"quantity"`
}

// WashSaleViolation links one loss sale to one replacement purchase inside the
// +-30-day window. BasisAdjustment is the disallowed loss added to the
// replacement lot's basis.
type WashSaleViolation struct {
	Symbol          string          `yaml:"symbol" json:"symbol"`
	SaleLotID       string          `yaml:"sale_lot_id,omitempty" json:"sale_lot_id,omitempty"`
	SaleDate        time.Time       `yaml:"sale_date" json:"sale_date"`
	PurchaseDate    time.Time       `yaml:"purchase_date" json:"purchase_date"`
	DisallowedLoss  decimal.Decimal `yaml:"disallowed_loss" json:"disallowed_loss"`
	BasisAdjustment decimal.Decimal `yaml:"basis_adjustment" json:"basis_adjustment"`
}

// WashSaleCheckResult aggregates violations across a set of sales.
type WashSaleCheckResult struct {
	Compliant           bool                `yaml:"compliant" json:"compliant"`
	Violations          []WashSaleViolation `yaml:"violations,omitempty" json:"violations,omitempty"`
	TotalDisallowedLoss decimal.Decimal     `yaml:"total_disallowed_loss" json:"total_disallowed_loss"`
}
