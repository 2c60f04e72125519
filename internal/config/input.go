package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// InputParser handles parsing of scenario and rules files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadScenario loads a tax scenario from a YAML or JSON file
func (ip *InputParser) LoadScenario(filename string) (*domain.TaxScenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var scenario domain.TaxScenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &scenario, nil
}

// LoadRules loads a rules override from a YAML or JSON file
func (ip *InputParser) LoadRules(filename string) (*domain.TaxRulesConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rules domain.TaxRulesConfig
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}

	return &rules, nil
}

// ValidateScenario validates the loaded scenario
func (ip *InputParser) ValidateScenario(scenario *domain.TaxScenario) error {
	if scenario.Year <= 0 {
		return fmt.Errorf("tax year is required")
	}

	if err := ip.validateIncome(&scenario.Income); err != nil {
		return fmt.Errorf("income validation failed: %w", err)
	}

	for i, position := range scenario.Positions {
		if err := ip.validatePosition(&position); err != nil {
			return fmt.Errorf("position %d (%s) validation failed: %w", i, position.Symbol, err)
		}
	}

	for i, sale := range scenario.Sales {
		if sale.Symbol == "" {
			return fmt.Errorf("sale %d: symbol is required", i)
		}
		if sale.SaleDate.IsZero() {
			return fmt.Errorf("sale %d: sale date is required", i)
		}
	}

	for i, purchase := range scenario.Purchases {
		if purchase.Symbol == "" {
			return fmt.Errorf("purchase %d: symbol is required", i)
		}
		if purchase.PurchaseDate.IsZero() {
			return fmt.Errorf("purchase %d: purchase date is required", i)
		}
	}

	if scenario.SaleRequest != nil {
		if err := ip.validateSaleRequest(scenario.SaleRequest, scenario.Positions); err != nil {
			return fmt.Errorf("sale request validation failed: %w", err)
		}
	}

	if scenario.Quarterly != nil {
		if err := ip.validateQuarterly(scenario.Quarterly); err != nil {
			return fmt.Errorf("quarterly validation failed: %w", err)
		}
	}

	return nil
}

// validateIncome validates the income summary
func (ip *InputParser) validateIncome(income *domain.IncomeSummary) error {
	if income.Wages.LessThan(decimal.Zero) {
		return fmt.Errorf("wages cannot be negative")
	}
	if income.Withholding.LessThan(decimal.Zero) {
		return fmt.Errorf("withholding cannot be negative")
	}
	if income.EstimatedPayments.LessThan(decimal.Zero) {
		return fmt.Errorf("estimated payments cannot be negative")
	}
	if income.Deductions.LessThan(decimal.Zero) {
		return fmt.Errorf("itemized deductions cannot be negative")
	}
	if income.QualifiedDividends.LessThan(decimal.Zero) {
		return fmt.Errorf("qualified dividends cannot be negative")
	}
	if income.QualifiedDividends.GreaterThan(income.OrdinaryDividends) {
		return fmt.Errorf("qualified dividends cannot exceed ordinary dividends")
	}
	return nil
}

// validatePosition validates a portfolio position and its lots
func (ip *InputParser) validatePosition(position *domain.Position) error {
	if position.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if len(position.Lots) == 0 {
		return fmt.Errorf("at least one lot is required")
	}

	lotIDs := make(map[string]bool, len(position.Lots))
	lotTotal := decimal.Zero
	for i, lot := range position.Lots {
		if lot.ID == "" {
			return fmt.Errorf("lot %d: id is required", i)
		}
		if lotIDs[lot.ID] {
			return fmt.Errorf("lot %d: duplicate lot id %s", i, lot.ID)
		}
		lotIDs[lot.ID] = true
		if lot.DateAcquired.IsZero() {
			return fmt.Errorf("lot %s: acquisition date is required", lot.ID)
		}
		if lot.Quantity.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("lot %s: quantity must be positive", lot.ID)
		}
		if lot.TotalCostBasis.LessThan(decimal.Zero) {
			return fmt.Errorf("lot %s: cost basis cannot be negative", lot.ID)
		}
		lotTotal = lotTotal.Add(lot.Quantity)
	}

	if !position.TotalQuantity.IsZero() && !position.TotalQuantity.Equal(lotTotal) {
		return fmt.Errorf("total quantity %s does not match lot quantities summing to %s",
			position.TotalQuantity.String(), lotTotal.String())
	}
	return nil
}

// validateSaleRequest validates a simulated disposal against the positions
func (ip *InputParser) validateSaleRequest(request *domain.SaleRequest, positions []domain.Position) error {
	if request.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if request.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("quantity must be positive")
	}
	if request.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("price must be positive")
	}

	switch request.Method {
	case domain.MethodFIFO, domain.MethodLIFO:
	case domain.MethodSpecificID:
		if len(request.SpecificLots) == 0 {
			return fmt.Errorf("specific_id method requires specific_lots")
		}
	case "":
		return fmt.Errorf("lot method is required")
	default:
		return fmt.Errorf("lot method must be 'fifo', 'lifo', or 'specific_id'")
	}

	for _, position := range positions {
		if position.Symbol == request.Symbol {
			return nil
		}
	}
	return fmt.Errorf("no position held for symbol %s", request.Symbol)
}

// validateQuarterly validates the quarterly scheduler inputs
func (ip *InputParser) validateQuarterly(quarterly *domain.QuarterlyScenario) error {
	if quarterly.PriorYearTax.LessThan(decimal.Zero) {
		return fmt.Errorf("prior year tax cannot be negative")
	}
	if quarterly.PriorYearAGI.LessThan(decimal.Zero) {
		return fmt.Errorf("prior year AGI cannot be negative")
	}
	for i, payment := range quarterly.Payments {
		if payment.Date.IsZero() {
			return fmt.Errorf("payment %d: date is required", i)
		}
		if payment.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("payment %d: amount must be positive", i)
		}
	}
	return nil
}

// ValidateRules validates a rules set, bracket table shape included
func (ip *InputParser) ValidateRules(rules *domain.TaxRulesConfig) error {
	if rules.Metadata.DataYear <= 0 {
		return fmt.Errorf("metadata data_year is required")
	}

	tables := map[string][]domain.TaxBracket{
		"federal single ordinary":             rules.FederalTax.OrdinaryBrackets.Single,
		"federal joint ordinary":              rules.FederalTax.OrdinaryBrackets.MarriedFilingJointly,
		"federal separate ordinary":           rules.FederalTax.OrdinaryBrackets.MarriedFilingSeparately,
		"federal head-of-household ordinary":  rules.FederalTax.OrdinaryBrackets.HeadOfHousehold,
		"federal single capital gains":        rules.FederalTax.CapitalGainsBrackets.Single,
		"federal joint capital gains":         rules.FederalTax.CapitalGainsBrackets.MarriedFilingJointly,
		"federal separate capital gains":      rules.FederalTax.CapitalGainsBrackets.MarriedFilingSeparately,
		"federal head-of-household cap gains": rules.FederalTax.CapitalGainsBrackets.HeadOfHousehold,
	}
	for name, table := range tables {
		if err := ip.validateBracketTable(table); err != nil {
			return fmt.Errorf("%s bracket table invalid: %w", name, err)
		}
	}

	for code, state := range rules.States {
		if state.Regime == domain.RegimeProgressive {
			if err := ip.validateBracketTable(state.Brackets.Single); err != nil {
				return fmt.Errorf("state %s bracket table invalid: %w", code, err)
			}
		}
	}
	return nil
}

// validateBracketTable checks that a table partitions [0, inf): it starts at
// zero, each bracket begins where the previous one ended, and the last bracket
// is unbounded. Empty tables are allowed so overrides can omit statuses.
func (ip *InputParser) validateBracketTable(table []domain.TaxBracket) error {
	if len(table) == 0 {
		return nil
	}
	if !table[0].Min.IsZero() {
		return fmt.Errorf("first bracket must start at zero, got %s", table[0].Min.String())
	}
	for i, b := range table {
		if b.Rate.LessThan(decimal.Zero) || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d rate must be between 0 and 1", i)
		}
		if i > 0 {
			prev := table[i-1]
			if prev.Max == nil {
				return fmt.Errorf("bracket %d follows an unbounded bracket", i)
			}
			if !b.Min.Equal(*prev.Max) {
				return fmt.Errorf("bracket %d starts at %s but previous ends at %s",
					i, b.Min.String(), prev.Max.String())
			}
		}
		if b.Max != nil && b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("bracket %d max %s is not above min %s", i, b.Max.String(), b.Min.String())
		}
	}
	if table[len(table)-1].Max != nil {
		return fmt.Errorf("last bracket must be unbounded")
	}
	return nil
}
