package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// Built-in rules sets, keyed by tax year. Tables are constructed fresh on
// every lookup so callers can never mutate shared configuration.

// bracket builds one row of a table. A negative max marks the unbounded top
// bracket.
func bracket(min, max int64, rate float64) domain.TaxBracket {
	b := domain.TaxBracket{
		Min:  decimal.NewFromInt(min),
		Rate: decimal.NewFromFloat(rate),
	}
	if max >= 0 {
		top := decimal.NewFromInt(max)
		b.Max = &top
	}
	return b
}

func amounts(single, mfj, mfs, hoh int64) domain.StatusAmounts {
	return domain.StatusAmounts{
		Single:                  decimal.NewFromInt(single),
		MarriedFilingJointly:    decimal.NewFromInt(mfj),
		MarriedFilingSeparately: decimal.NewFromInt(mfs),
		HeadOfHousehold:         decimal.NewFromInt(hoh),
	}
}

// Rules2025 returns the built-in 2025 rules set.
func Rules2025() *domain.TaxRulesConfig {
	return &domain.TaxRulesConfig{
		Metadata: domain.RulesMetadata{
			DataYear:    2025,
			LastUpdated: "2025-01-15",
			Description: "2025 federal and state tax constants",
		},
		FederalTax: domain.FederalTaxRules{
			StandardDeduction: amounts(15000, 30000, 15000, 22500),
			OrdinaryBrackets: domain.StatusBrackets{
				Single: []domain.TaxBracket{
					bracket(0, 11925, 0.10),
					bracket(11925, 48475, 0.12),
					bracket(48475, 103350, 0.22),
					bracket(103350, 197300, 0.24),
					bracket(197300, 250525, 0.32),
					bracket(250525, 626350, 0.35),
					bracket(626350, -1, 0.37),
				},
				MarriedFilingJointly: []domain.TaxBracket{
					bracket(0, 23850, 0.10),
					bracket(23850, 96950, 0.12),
					bracket(96950, 206700, 0.22),
					bracket(206700, 394600, 0.24),
					bracket(394600, 501050, 0.32),
					bracket(501050, 751600, 0.35),
					bracket(751600, -1, 0.37),
				},
				MarriedFilingSeparately: []domain.TaxBracket{
					bracket(0, 11925, 0.10),
					bracket(11925, 48475, 0.12),
					bracket(48475, 103350, 0.22),
					bracket(103350, 197300, 0.24),
					bracket(197300, 250525, 0.32),
					bracket(250525, 375800, 0.35),
					bracket(375800, -1, 0.37),
				},
				HeadOfHousehold: []domain.TaxBracket{
					bracket(0, 17000, 0.10),
					bracket(17000, 64850, 0.12),
					bracket(64850, 103350, 0.22),
					bracket(103350, 197300, 0.24),
					bracket(197300, 250525, 0.32),
					bracket(250525, 626350, 0.35),
					bracket(626350, -1, 0.37),
				},
			},
			CapitalGainsBrackets: domain.StatusBrackets{
				Single: []domain.TaxBracket{
					bracket(0, 48350, 0.0),
					bracket(48350, 533400, 0.15),
					bracket(533400, -1, 0.20),
				},
				MarriedFilingJointly: []domain.TaxBracket{
					bracket(0, 96700, 0.0),
					bracket(96700, 600050, 0.15),
					bracket(600050, -1, 0.20),
				},
				MarriedFilingSeparately: []domain.TaxBracket{
					bracket(0, 48350, 0.0),
					bracket(48350, 300000, 0.15),
					bracket(300000, -1, 0.20),
				},
				HeadOfHousehold: []domain.TaxBracket{
					bracket(0, 64750, 0.0),
					bracket(64750, 566700, 0.15),
					bracket(566700, -1, 0.20),
				},
			},
			NIITRate:       decimal.NewFromFloat(0.038),
			NIITThresholds: amounts(200000, 250000, 125000, 200000),
		},
		SelfEmployment: domain.SelfEmploymentRules{
			NetEarningsFactor:            decimal.NewFromFloat(0.9235),
			SocialSecurityRate:           decimal.NewFromFloat(0.124),
			SocialSecurityWageBase:       decimal.NewFromInt(176100),
			MedicareRate:                 decimal.NewFromFloat(0.029),
			AdditionalMedicareRate:       decimal.NewFromFloat(0.009),
			AdditionalMedicareThresholds: amounts(200000, 250000, 125000, 200000),
		},
		AMT: domain.AMTRules{
			Exemption:          amounts(88100, 137000, 68500, 88100),
			PhaseoutThreshold:  amounts(626350, 1252700, 626350, 626350),
			PhaseoutRate:       decimal.NewFromFloat(0.25),
			LowRate:            decimal.NewFromFloat(0.26),
			HighRate:           decimal.NewFromFloat(0.28),
			HighRateThresholds: amounts(248300, 248300, 124150, 248300),
		},
		CapitalLoss: domain.CapitalLossRules{
			DeductionCap: amounts(3000, 3000, 1500, 3000),
		},
		SafeHarbor: domain.SafeHarborRules{
			PriorYearFactor:           decimal.NewFromFloat(1.00),
			HighIncomePriorYearFactor: decimal.NewFromFloat(1.10),
			CurrentYearFactor:         decimal.NewFromFloat(0.90),
			HighIncomeAGIThresholds:   amounts(150000, 150000, 75000, 150000),
		},
		States: stateRules(),
	}
}

func stateRules() map[string]domain.StateRules {
	states := map[string]domain.StateRules{
		"CA": {
			Name:   "California",
			Regime: domain.RegimeProgressive,
			Brackets: domain.StatusBrackets{
				Single: []domain.TaxBracket{
					bracket(0, 10412, 0.01),
					bracket(10412, 24684, 0.02),
					bracket(24684, 38959, 0.04),
					bracket(38959, 54081, 0.06),
					bracket(54081, 68350, 0.08),
					bracket(68350, 349137, 0.093),
					bracket(349137, 418961, 0.103),
					bracket(418961, 698271, 0.113),
					bracket(698271, 1000000, 0.123),
					bracket(1000000, -1, 0.133),
				},
				MarriedFilingJointly: []domain.TaxBracket{
					bracket(0, 20824, 0.01),
					bracket(20824, 49368, 0.02),
					bracket(49368, 77918, 0.04),
					bracket(77918, 108162, 0.06),
					bracket(108162, 136700, 0.08),
					bracket(136700, 698274, 0.093),
					bracket(698274, 837922, 0.103),
					bracket(837922, 1396542, 0.113),
					bracket(1396542, -1, 0.133),
				},
				HeadOfHousehold: []domain.TaxBracket{
					bracket(0, 20839, 0.01),
					bracket(20839, 49371, 0.02),
					bracket(49371, 63644, 0.04),
					bracket(63644, 78765, 0.06),
					bracket(78765, 93037, 0.08),
					bracket(93037, 474824, 0.093),
					bracket(474824, 569790, 0.103),
					bracket(569790, 949649, 0.113),
					bracket(949649, 1000000, 0.123),
					bracket(1000000, -1, 0.133),
				},
			},
			Notes: []string{"includes 1% mental health services surtax on income over $1,000,000"},
		},
		"NY": {
			Name:   "New York",
			Regime: domain.RegimeProgressive,
			Brackets: domain.StatusBrackets{
				Single: []domain.TaxBracket{
					bracket(0, 8500, 0.04),
					bracket(8500, 11700, 0.045),
					bracket(11700, 13900, 0.0525),
					bracket(13900, 80650, 0.055),
					bracket(80650, 215400, 0.06),
					bracket(215400, 1077550, 0.0685),
					bracket(1077550, 5000000, 0.0965),
					bracket(5000000, 25000000, 0.103),
					bracket(25000000, -1, 0.109),
				},
				MarriedFilingJointly: []domain.TaxBracket{
					bracket(0, 17150, 0.04),
					bracket(17150, 23600, 0.045),
					bracket(23600, 27900, 0.0525),
					bracket(27900, 161550, 0.055),
					bracket(161550, 323200, 0.06),
					bracket(323200, 2155350, 0.0685),
					bracket(2155350, 5000000, 0.0965),
					bracket(5000000, 25000000, 0.103),
					bracket(25000000, -1, 0.109),
				},
				HeadOfHousehold: []domain.TaxBracket{
					bracket(0, 12800, 0.04),
					bracket(12800, 17650, 0.045),
					bracket(17650, 20900, 0.0525),
					bracket(20900, 107650, 0.055),
					bracket(107650, 269300, 0.06),
					bracket(269300, 1616450, 0.0685),
					bracket(1616450, 5000000, 0.0965),
					bracket(5000000, 25000000, 0.103),
					bracket(25000000, -1, 0.109),
				},
			},
		},
		"MA": {
			Name:            "Massachusetts",
			Regime:          domain.RegimeFlatSurtax,
			Rate:            decimal.NewFromFloat(0.05),
			SurtaxRate:      decimal.NewFromFloat(0.04),
			SurtaxThreshold: decimal.NewFromInt(1000000),
			Notes:           []string{"4% surtax applies to taxable income over $1,000,000"},
		},
	}

	flat := map[string]struct {
		name string
		rate float64
	}{
		"PA": {"Pennsylvania", 0.0307},
		"IL": {"Illinois", 0.0495},
		"CO": {"Colorado", 0.0440},
		"MI": {"Michigan", 0.0425},
		"IN": {"Indiana", 0.0305},
		"NC": {"North Carolina", 0.0450},
		"UT": {"Utah", 0.0465},
		"AZ": {"Arizona", 0.0250},
		"KY": {"Kentucky", 0.0400},
	}
	for code, s := range flat {
		states[code] = domain.StateRules{
			Name:   s.name,
			Regime: domain.RegimeFlat,
			Rate:   decimal.NewFromFloat(s.rate),
		}
	}

	noTax := map[string]string{
		"TX": "Texas", "FL": "Florida", "WA": "Washington",
		"NV": "Nevada", "SD": "South Dakota", "WY": "Wyoming",
		"AK": "Alaska", "TN": "Tennessee", "NH": "New Hampshire",
	}
	for code, name := range noTax {
		states[code] = domain.StateRules{
			Name:   name,
			Regime: domain.RegimeNoTax,
		}
	}
	return states
}

// builtinYears lists every year with a built-in rules set, ascending.
var builtinYears = []int{2025}

func rulesForBuiltinYear(year int) *domain.TaxRulesConfig {
	switch year {
	case 2025:
		return Rules2025()
	default:
		return nil
	}
}

// RulesForYear looks up the built-in rules set for a tax year. Unknown years
// resolve to the closest earlier built-in year (or the earliest built-in year
// when the request predates all of them) and report an assumption note.
func RulesForYear(year int) (*domain.TaxRulesConfig, []string) {
	if rules := rulesForBuiltinYear(year); rules != nil {
		return rules, nil
	}
	resolved := builtinYears[0]
	for _, y := range builtinYears {
		if y <= year {
			resolved = y
		}
	}
	note := fmt.Sprintf("no built-in tables for tax year %d; using %d tables", year, resolved)
	return rulesForBuiltinYear(resolved), []string{note}
}
