package domain

import (
	"github.com/shopspring/decimal"
)

// ScheduleDInput carries the season's capital gain/loss figures plus
// carryover-in amounts. Carryover-in values are zero or negative.
type ScheduleDInput struct {
	FilingStatus             FilingStatus    `yaml:"filing_status" json:"filing_status"`
	ShortTermGainLoss        decimal.Decimal `yaml:"short_term_gain_loss" json:"short_term_gain_loss"`
	LongTermGainLoss         decimal.Decimal `yaml:"long_term_gain_loss" json:"long_term_gain_loss"`
	ShortTermCarryoverIn     decimal.Decimal `yaml:"short_term_carryover_in" json:"short_term_carryover_in"`
	LongTermCarryoverIn      decimal.Decimal `yaml:"long_term_carryover_in" json:"long_term_carryover_in"`
	CapitalGainDistributions decimal.Decimal `yaml:"capital_gain_distributions" json:"capital_gain_distributions"`
}

// ScheduleDResult is the netting outcome. Carryover-out values preserve
// short/long character and are always zero or negative.
type ScheduleDResult struct {
	NetShortTerm                  decimal.Decimal `yaml:"net_short_term" json:"net_short_term"`
	NetLongTerm                   decimal.Decimal `yaml:"net_long_term" json:"net_long_term"`
	NetTotal                      decimal.Decimal `yaml:"net_total" json:"net_total"`
	CapitalLossDeduction          decimal.Decimal `yaml:"capital_loss_deduction" json:"capital_loss_deduction"`
	CarryoverOutShortTerm         decimal.Decimal `yaml:"carryover_out_short_term" json:"carryover_out_short_term"`
	CarryoverOutLongTerm          decimal.Decimal `yaml:"carryover_out_long_term" json:"carryover_out_long_term"`
	QualifiesForPreferentialRates bool            `yaml:"qualifies_for_preferential_rates" json:"qualifies_for_preferential_rates"`
}
