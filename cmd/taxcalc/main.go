package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/taxcalc/internal/calculation"
	"github.com/rgehrsitz/taxcalc/internal/config"
	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/rgehrsitz/taxcalc/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taxcalc",
	Short: "US income tax estimation CLI",
	Long:  "Estimates federal and state tax liability, AMT, capital gain netting, lot selection, wash sales, and quarterly payments from a YAML scenario file",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxcalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, "go:", bi.GoVersion)
			}
		},
	}
}

// loadScenario loads the scenario file and resolves the rules set, honoring a
// --rules override when the flag is present.
func loadScenario(cmd *cobra.Command, path string) (*domain.TaxScenario, *domain.TaxRulesConfig, domain.FilingStatus, error) {
	parser := config.NewInputParser()
	scenario, err := parser.LoadScenario(path)
	if err != nil {
		return nil, nil, domain.FilingSingle, err
	}

	var rules *domain.TaxRulesConfig
	rulesFile, _ := cmd.Flags().GetString("rules")
	if rulesFile != "" {
		rules, err = parser.LoadRules(rulesFile)
		if err != nil {
			return nil, nil, domain.FilingSingle, err
		}
	} else {
		var notes []string
		rules, notes = calculation.RulesForYear(scenario.Year)
		for _, note := range notes {
			fmt.Fprintln(os.Stderr, "note:", note)
		}
	}

	status, notes := scenario.Status()
	for _, note := range notes {
		fmt.Fprintln(os.Stderr, "note:", note)
	}
	return scenario, rules, status, nil
}

func writeResult(cmd *cobra.Command, result interface{}) {
	format, _ := cmd.Flags().GetString("format")
	generator := output.NewReportGenerator()
	if err := generator.WriteReport(os.Stdout, result, format); err != nil {
		log.Fatal(err)
	}
}

var estimateCmd = &cobra.Command{
	Use:   "estimate [scenario-file]",
	Short: "Estimate total federal and state tax liability",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, rules, status, err := loadScenario(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}

		calc := calculation.NewFederalTaxCalculator(rules)
		result := calc.EstimateLiability(scenario.Year, scenario.Income, status, scenario.State)
		writeResult(cmd, &result)
	},
}

var stateCmd = &cobra.Command{
	Use:   "state [scenario-file]",
	Short: "Show the state tax computation with bracket detail",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, rules, status, err := loadScenario(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}
		if scenario.State == "" {
			log.Fatal("scenario has no state code")
		}

		federal := calculation.NewFederalTaxCalculator(rules)
		liability := federal.EstimateLiability(scenario.Year, scenario.Income, status, scenario.State)
		base := liability.AdjustedGrossIncome.Sub(liability.DeductionUsed)

		calc := calculation.NewStateTaxCalculator(rules)
		result := calc.CalculateStateTax(scenario.State, base, status)
		writeResult(cmd, &result)
	},
}

var amtCmd = &cobra.Command{
	Use:   "amt [scenario-file]",
	Short: "Run the alternative minimum tax computation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, rules, status, err := loadScenario(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}

		federal := calculation.NewFederalTaxCalculator(rules)
		liability := federal.EstimateLiability(scenario.Year, scenario.Income, status, "")

		input := domain.AmtInput{
			Year:          scenario.Year,
			FilingStatus:  status,
			TaxableIncome: liability.TaxableOrdinaryIncome,
			RegularTax:    liability.OrdinaryTax,
		}
		if scenario.AMT != nil {
			input.SALTDeduction = scenario.AMT.SALTDeduction
			input.PrivateActivityBondInterest = scenario.AMT.PrivateActivityBondInterest
			input.ISOBargainElement = scenario.AMT.ISOBargainElement
			input.OtherAdjustments = scenario.AMT.OtherAdjustments
		}

		calc := calculation.NewAMTCalculator(rules)
		result := calc.CalculateAMT(input)
		writeResult(cmd, &result)
	},
}

var nettingCmd = &cobra.Command{
	Use:   "netting [scenario-file]",
	Short: "Net capital gains and losses with carryover tracking",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, rules, status, err := loadScenario(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}

		input := domain.ScheduleDInput{
			FilingStatus:      status,
			ShortTermGainLoss: scenario.Income.ShortTermGains,
			LongTermGainLoss:  scenario.Income.LongTermGains,
		}
		if scenario.ScheduleD != nil {
			input = *scenario.ScheduleD
			input.FilingStatus = status
		}

		calc := calculation.NewScheduleDCalculator(rules)
		result := calc.NetCapitalGains(input)
		writeResult(cmd, &result)
	},
}

var lotsCmd = &cobra.Command{
	Use:   "lots [scenario-file]",
	Short: "Simulate a sale under FIFO, LIFO, or specific-identification",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, rules, status, err := loadScenario(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}
		if scenario.SaleRequest == nil {
			log.Fatal("scenario has no sale_request")
		}

		request := scenario.SaleRequest
		var lots []domain.TaxLot
		for _, position := range scenario.Positions {
			if position.Symbol == request.Symbol {
				lots = position.Lots
				break
			}
		}
		asOf := scenario.AsOfDate
		if asOf.IsZero() {
			asOf = time.Now()
		}

		compare, _ := cmd.Flags().GetBool("compare")
		if compare {
			federal := calculation.NewFederalTaxCalculator(rules)
			liability := federal.EstimateLiability(scenario.Year, scenario.Income, status, "")
			ltcgRate := decimal.NewFromFloat(0.15)
			result := calculation.CompareLotStrategies(
				lots, request.Quantity, request.Price, asOf,
				liability.MarginalRate, ltcgRate, request.SpecificLots)
			writeResult(cmd, &result)
			return
		}

		result := calculation.SelectLots(lots, request.Quantity, request.Price, request.Method, asOf, request.SpecificLots)
		writeResult(cmd, &result)
	},
}

var washsaleCmd = &cobra.Command{
	Use:   "washsale [scenario-file]",
	Short: "Check realized loss sales for wash-sale violations",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, _, _, err := loadScenario(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}

		result := calculation.CheckWashSales(scenario.Sales, scenario.Purchases)
		writeResult(cmd, &result)
	},
}

var quarterlyCmd = &cobra.Command{
	Use:   "quarterly [scenario-file]",
	Short: "Build the quarterly estimated payment schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, rules, status, err := loadScenario(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}
		if scenario.Quarterly == nil {
			log.Fatal("scenario has no quarterly section")
		}

		currentDate := scenario.AsOfDate
		if dateFlag, _ := cmd.Flags().GetString("date"); dateFlag != "" {
			currentDate, err = time.Parse("2006-01-02", dateFlag)
			if err != nil {
				log.Fatalf("invalid --date %q: %v", dateFlag, err)
			}
		}
		if currentDate.IsZero() {
			currentDate = time.Now()
		}

		calc := calculation.NewQuarterlyEstimateCalculator(rules)
		result := calc.BuildSchedule(domain.QuarterlyEstimateInput{
			Year:         scenario.Year,
			FilingStatus: status,
			State:        scenario.State,
			Income:       scenario.Income,
			PriorYearTax: scenario.Quarterly.PriorYearTax,
			PriorYearAGI: scenario.Quarterly.PriorYearAGI,
			Payments:     scenario.Quarterly.Payments,
			CurrentDate:  currentDate,
		})
		writeResult(cmd, &result)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario file without running calculations",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadScenario(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "INVALID: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scenario file is valid.")
	},
}

func init() {
	for _, cmd := range []*cobra.Command{
		estimateCmd, stateCmd, amtCmd, nettingCmd, lotsCmd, washsaleCmd, quarterlyCmd,
	} {
		cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
		cmd.Flags().String("rules", "", "Path to a YAML rules override file")
	}
	lotsCmd.Flags().Bool("compare", false, "Compare FIFO and LIFO outcomes")
	quarterlyCmd.Flags().String("date", "", "Evaluation date (YYYY-MM-DD, defaults to the scenario's as_of_date)")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(amtCmd)
	rootCmd.AddCommand(nettingCmd)
	rootCmd.AddCommand(lotsCmd)
	rootCmd.AddCommand(washsaleCmd)
	rootCmd.AddCommand(quarterlyCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
