package main

import (
	"fmt"
	"os"

	"github.com/finsight/finance-engine/internal/calculation"
	"github.com/finsight/finance-engine/internal/config"
	"github.com/finsight/finance-engine/internal/domain"
	"github.com/finsight/finance-engine/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagFormat  string
	flagOut     string
	flagVerbose bool
)

// stderrLogger writes engine diagnostics to stderr so report output on
// stdout stays clean.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, format+"\n", args...) }
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
func (stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

func newEngine(cfg domain.EngineConfig) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngineWithConfig(cfg)
	if flagVerbose {
		engine.SetLogger(stderrLogger{})
	}
	return engine
}

func runAndReport(engine *calculation.CalculationEngine, scenario *domain.Scenario) error {
	result, err := engine.RunScenario(scenario)
	if err != nil {
		return err
	}
	return output.GenerateReport(result, flagFormat, flagOut)
}

func newRunCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every calculator block in a scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := config.NewInputParser().LoadFromFile(input)
			if err != nil {
				return err
			}
			return runAndReport(newEngine(sf.EngineConfig()), &sf.Scenario)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "scenario.yaml", "scenario YAML file")
	return cmd
}

func newInitCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			example := config.NewInputParser().CreateExampleScenario()
			data, err := yaml.Marshal(example)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "scenario.yaml", "where to write the example")
	return cmd
}

func newDripCmd() *cobra.Command {
	var (
		cost, shares, dividend, growth float64
		years                          int
	)
	cmd := &cobra.Command{
		Use:   "drip",
		Short: "Project dividend reinvestment growth",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := &domain.Scenario{
				Name: "DRIP projection",
				Drip: &domain.DripScenario{
					TotalCost:      decimal.NewFromFloat(cost),
					TotalShares:    decimal.NewFromFloat(shares),
					AnnualDividend: decimal.NewFromFloat(dividend),
					Years:          years,
					GrowthRatePct:  decimal.NewFromFloat(growth),
				},
			}
			return runAndReport(newEngine(calculation.NewDefaultEngineConfig()), scenario)
		},
	}
	cmd.Flags().Float64Var(&cost, "cost", 0, "total cost basis")
	cmd.Flags().Float64Var(&shares, "shares", 0, "total share count")
	cmd.Flags().Float64Var(&dividend, "dividend", 0, "annual dividend income")
	cmd.Flags().IntVar(&years, "years", 10, "projection years (1-30)")
	cmd.Flags().Float64Var(&growth, "growth", 5, "dividend growth rate percent (0-20)")
	return cmd
}

func newOptionCmd() *cobra.Command {
	var (
		price, strike, iv, premium, theta, histVol float64
		dte                                        int
		optType                                    string
	)
	cmd := &cobra.Command{
		Use:   "option",
		Short: "Evaluate option probabilities and Greeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := &domain.Scenario{
				Name: "Option analysis",
				Option: &domain.OptionScenario{
					OptionParameters: domain.OptionParameters{
						UnderlyingPrice: price,
						Strike:          strike,
						ImpliedVol:      iv,
						DaysToExpiry:    dte,
						Premium:         premium,
						Type:            domain.OptionType(optType),
						HourlyTheta:     theta,
					},
					HistoricalVol: histVol,
				},
			}
			return runAndReport(newEngine(calculation.NewDefaultEngineConfig()), scenario)
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "underlying price")
	cmd.Flags().Float64Var(&strike, "strike", 0, "strike price")
	cmd.Flags().Float64Var(&iv, "iv", 0, "implied volatility as a decimal")
	cmd.Flags().IntVar(&dte, "dte", 30, "days to expiry")
	cmd.Flags().Float64Var(&premium, "premium", 0, "option premium")
	cmd.Flags().Float64Var(&theta, "hourly-theta", 0, "hourly theta")
	cmd.Flags().Float64Var(&histVol, "hist-vol", 0, "historical volatility as a decimal")
	cmd.Flags().StringVar(&optType, "type", "call", "option type: call or put")
	return cmd
}

func newPaycheckCmd() *cobra.Command {
	var (
		gross                 float64
		frequency, status, zip string
		allowances            int
	)
	cmd := &cobra.Command{
		Use:   "paycheck",
		Short: "Decompose gross pay into taxes and net pay",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := &domain.Scenario{
				Name: "Paycheck breakdown",
				Paycheck: &domain.PaycheckScenario{
					GrossPay:     decimal.NewFromFloat(gross),
					PayFrequency: domain.PayFrequency(frequency),
					FilingStatus: domain.FilingStatus(status),
					Allowances:   allowances,
					ZipCode:      zip,
				},
			}
			return runAndReport(newEngine(calculation.NewDefaultEngineConfig()), scenario)
		},
	}
	cmd.Flags().Float64Var(&gross, "gross", 0, "gross pay per period")
	cmd.Flags().StringVar(&frequency, "frequency", "biweekly", "weekly, biweekly, semimonthly or monthly")
	cmd.Flags().StringVar(&status, "status", "single", "filing status")
	cmd.Flags().IntVar(&allowances, "allowances", 0, "withholding allowances")
	cmd.Flags().StringVar(&zip, "zip", "", "ZIP code for state/local rates")
	return cmd
}

func newRetireCmd() *cobra.Command {
	var (
		currentAge, retirementAge         int
		savings, contribution             float64
		returnPct, inflationPct, spending float64
		withdrawalPct                     float64
	)
	cmd := &cobra.Command{
		Use:   "retire",
		Short: "Project retirement savings and FIRE targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := &domain.Scenario{
				Name: "Retirement projection",
				Retirement: &domain.RetirementScenario{
					CurrentAge:          currentAge,
					RetirementAge:       retirementAge,
					CurrentSavings:      decimal.NewFromFloat(savings),
					MonthlyContribution: decimal.NewFromFloat(contribution),
					ExpectedReturnPct:   decimal.NewFromFloat(returnPct),
					InflationPct:        decimal.NewFromFloat(inflationPct),
					AnnualSpending:      decimal.NewFromFloat(spending),
					WithdrawalRatePct:   decimal.NewFromFloat(withdrawalPct),
				},
			}
			return runAndReport(newEngine(calculation.NewDefaultEngineConfig()), scenario)
		},
	}
	cmd.Flags().IntVar(&currentAge, "age", 30, "current age")
	cmd.Flags().IntVar(&retirementAge, "retirement-age", 65, "retirement age")
	cmd.Flags().Float64Var(&savings, "savings", 0, "current savings")
	cmd.Flags().Float64Var(&contribution, "monthly", 0, "monthly contribution")
	cmd.Flags().Float64Var(&returnPct, "return", 7, "expected annual return percent")
	cmd.Flags().Float64Var(&inflationPct, "inflation", 3, "annual inflation percent")
	cmd.Flags().Float64Var(&spending, "spending", 0, "annual spending at retirement")
	cmd.Flags().Float64Var(&withdrawalPct, "withdrawal", 4, "safe withdrawal rate percent")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "finsight",
		Short:         "Deterministic personal-finance calculators",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "output format: console, json or csv")
	root.PersistentFlags().StringVar(&flagOut, "out", "", "write the report to a file instead of stdout")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log engine diagnostics to stderr")

	root.AddCommand(newRunCmd(), newInitCmd(), newDripCmd(), newOptionCmd(), newPaycheckCmd(), newRetireCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
