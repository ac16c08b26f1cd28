package output

import (
	"fmt"
	"strings"

	"github.com/finsight/finance-engine/internal/domain"
	pkgdecimal "github.com/finsight/finance-engine/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a compact plain-text report, one section per
// calculator block the scenario ran.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.DashboardResult) ([]byte, error) {
	var b strings.Builder

	title := result.Name
	if title == "" {
		title = "Dashboard"
	}
	fmt.Fprintf(&b, "%s\n%s\n", title, strings.Repeat("=", len(title)))

	if result.Drip != nil {
		c.writeDrip(&b, result.Drip)
	}
	if result.Option != nil {
		c.writeOption(&b, result.Option)
	}
	if result.Paycheck != nil {
		c.writePaycheck(&b, result.Paycheck)
	}
	if result.Retirement != nil {
		c.writeRetirement(&b, result.Retirement)
	}

	return []byte(b.String()), nil
}

func money(d decimal.Decimal) string {
	return pkgdecimal.NewMoneyFromDecimal(d).Round().Format()
}

func (c ConsoleFormatter) writeDrip(b *strings.Builder, drip *domain.DripComparison) {
	fmt.Fprintf(b, "\nDIVIDEND REINVESTMENT\n")
	fmt.Fprintf(b, "%-6s %14s %14s %14s\n", "Year", "With DRIP", "Without DRIP", "Advantage")
	for i := range drip.WithDrip {
		fmt.Fprintf(b, "%-6d %14s %14s %14s\n",
			drip.WithDrip[i].Year,
			money(drip.WithDrip[i].Value),
			money(drip.WithoutDrip[i].Value),
			money(drip.Advantage(i)))
	}
}

func (c ConsoleFormatter) writeOption(b *strings.Builder, report *domain.OptionReport) {
	m := report.Metrics
	fmt.Fprintf(b, "\nOPTION ANALYSIS\n")
	fmt.Fprintf(b, "  Expected move:   $%.2f\n", m.ExpectedMove)
	fmt.Fprintf(b, "  Breakeven:       $%.2f\n", m.Breakeven)
	fmt.Fprintf(b, "  Prob ITM:        %.1f%%\n", m.ProbITM*100)
	fmt.Fprintf(b, "  Prob of profit:  %.1f%%\n", m.ProbOfProfit*100)
	fmt.Fprintf(b, "  Delta:           %.3f\n", m.Delta)
	fmt.Fprintf(b, "  Gamma:           %.4f\n", m.Gamma)
	fmt.Fprintf(b, "  Intrinsic value: $%.2f\n", m.IntrinsicValue)
	fmt.Fprintf(b, "  Time value:      $%.2f\n", m.TimeValue)
	if m.DailyThetaImpact != 0 {
		fmt.Fprintf(b, "  Daily theta:     $%.2f\n", m.DailyThetaImpact)
	}
	fmt.Fprintf(b, "  Risk:            %s\n", report.Risk)
}

func (c ConsoleFormatter) writePaycheck(b *strings.Builder, report *domain.PaycheckReport) {
	p := report.PerPeriod
	fmt.Fprintf(b, "\nPAYCHECK BREAKDOWN\n")
	fmt.Fprintf(b, "  Gross pay:           %s\n", money(p.GrossPay))
	fmt.Fprintf(b, "  Pre-tax deductions:  %s\n", money(p.PreTaxDeductions))
	fmt.Fprintf(b, "  Taxable income:      %s\n", money(p.TaxableIncome))
	fmt.Fprintf(b, "  Federal tax:         %s\n", money(p.Taxes.Federal))
	fmt.Fprintf(b, "  State tax:           %s\n", money(p.Taxes.State))
	fmt.Fprintf(b, "  Local tax:           %s\n", money(p.Taxes.Local))
	fmt.Fprintf(b, "  Social Security:     %s\n", money(p.Taxes.SocialSecurity))
	fmt.Fprintf(b, "  Medicare:            %s\n", money(p.Taxes.Medicare))
	fmt.Fprintf(b, "  Post-tax deductions: %s\n", money(p.PostTaxDeductions))
	fmt.Fprintf(b, "  Net pay:             %s\n", money(p.NetPay))
	if p.OverDeducted {
		fmt.Fprintf(b, "  WARNING: deductions exceed gross pay by %s\n", money(p.Shortfall))
	}
	if report.Yearly != nil {
		fmt.Fprintf(b, "  Annual net pay:      %s\n", money(report.Yearly.NetPay))
	}
}

func (c ConsoleFormatter) writeRetirement(b *strings.Builder, summary *domain.RetirementSummary) {
	fmt.Fprintf(b, "\nRETIREMENT PROJECTION\n")
	fmt.Fprintf(b, "  Balance at retirement: %s\n", money(summary.BalanceAtRetire))
	fmt.Fprintf(b, "  Peak balance:          %s\n", money(summary.PeakBalance()))
	fmt.Fprintf(b, "  Final balance:         %s\n", money(summary.FinalBalance))
	if summary.DepletionAge != nil {
		fmt.Fprintf(b, "  Portfolio depleted at age %d\n", *summary.DepletionAge)
	}
	fmt.Fprintf(b, "  FIRE targets: standard %s, lean %s, fat %s\n",
		money(summary.Fire.Standard), money(summary.Fire.Lean), money(summary.Fire.Fat))
	if !summary.ContributionValueAt65.IsZero() {
		fmt.Fprintf(b, "  One year's contributions grow to %s by 65\n", money(summary.ContributionValueAt65))
	}
	if summary.Crossover != nil {
		fmt.Fprintf(b, "  Crossover: year %d (age %d), passive income %s\n",
			summary.Crossover.Year, summary.Crossover.Age, money(summary.Crossover.PassiveIncome))
	} else {
		fmt.Fprintf(b, "  Crossover: not reached within horizon\n")
	}
}
