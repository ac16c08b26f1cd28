package calculation

import (
	"fmt"

	"github.com/finsight/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// FederalTaxCalculator computes annual federal income tax from a progressive
// bracket table keyed by filing status. Tax owed is the sum of each bracket's
// marginal amount, never a flat-rate multiplication.
type FederalTaxCalculator struct {
	Year            int
	Brackets        map[domain.FilingStatus][]domain.TaxBracket
	AllowanceAmount decimal.Decimal
}

// NewFederalTaxCalculator creates a calculator from a bracket config.
func NewFederalTaxCalculator(cfg domain.FederalTaxConfig) *FederalTaxCalculator {
	return &FederalTaxCalculator{
		Year:            cfg.Year,
		Brackets:        cfg.Brackets,
		AllowanceAmount: cfg.AllowanceAmount,
	}
}

// CalculateAnnualTax computes the federal tax on annualized taxable income.
// Each withholding allowance shelters AllowanceAmount of annual income before
// the bracket walk.
func (ftc *FederalTaxCalculator) CalculateAnnualTax(annualTaxable decimal.Decimal, status domain.FilingStatus, allowances int) (decimal.Decimal, error) {
	brackets, ok := ftc.Brackets[status]
	if !ok || len(brackets) == 0 {
		return decimal.Zero, fmt.Errorf("%w: no federal brackets for filing status %q", ErrInvalidInput, status)
	}
	if allowances < 0 {
		return decimal.Zero, fmt.Errorf("%w: allowances cannot be negative, got %d", ErrParameterOutOfRange, allowances)
	}

	taxable := annualTaxable.Sub(ftc.AllowanceAmount.Mul(decimal.NewFromInt(int64(allowances))))
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	var totalTax decimal.Decimal
	for _, bracket := range brackets {
		if taxable.LessThanOrEqual(bracket.Min) {
			break
		}
		if bracket.Max.LessThanOrEqual(bracket.Min) {
			return decimal.Zero, fmt.Errorf("%w: bracket [%s, %s] has non-positive width",
				ErrInvalidInput, bracket.Min.String(), bracket.Max.String())
		}
		incomeInBracket := decimal.Min(taxable, bracket.Max).Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}
	return totalTax, nil
}

// FICACalculator computes Social Security and Medicare taxes. SS is capped at
// the annual wage base; Medicare has no cap.
type FICACalculator struct {
	SSRate       decimal.Decimal
	SSWageBase   decimal.Decimal
	MedicareRate decimal.Decimal
}

// NewFICACalculator creates a FICA calculator from config.
func NewFICACalculator(cfg domain.FICAConfig) *FICACalculator {
	return &FICACalculator{
		SSRate:       cfg.SocialSecurityRate,
		SSWageBase:   cfg.SocialSecurityWageBase,
		MedicareRate: cfg.MedicareRate,
	}
}

// SocialSecurityPerPeriod computes the uncapped per-period SS tax. The annual
// wage base cap is applied when the period is scaled to a year.
func (fc *FICACalculator) SocialSecurityPerPeriod(taxable decimal.Decimal) decimal.Decimal {
	return taxable.Mul(fc.SSRate)
}

// MedicarePerPeriod computes the per-period Medicare tax (no cap).
func (fc *FICACalculator) MedicarePerPeriod(taxable decimal.Decimal) decimal.Decimal {
	return taxable.Mul(fc.MedicareRate)
}

// AnnualSocialSecurityCap is the most SS tax owed in one year.
func (fc *FICACalculator) AnnualSocialSecurityCap() decimal.Decimal {
	return fc.SSWageBase.Mul(fc.SSRate)
}

// StateTaxResolver maps a ZIP code to state and local tax rates. The core
// does not embed per-state tax law; resolution is an injected collaborator.
type StateTaxResolver interface {
	Resolve(zipCode string) (domain.StateLocalRates, error)
}

// StateTaxResolverFunc adapts a function to the StateTaxResolver interface.
type StateTaxResolverFunc func(zipCode string) (domain.StateLocalRates, error)

func (f StateTaxResolverFunc) Resolve(zipCode string) (domain.StateLocalRates, error) {
	return f(zipCode)
}
