package calculation

import (
	"fmt"

	"github.com/finsight/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// PaycheckCalculator decomposes gross pay into deductions, taxes and net pay
// for a single pay period.
type PaycheckCalculator struct {
	Federal       *FederalTaxCalculator
	FICA          *FICACalculator
	StateResolver StateTaxResolver
	Logger        Logger
}

// NewPaycheckCalculator wires the tax calculators together. A nil logger
// falls back to the no-op logger.
func NewPaycheckCalculator(federal *FederalTaxCalculator, fica *FICACalculator, resolver StateTaxResolver, logger Logger) *PaycheckCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &PaycheckCalculator{
		Federal:       federal,
		FICA:          fica,
		StateResolver: resolver,
		Logger:        logger,
	}
}

// PaycheckInput are the per-period inputs to the allocator.
type PaycheckInput struct {
	GrossPay          decimal.Decimal
	PayFrequency      domain.PayFrequency
	FilingStatus      domain.FilingStatus
	Allowances        int
	ZipCode           string
	PreTaxDeductions  []domain.Deduction
	PostTaxDeductions []domain.Deduction
}

// Validate rejects inputs the decomposition cannot handle.
func (in *PaycheckInput) Validate() error {
	if in.GrossPay.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: gross pay must be positive, got %s", ErrInvalidInput, in.GrossPay.String())
	}
	if in.Allowances < 0 {
		return fmt.Errorf("%w: allowances cannot be negative, got %d", ErrParameterOutOfRange, in.Allowances)
	}
	for _, d := range append(append([]domain.Deduction{}, in.PreTaxDeductions...), in.PostTaxDeductions...) {
		if d.Value.IsNegative() {
			return fmt.Errorf("%w: deduction %q cannot be negative", ErrInvalidInput, d.Label)
		}
		if d.Kind != domain.DeductionPercentage && d.Kind != domain.DeductionAmount {
			return fmt.Errorf("%w: deduction %q has unknown kind %q", ErrInvalidInput, d.Label, d.Kind)
		}
	}
	return nil
}

// resolveDeductions converts a deduction list to a dollar total against the
// given gross pay. Percentage deductions always resolve against gross pay,
// pre-tax and post-tax alike.
func resolveDeductions(deductions []domain.Deduction, grossPay decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deductions {
		switch d.Kind {
		case domain.DeductionPercentage:
			total = total.Add(grossPay.Mul(d.Value).Div(oneHundred))
		case domain.DeductionAmount:
			total = total.Add(d.Value)
		}
	}
	return total
}

// Calculate performs the strictly ordered gross-to-net decomposition:
// pre-tax deductions, taxable income (floored at zero), annualized federal
// bracket tax de-annualized back to the period, resolved state/local rates,
// FICA, post-tax deductions, net pay.
//
// Net pay is clamped at zero when deductions exceed gross; the result carries
// OverDeducted plus the shortfall instead of going negative.
func (pc *PaycheckCalculator) Calculate(in PaycheckInput) (*domain.PaycheckResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	periods := in.PayFrequency.PeriodsPerYear()

	preTaxTotal := resolveDeductions(in.PreTaxDeductions, in.GrossPay)

	taxable := in.GrossPay.Sub(preTaxTotal)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	annualTaxable := taxable.Mul(decimal.NewFromInt(int64(periods)))
	annualFederal, err := pc.Federal.CalculateAnnualTax(annualTaxable, in.FilingStatus, in.Allowances)
	if err != nil {
		return nil, err
	}
	federal := annualFederal.Div(decimal.NewFromInt(int64(periods)))

	rates, err := pc.StateResolver.Resolve(in.ZipCode)
	if err != nil {
		return nil, fmt.Errorf("resolving state tax for zip %q: %w", in.ZipCode, err)
	}

	taxes := domain.TaxBreakdown{
		Federal:        federal,
		State:          taxable.Mul(rates.StateRate),
		Local:          taxable.Mul(rates.LocalRate),
		SocialSecurity: pc.FICA.SocialSecurityPerPeriod(taxable),
		Medicare:       pc.FICA.MedicarePerPeriod(taxable),
		StateRate:      rates.StateRate,
		LocalRate:      rates.LocalRate,
	}
	if taxable.GreaterThan(decimal.Zero) {
		taxes.FederalRate = federal.Div(taxable)
	}

	totalTaxes := taxes.Total()
	postTaxTotal := resolveDeductions(in.PostTaxDeductions, in.GrossPay)

	result := &domain.PaycheckResult{
		GrossPay:          in.GrossPay,
		PreTaxDeductions:  preTaxTotal,
		TaxableIncome:     taxable,
		Taxes:             taxes,
		TotalTaxes:        totalTaxes,
		PostTaxDeductions: postTaxTotal,
	}

	net := in.GrossPay.Sub(preTaxTotal).Sub(totalTaxes).Sub(postTaxTotal)
	if net.IsNegative() {
		pc.Logger.Warnf("deductions exceed gross pay by %s; clamping net pay to zero", net.Neg().StringFixed(2))
		result.OverDeducted = true
		result.Shortfall = net.Neg()
		result.NetPay = decimal.Zero
	} else {
		result.NetPay = net
	}

	return result, nil
}

// CalculateStrict is Calculate with a hard failure instead of the clamp:
// deductions exceeding gross pay return ErrOverDeducted. For callers that
// treat an impossible paycheck as a configuration error.
func (pc *PaycheckCalculator) CalculateStrict(in PaycheckInput) (*domain.PaycheckResult, error) {
	r, err := pc.Calculate(in)
	if err != nil {
		return nil, err
	}
	if r.OverDeducted {
		return nil, fmt.Errorf("%w: short by %s", ErrOverDeducted, r.Shortfall.StringFixed(2))
	}
	return r, nil
}

// ProjectAnnual scales a per-period result to a full year. Every component is
// a pure scalar multiple of the period figure except Social Security, which
// is capped at the annual wage base.
func (pc *PaycheckCalculator) ProjectAnnual(r *domain.PaycheckResult, freq domain.PayFrequency) *domain.YearlyPaycheck {
	periods := decimal.NewFromInt(int64(freq.PeriodsPerYear()))

	ss := decimal.Min(r.Taxes.SocialSecurity.Mul(periods), pc.FICA.AnnualSocialSecurityCap())

	taxes := domain.TaxBreakdown{
		Federal:        r.Taxes.Federal.Mul(periods),
		State:          r.Taxes.State.Mul(periods),
		Local:          r.Taxes.Local.Mul(periods),
		SocialSecurity: ss,
		Medicare:       r.Taxes.Medicare.Mul(periods),
		FederalRate:    r.Taxes.FederalRate,
		StateRate:      r.Taxes.StateRate,
		LocalRate:      r.Taxes.LocalRate,
	}

	totalTaxes := taxes.Total()
	gross := r.GrossPay.Mul(periods)
	preTax := r.PreTaxDeductions.Mul(periods)
	postTax := r.PostTaxDeductions.Mul(periods)

	return &domain.YearlyPaycheck{
		GrossPay:          gross,
		PreTaxDeductions:  preTax,
		Taxes:             taxes,
		TotalTaxes:        totalTaxes,
		PostTaxDeductions: postTax,
		NetPay:            gross.Sub(preTax).Sub(totalTaxes).Sub(postTax),
	}
}
