package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mpgo/mortgage-planner/internal/domain"
)

// InputParser handles loading and validating plan files. Validation is the
// boundary the engine relies on: anything it accepts simulates without
// mid-run errors.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse unmarshals and validates a YAML plan document.
func (ip *InputParser) Parse(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan validates a complete plan.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if err := ip.validateMortgage(&plan.Mortgage); err != nil {
		return fmt.Errorf("mortgage: %w", err)
	}
	if err := ip.validateIncome(&plan.Income); err != nil {
		return fmt.Errorf("income: %w", err)
	}
	if err := ip.validateSavings(&plan.Savings); err != nil {
		return fmt.Errorf("savings: %w", err)
	}
	if err := ip.validateFunding(&plan.Funding, plan.Mortgage.TermMonths); err != nil {
		return fmt.Errorf("funding: %w", err)
	}
	if err := ip.validateInflation(&plan.Inflation); err != nil {
		return fmt.Errorf("inflation: %w", err)
	}
	return nil
}

func (ip *InputParser) validateMortgage(m *domain.MortgageParameters) error {
	if m.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if m.TermMonths <= 0 {
		return fmt.Errorf("term must be at least one month")
	}
	if m.TermMonths > 600 {
		return fmt.Errorf("term cannot exceed 600 months")
	}
	if m.AnnualRate.IsNegative() {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if m.AnnualRate.GreaterThan(decimal.NewFromFloat(0.25)) {
		return fmt.Errorf("annual rate above 25%% is not plausible for a mortgage")
	}
	if m.AppreciationRate.IsNegative() {
		return fmt.Errorf("appreciation rate cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateIncome(in *domain.IncomeParameters) error {
	if in.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income cannot be negative")
	}
	if in.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("monthly expenses cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateSavings(s *domain.SavingsParameters) error {
	if s.InitialBalance.IsNegative() {
		return fmt.Errorf("initial balance cannot be negative")
	}
	if s.AnnualRate.IsNegative() {
		return fmt.Errorf("annual rate cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateFunding(f *domain.FundingStrategyParameters, termMonths int) error {
	if f.House.Value.IsNegative() {
		return fmt.Errorf("house value cannot be negative")
	}
	if f.House.MonthlyRent.IsNegative() {
		return fmt.Errorf("monthly rent cannot be negative")
	}
	if f.House.AppreciationRate.IsNegative() {
		return fmt.Errorf("house appreciation rate cannot be negative")
	}
	if f.House.SellMonth > termMonths {
		return fmt.Errorf("house sell month %d is past the %d-month term", f.House.SellMonth, termMonths)
	}
	switch f.House.ProceedsTarget {
	case "", domain.ProceedsToSavings, domain.ProceedsToSecurities, domain.ProceedsToPrincipal:
	default:
		return fmt.Errorf("proceeds target must be 'savings', 'securities', or 'principal'")
	}

	if f.Securities.Value.IsNegative() {
		return fmt.Errorf("securities value cannot be negative")
	}
	if f.Securities.GrowthRate.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("securities growth rate cannot be less than -100%%")
	}
	if f.Securities.SellMonth < 0 {
		return fmt.Errorf("securities sell month cannot be negative (use 0 to disable)")
	}
	if f.Securities.SellMonth > termMonths {
		return fmt.Errorf("securities sell month %d is past the %d-month term", f.Securities.SellMonth, termMonths)
	}
	if f.Securities.MonthlySell.IsNegative() {
		return fmt.Errorf("monthly securities sale cannot be negative")
	}

	if f.PledgedAsset.Amount.IsNegative() {
		return fmt.Errorf("pledged amount cannot be negative")
	}
	if f.PledgedAsset.AnnualRate.IsNegative() {
		return fmt.Errorf("pledged loan rate cannot be negative")
	}
	if f.PledgedAsset.Amount.IsPositive() && f.PledgedAsset.Amount.GreaterThan(f.Securities.Value) {
		return fmt.Errorf("pledged amount cannot exceed the securities pledged as collateral")
	}
	return nil
}

func (ip *InputParser) validateInflation(inf *domain.InflationConfig) error {
	if inf.AnnualRate.LessThan(decimal.NewFromFloat(-0.10)) {
		return fmt.Errorf("inflation rate cannot be less than -10%% (extreme deflation)")
	}
	if inf.AnnualRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("inflation rate cannot exceed 20%%")
	}
	return nil
}

// CreateExamplePlan creates a populated plan suitable for a starter file.
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	return &domain.Plan{
		Mortgage: domain.MortgageParameters{
			Principal:        decimal.NewFromInt(300000),
			AnnualRate:       decimal.NewFromFloat(0.045),
			TermMonths:       360,
			AppreciationRate: decimal.NewFromFloat(0.03),
		},
		Income: domain.IncomeParameters{
			MonthlyIncome:   decimal.NewFromInt(8000),
			MonthlyExpenses: decimal.NewFromInt(4000),
		},
		Savings: domain.SavingsParameters{
			InitialBalance: decimal.NewFromInt(10000),
			AnnualRate:     decimal.NewFromFloat(0.015),
		},
		Funding: domain.FundingStrategyParameters{
			House: domain.HouseParameters{
				Value:            decimal.NewFromInt(200000),
				AppreciationRate: decimal.NewFromFloat(0.03),
				SellMonth:        -1,
				MonthlyRent:      decimal.NewFromInt(1500),
			},
			Securities: domain.SecuritiesParameters{
				Value:       decimal.NewFromInt(150000),
				GrowthRate:  decimal.NewFromFloat(0.07),
				SellMonth:   0,
				MonthlySell: decimal.Zero,
			},
			PledgedAsset: domain.PledgedAssetParameters{
				Amount:     decimal.Zero,
				AnnualRate: decimal.NewFromFloat(0.06),
				RepayMonth: -1,
			},
		},
		Inflation: domain.InflationConfig{
			AnnualRate:      decimal.NewFromFloat(0.02),
			ApplyToIncome:   true,
			ApplyToExpenses: true,
			ApplyToRent:     true,
		},
	}
}

// SavePlan writes a plan as YAML, the same document shape LoadFromFile reads.
func SavePlan(plan *domain.Plan, filename string) error {
	b, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
