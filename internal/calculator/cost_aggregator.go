package calculator

import (
	"fmt"

	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/shopspring/decimal"
)

// AggregateCosts turns a farm's raw usage, cost, and loan records into
// the per-acre CostBreakdown. A farm with zero acres produces an
// all-zero breakdown; the break-even layer reports that as "no
// production" rather than failing here.
func AggregateCosts(farm domain.Farm, inputs domain.FarmCostInputs) (*domain.CostBreakdown, error) {
	if farm.Acres.LessThanOrEqual(decimal.Zero) {
		return &domain.CostBreakdown{}, nil
	}

	fertilizerTotal, err := sumInputUsage(inputs.FertilizerUsage)
	if err != nil {
		return nil, fmt.Errorf("failed to sum fertilizer usage: %w", err)
	}
	chemicalTotal, err := sumInputUsage(inputs.ChemicalUsage)
	if err != nil {
		return nil, fmt.Errorf("failed to sum chemical usage: %w", err)
	}
	seedTotal, err := sumSeedUsage(inputs.SeedUsage)
	if err != nil {
		return nil, fmt.Errorf("failed to sum seed usage: %w", err)
	}

	otherTotal := decimal.Zero
	for _, cost := range inputs.OtherCosts {
		if cost.PerAcre {
			otherTotal = otherTotal.Add(cost.Amount.Mul(farm.Acres))
		} else {
			otherTotal = otherTotal.Add(cost.Amount)
		}
	}

	equipmentTotal := decimal.Zero
	landLoanTotal := decimal.Zero
	operatingTotal := decimal.Zero
	for _, loan := range inputs.Loans {
		switch loan.Category {
		case domain.LoanCategory_Equipment:
			equipmentTotal = equipmentTotal.Add(loan.AnnualPayment)
		case domain.LoanCategory_Land:
			landLoanTotal = landLoanTotal.Add(loan.AnnualPayment)
		case domain.LoanCategory_Operating:
			operatingTotal = operatingTotal.Add(loan.AnnualPayment)
		default:
			return nil, fmt.Errorf("unknown loan category %q", loan.Category)
		}
	}

	breakdown := &domain.CostBreakdown{
		Fertilizer:        fertilizerTotal.Div(farm.Acres),
		Chemical:          chemicalTotal.Div(farm.Acres),
		Seed:              seedTotal.Div(farm.Acres),
		LandRent:          farm.LandRentPerAcre,
		OtherCosts:        otherTotal.Div(farm.Acres),
		EquipmentLoan:     equipmentTotal.Div(farm.Acres),
		LandLoan:          landLoanTotal.Div(farm.Acres),
		OperatingInterest: operatingTotal.Div(farm.Acres),
		// trucking is quoted per bushel; projected yield converts it
		// into the per-acre breakdown
		Trucking: farm.TruckingPerBushel.Mul(farm.ProjectedYield),
	}

	return breakdown, nil
}

// sumInputUsage totals fertilizer or chemical spend across usage
// records. Amounts stored directly are already in purchase units;
// derived amounts are rate x acres with the rate unit converted into
// the purchase unit before pricing.
func sumInputUsage(usages []domain.InputUsage) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, usage := range usages {
		amount, err := amountInPurchaseUnits(usage)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(amount.Mul(usage.PricePerUnit))
	}
	return total, nil
}

func amountInPurchaseUnits(usage domain.InputUsage) (decimal.Decimal, error) {
	if usage.AmountUsed != nil {
		return *usage.AmountUsed, nil
	}
	if usage.RatePerAcre == nil || usage.AcresApplied == nil {
		return decimal.Zero, fmt.Errorf("usage %s has neither amount nor rate", usage.UsageID)
	}
	factor, err := domain.ConversionFactor(usage.RateUnit, usage.PurchaseUnit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("usage %s: %w", usage.UsageID, err)
	}
	return usage.RatePerAcre.Mul(*usage.AcresApplied).Mul(factor), nil
}

func sumSeedUsage(usages []domain.SeedUsage) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, usage := range usages {
		bags, err := bagsUsed(usage)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(bags.Mul(usage.PricePerBag))
	}
	return total, nil
}

func bagsUsed(usage domain.SeedUsage) (decimal.Decimal, error) {
	if usage.BagsUsed != nil {
		return *usage.BagsUsed, nil
	}
	if usage.PopulationPerAcre == nil || usage.AcresApplied == nil || usage.SeedsPerBag == nil {
		return decimal.Zero, fmt.Errorf("seed usage %s has neither bags nor population", usage.UsageID)
	}
	if usage.SeedsPerBag.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("seed usage %s has non-positive seeds per bag", usage.UsageID)
	}
	return usage.PopulationPerAcre.Mul(*usage.AcresApplied).Div(*usage.SeedsPerBag), nil
}
