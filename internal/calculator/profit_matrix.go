package calculator

import (
	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// scenarioMultipliers spans 60% to 140% of the axis center in 10%
// steps. Symmetric around 1.0 and ascending, so axis labels come out
// sorted without any post-processing.
var scenarioMultipliers = []decimal.Decimal{
	decimal.NewFromFloat(0.6),
	decimal.NewFromFloat(0.7),
	decimal.NewFromFloat(0.8),
	decimal.NewFromFloat(0.9),
	decimal.NewFromFloat(1.0),
	decimal.NewFromFloat(1.1),
	decimal.NewFromFloat(1.2),
	decimal.NewFromFloat(1.3),
	decimal.NewFromFloat(1.4),
}

type GenerateMatrixInput struct {
	Farm          domain.Farm
	CostBreakdown domain.CostBreakdown
	Position      domain.MarketingPosition
	Policy        *domain.CropInsurancePolicy

	// CurrentPrice centers the price axis when the farm carries no
	// policy (and therefore no projected price)
	CurrentPrice decimal.Decimal
}

type GenerateMatrixResult struct {
	YieldScenarios []decimal.Decimal
	PriceScenarios []decimal.Decimal
	// indexed [yieldIndex][priceIndex]
	Matrix  [][]domain.ProfitMatrixCell
	Summary domain.MatrixSummary
}

// GenerateMatrix cross-products the yield and price scenario axes,
// computing one ProfitMatrixCell per pair. Pure and deterministic:
// same inputs, same matrix.
func GenerateMatrix(in GenerateMatrixInput) (*GenerateMatrixResult, error) {
	priceCenter := in.CurrentPrice
	if in.Policy != nil && in.Policy.ProjectedPrice.GreaterThan(decimal.Zero) {
		priceCenter = in.Policy.ProjectedPrice
	}
	if priceCenter.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrNoPriceBasis
	}

	yieldScenarios := scaleAxis(in.Farm.ProjectedYield, scenarioMultipliers)
	priceScenarios := scaleAxis(priceCenter, scenarioMultipliers)

	premium := decimal.Zero
	if in.Policy != nil {
		premium = in.Policy.TotalPremiumPerAcre()
	}

	totalCost := in.CostBreakdown.Total()

	// marketed bushels are a fixed commitment; they do not scale with
	// the yield axis. Spread them per acre once, up front.
	marketedPerAcre := decimal.Zero
	if in.Farm.Acres.GreaterThan(decimal.Zero) {
		marketedPerAcre = in.Position.MarketedBushels.Div(in.Farm.Acres)
	}

	matrix := make([][]domain.ProfitMatrixCell, len(yieldScenarios))
	netProfits := make([]float64, 0, len(yieldScenarios)*len(priceScenarios))
	profitable := 0

	for yi, scenarioYield := range yieldScenarios {
		row := make([]domain.ProfitMatrixCell, len(priceScenarios))
		for pi, scenarioPrice := range priceScenarios {
			cell := computeCell(in, scenarioYield, scenarioPrice, marketedPerAcre, totalCost, premium)
			row[pi] = cell
			netProfits = append(netProfits, cell.NetProfit.InexactFloat64())
			if cell.NetProfit.GreaterThan(decimal.Zero) {
				profitable++
			}
		}
		matrix[yi] = row
	}

	summary, err := summarize(netProfits, profitable)
	if err != nil {
		return nil, err
	}

	return &GenerateMatrixResult{
		YieldScenarios: yieldScenarios,
		PriceScenarios: priceScenarios,
		Matrix:         matrix,
		Summary:        *summary,
	}, nil
}

func computeCell(
	in GenerateMatrixInput,
	scenarioYield decimal.Decimal,
	scenarioPrice decimal.Decimal,
	marketedPerAcre decimal.Decimal,
	totalCost decimal.Decimal,
	premium decimal.Decimal,
) domain.ProfitMatrixCell {
	// unmarketed production floats with the yield scenario; whatever
	// was already contracted keeps its locked-in price
	unmarketedPerAcre := scenarioYield.Sub(marketedPerAcre)
	if unmarketedPerAcre.LessThan(decimal.Zero) {
		unmarketedPerAcre = decimal.Zero
	}

	grossRevenue := marketedPerAcre.Mul(in.Position.AvgPrice).
		Add(unmarketedPerAcre.Mul(scenarioPrice))

	profitWithoutInsurance := grossRevenue.Sub(totalCost)

	indemnity := ComputeIndemnity(IndemnityInput{
		Policy:        in.Policy,
		Aph:           in.Farm.Aph,
		ScenarioYield: scenarioYield,
		ScenarioPrice: scenarioPrice,
	})

	return domain.ProfitMatrixCell{
		ScenarioYield:          scenarioYield,
		ScenarioPrice:          scenarioPrice,
		GrossRevenue:           grossRevenue,
		TotalCost:              totalCost,
		ProfitWithoutInsurance: profitWithoutInsurance,
		BaseIndemnity:          indemnity.Base,
		ScoIndemnity:           indemnity.Sco,
		EcoIndemnity:           indemnity.Eco,
		TotalInsurance:         indemnity.Total,
		PremiumCost:            premium,
		NetProfit:              profitWithoutInsurance.Add(indemnity.Total).Sub(premium),
	}
}

func scaleAxis(center decimal.Decimal, multipliers []decimal.Decimal) []decimal.Decimal {
	axis := make([]decimal.Decimal, len(multipliers))
	for i, m := range multipliers {
		axis[i] = center.Mul(m)
	}
	return axis
}

func summarize(netProfits []float64, profitable int) (*domain.MatrixSummary, error) {
	best, err := stats.Max(netProfits)
	if err != nil {
		return nil, err
	}
	worst, err := stats.Min(netProfits)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(netProfits)
	if err != nil {
		return nil, err
	}

	return &domain.MatrixSummary{
		BestNetProfit:   decimal.NewFromFloat(best).Round(2),
		WorstNetProfit:  decimal.NewFromFloat(worst).Round(2),
		MedianNetProfit: decimal.NewFromFloat(median).Round(2),
		ProfitableCells: profitable,
		TotalCells:      len(netProfits),
	}, nil
}
