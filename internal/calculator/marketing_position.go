package calculator

import (
	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/shopspring/decimal"
)

// ComputeMarketingPosition folds a farm's grain contracts into marketed
// bushels, their volume-weighted average price, and the remaining
// unmarketed bushels. Over-contracted farms clamp to zero unmarketed
// bushels; the oversold position is a data-quality problem owned
// upstream.
func ComputeMarketingPosition(contracts []domain.GrainContract, expectedBushels decimal.Decimal) domain.MarketingPosition {
	marketed := decimal.Zero
	weightedValue := decimal.Zero
	for _, contract := range contracts {
		bushels := contract.FixedPriceBushels()
		if bushels.LessThanOrEqual(decimal.Zero) {
			continue
		}
		marketed = marketed.Add(bushels)
		weightedValue = weightedValue.Add(bushels.Mul(contract.CashPrice))
	}

	avgPrice := decimal.Zero
	if marketed.GreaterThan(decimal.Zero) {
		avgPrice = weightedValue.Div(marketed)
	}

	unmarketed := expectedBushels.Sub(marketed)
	if unmarketed.LessThan(decimal.Zero) {
		unmarketed = decimal.Zero
	}

	return domain.MarketingPosition{
		MarketedBushels:   marketed,
		AvgPrice:          avgPrice,
		UnmarketedBushels: unmarketed,
	}
}
