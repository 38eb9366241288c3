package calculator

import (
	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/shopspring/decimal"
)

// BreakEvenPrice returns the price per bushel at which total revenue
// covers total cost. It uses projected yield rather than APH because
// break-even is forward looking, and it ignores what has already been
// sold - this is the cost floor, not realized profit.
//
// Returns domain.ErrNoProduction when expected bushels are zero or
// negative, so callers can render "N/A" instead of letting a division
// blow up.
func BreakEvenPrice(farm domain.Farm, totalCostPerAcre decimal.Decimal) (decimal.Decimal, error) {
	expectedBushels := farm.ExpectedBushels()
	if expectedBushels.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrNoProduction
	}

	totalCost := totalCostPerAcre.Mul(farm.Acres)
	return totalCost.Div(expectedBushels), nil
}
