package domain

import (
	"github.com/shopspring/decimal"
)

// ProfitMatrixCell is one (yield, price) scenario combination. All
// dollar figures are per acre. Pure computed value - no identity, no
// persistence.
type ProfitMatrixCell struct {
	ScenarioYield decimal.Decimal `json:"scenarioYield"`
	ScenarioPrice decimal.Decimal `json:"scenarioPrice"`

	GrossRevenue           decimal.Decimal `json:"grossRevenue"`
	TotalCost              decimal.Decimal `json:"totalCost"`
	ProfitWithoutInsurance decimal.Decimal `json:"profitWithoutInsurance"`

	BaseIndemnity  decimal.Decimal `json:"baseIndemnity"`
	ScoIndemnity   decimal.Decimal `json:"scoIndemnity"`
	EcoIndemnity   decimal.Decimal `json:"ecoIndemnity"`
	TotalInsurance decimal.Decimal `json:"totalInsurance"`
	PremiumCost    decimal.Decimal `json:"premiumCost"`

	NetProfit decimal.Decimal `json:"netProfit"`
}

// MatrixSummary condenses the matrix for dashboard headlines.
type MatrixSummary struct {
	BestNetProfit   decimal.Decimal `json:"bestNetProfit"`
	WorstNetProfit  decimal.Decimal `json:"worstNetProfit"`
	MedianNetProfit decimal.Decimal `json:"medianNetProfit"`
	ProfitableCells int             `json:"profitableCells"`
	TotalCells      int             `json:"totalCells"`
}

// ProfitMatrixResponse is the full report for one farm. Matrix is
// indexed [yieldIndex][priceIndex]; both scenario axes are ascending.
// BreakEvenPrice is null when the farm has no expected production.
type ProfitMatrixResponse struct {
	FarmID    string    `json:"farmID"`
	FarmName  string    `json:"farmName"`
	Commodity Commodity `json:"commodity"`
	CropYear  int       `json:"cropYear"`

	Acres          decimal.Decimal `json:"acres"`
	ProjectedYield decimal.Decimal `json:"projectedYield"`
	Aph            decimal.Decimal `json:"aph"`

	Policy *CropInsurancePolicy `json:"policy"`

	BreakEvenPrice   *decimal.Decimal `json:"breakEvenPrice"`
	CostBreakdown    CostBreakdown    `json:"costBreakdown"`
	TotalCostPerAcre decimal.Decimal  `json:"totalCostPerAcre"`

	MarketedBushels   decimal.Decimal `json:"marketedBushels"`
	AvgMarketedPrice  decimal.Decimal `json:"avgMarketedPrice"`
	UnmarketedBushels decimal.Decimal `json:"unmarketedBushels"`

	YieldScenarios []decimal.Decimal    `json:"yieldScenarios"`
	PriceScenarios []decimal.Decimal    `json:"priceScenarios"`
	Matrix         [][]ProfitMatrixCell `json:"matrix"`

	Summary MatrixSummary `json:"summary"`
}

// BreakEvenResponse is the lighter-weight report without the matrix.
type BreakEvenResponse struct {
	FarmID    string    `json:"farmID"`
	FarmName  string    `json:"farmName"`
	Commodity Commodity `json:"commodity"`
	CropYear  int       `json:"cropYear"`

	Acres            decimal.Decimal  `json:"acres"`
	ProjectedYield   decimal.Decimal  `json:"projectedYield"`
	ExpectedBushels  decimal.Decimal  `json:"expectedBushels"`
	CostBreakdown    CostBreakdown    `json:"costBreakdown"`
	TotalCostPerAcre decimal.Decimal  `json:"totalCostPerAcre"`
	BreakEvenPrice   *decimal.Decimal `json:"breakEvenPrice"`

	MarketedBushels   decimal.Decimal `json:"marketedBushels"`
	AvgMarketedPrice  decimal.Decimal `json:"avgMarketedPrice"`
	UnmarketedBushels decimal.Decimal `json:"unmarketedBushels"`
}
