package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InputCategory string

const (
	InputCategory_Fertilizer InputCategory = "FERTILIZER"
	InputCategory_Chemical   InputCategory = "CHEMICAL"
)

// InputUsage is one fertilizer or chemical application on a farm. The
// applied amount is either stored directly (AmountUsed, in purchase
// units) or derived from RatePerAcre x AcresApplied, converting the
// rate unit into the purchase unit first.
type InputUsage struct {
	UsageID      uuid.UUID        `db:"usage_id"`
	FarmID       uuid.UUID        `db:"farm_id"`
	Category     InputCategory    `db:"category"`
	ProductName  string           `db:"product_name"`
	AmountUsed   *decimal.Decimal `db:"amount_used"`
	RatePerAcre  *decimal.Decimal `db:"rate_per_acre"`
	AcresApplied *decimal.Decimal `db:"acres_applied"`
	RateUnit     Unit             `db:"rate_unit"`
	PurchaseUnit Unit             `db:"purchase_unit"`
	PricePerUnit decimal.Decimal  `db:"price_per_unit"`
}

// SeedUsage is one seed purchase/application. Bags are either stored or
// derived as population x acres / seeds per bag.
type SeedUsage struct {
	UsageID           uuid.UUID        `db:"usage_id"`
	FarmID            uuid.UUID        `db:"farm_id"`
	ProductName       string           `db:"product_name"`
	BagsUsed          *decimal.Decimal `db:"bags_used"`
	PopulationPerAcre *decimal.Decimal `db:"population_per_acre"`
	AcresApplied      *decimal.Decimal `db:"acres_applied"`
	SeedsPerBag       *decimal.Decimal `db:"seeds_per_bag"`
	PricePerBag       decimal.Decimal  `db:"price_per_bag"`
}

// OtherCost is a miscellaneous cost line item. PerAcre items multiply
// out by farm acres; flat items are totals for the whole farm.
type OtherCost struct {
	CostID      uuid.UUID       `db:"cost_id"`
	FarmID      uuid.UUID       `db:"farm_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	PerAcre     bool            `db:"per_acre"`
}

type LoanCategory string

const (
	LoanCategory_Equipment LoanCategory = "EQUIPMENT"
	LoanCategory_Land      LoanCategory = "LAND"
	LoanCategory_Operating LoanCategory = "OPERATING"
)

// LoanRecord carries the already-amortized annual payment allocated to
// this farm. Amortization itself happens in the loan service; this
// engine only spreads the payment across acres.
type LoanRecord struct {
	LoanID        uuid.UUID       `db:"loan_id"`
	FarmID        uuid.UUID       `db:"farm_id"`
	Category      LoanCategory    `db:"category"`
	AnnualPayment decimal.Decimal `db:"annual_payment"`
}

// CostBreakdown is the per-acre cost structure for one farm and crop
// year. Total is always the sum of the components.
type CostBreakdown struct {
	Fertilizer        decimal.Decimal `json:"fertilizer"`
	Chemical          decimal.Decimal `json:"chemical"`
	Seed              decimal.Decimal `json:"seed"`
	LandRent          decimal.Decimal `json:"landRent"`
	OtherCosts        decimal.Decimal `json:"otherCosts"`
	EquipmentLoan     decimal.Decimal `json:"equipmentLoan"`
	LandLoan          decimal.Decimal `json:"landLoan"`
	OperatingInterest decimal.Decimal `json:"operatingInterest"`
	Trucking          decimal.Decimal `json:"trucking"`
}

func (c CostBreakdown) Total() decimal.Decimal {
	return c.Fertilizer.
		Add(c.Chemical).
		Add(c.Seed).
		Add(c.LandRent).
		Add(c.OtherCosts).
		Add(c.EquipmentLoan).
		Add(c.LandLoan).
		Add(c.OperatingInterest).
		Add(c.Trucking)
}

// FarmCostInputs bundles everything the cost aggregator needs, fetched
// once at the start of a calculation.
type FarmCostInputs struct {
	FertilizerUsage []InputUsage
	ChemicalUsage   []InputUsage
	SeedUsage       []SeedUsage
	OtherCosts      []OtherCost
	Loans           []LoanRecord
}
