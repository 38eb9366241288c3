package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContractType string

const (
	ContractType_Cash  ContractType = "CASH"
	ContractType_Basis ContractType = "BASIS"
	ContractType_Hta   ContractType = "HTA"
)

// GrainContract is one delivery commitment for a farm's crop year. CASH
// contracts are fully priced; BASIS and HTA contracts may have only a
// portion of their bushels priced so far.
type GrainContract struct {
	ContractID    uuid.UUID       `db:"contract_id"`
	FarmID        uuid.UUID       `db:"farm_id"`
	Commodity     Commodity       `db:"commodity"`
	CropYear      int             `db:"crop_year"`
	ContractType  ContractType    `db:"contract_type"`
	Bushels       decimal.Decimal `db:"bushels"`
	PricedBushels decimal.Decimal `db:"priced_bushels"`
	CashPrice     decimal.Decimal `db:"cash_price"`
}

// FixedPriceBushels returns the bushels of this contract that are
// locked in at CashPrice.
func (c GrainContract) FixedPriceBushels() decimal.Decimal {
	if c.ContractType == ContractType_Cash {
		return c.Bushels
	}
	return c.PricedBushels
}

// MarketingPosition is derived, never persisted. AvgPrice is zero (not
// undefined) when nothing has been marketed; the UI renders that as
// N/A.
type MarketingPosition struct {
	MarketedBushels   decimal.Decimal `json:"marketedBushels"`
	AvgPrice          decimal.Decimal `json:"avgMarketedPrice"`
	UnmarketedBushels decimal.Decimal `json:"unmarketedBushels"`
}
