package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Commodity string

const (
	Commodity_Corn     Commodity = "CORN"
	Commodity_Soybeans Commodity = "SOYBEANS"
	Commodity_Wheat    Commodity = "WHEAT"
)

func NewCommodity(s string) (Commodity, error) {
	switch Commodity(strings.ToUpper(s)) {
	case Commodity_Corn:
		return Commodity_Corn, nil
	case Commodity_Soybeans:
		return Commodity_Soybeans, nil
	case Commodity_Wheat:
		return Commodity_Wheat, nil
	}
	return "", fmt.Errorf("unknown commodity %q", s)
}

// Farm is the read-only planning record the engine computes against.
// Acreage and APH are frozen once a season's plan is approved; that
// happens upstream, so nothing here ever writes back.
type Farm struct {
	FarmID         uuid.UUID       `db:"farm_id" json:"farmID"`
	BusinessID     uuid.UUID       `db:"business_id" json:"businessID"`
	Name           string          `db:"name" json:"name"`
	Acres          decimal.Decimal `db:"acres" json:"acres"`
	ProjectedYield decimal.Decimal `db:"projected_yield" json:"projectedYield"`
	Aph            decimal.Decimal `db:"aph" json:"aph"`
	Commodity      Commodity       `db:"commodity" json:"commodity"`
	CropYear       int             `db:"crop_year" json:"cropYear"`

	// land rent and trucking live on the farm record rather than as
	// usage line items
	LandRentPerAcre   decimal.Decimal `db:"land_rent_per_acre" json:"landRentPerAcre"`
	TruckingPerBushel decimal.Decimal `db:"trucking_per_bushel" json:"truckingPerBushel"`
}

// ExpectedBushels uses projected yield, not APH; break-even is a
// forward-looking number.
func (f Farm) ExpectedBushels() decimal.Decimal {
	return f.Acres.Mul(f.ProjectedYield)
}
