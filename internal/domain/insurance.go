package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlanType string

const (
	PlanType_RevenueProtection PlanType = "RP"
	PlanType_YieldProtection   PlanType = "YP"
	// RP with the harvest price exclusion - the guarantee never rises
	// with a higher harvest price.
	PlanType_RevenueProtectionHPE PlanType = "RP_HPE"
)

func NewPlanType(s string) (PlanType, error) {
	switch PlanType(strings.ToUpper(s)) {
	case PlanType_RevenueProtection:
		return PlanType_RevenueProtection, nil
	case PlanType_YieldProtection:
		return PlanType_YieldProtection, nil
	case PlanType_RevenueProtectionHPE:
		return PlanType_RevenueProtectionHPE, nil
	}
	return "", fmt.Errorf("unknown insurance plan type %q", s)
}

// CropInsurancePolicy belongs to exactly one farm. Projected price and
// volatility come from RMA price discovery before the season; premiums
// are policy data, never derived here.
type CropInsurancePolicy struct {
	PolicyID         uuid.UUID       `db:"policy_id" json:"policyID"`
	FarmID           uuid.UUID       `db:"farm_id" json:"farmID"`
	PlanType         PlanType        `db:"plan_type" json:"planType"`
	CoverageLevel    decimal.Decimal `db:"coverage_level" json:"coverageLevel"`
	ProjectedPrice   decimal.Decimal `db:"projected_price" json:"projectedPrice"`
	VolatilityFactor decimal.Decimal `db:"volatility_factor" json:"volatilityFactor"`
	PremiumPerAcre   decimal.Decimal `db:"premium_per_acre" json:"premiumPerAcre"`

	HasSco            bool            `db:"has_sco" json:"hasSco"`
	ScoPremiumPerAcre decimal.Decimal `db:"sco_premium_per_acre" json:"scoPremiumPerAcre"`

	HasEco            bool             `db:"has_eco" json:"hasEco"`
	EcoLevel          *decimal.Decimal `db:"eco_level" json:"ecoLevel,omitempty"`
	EcoPremiumPerAcre decimal.Decimal  `db:"eco_premium_per_acre" json:"ecoPremiumPerAcre"`
}

// EcoUsable reports whether the ECO rider is well formed: an ECO level
// must be present and sit above the base coverage level. A malformed
// rider is treated as disabled rather than failing the whole report.
func (p CropInsurancePolicy) EcoUsable() bool {
	return p.HasEco && p.EcoLevel != nil && p.EcoLevel.GreaterThan(p.CoverageLevel)
}

// TotalPremiumPerAcre sums the base premium with whichever rider
// premiums are active.
func (p CropInsurancePolicy) TotalPremiumPerAcre() decimal.Decimal {
	total := p.PremiumPerAcre
	if p.HasSco {
		total = total.Add(p.ScoPremiumPerAcre)
	}
	if p.EcoUsable() {
		total = total.Add(p.EcoPremiumPerAcre)
	}
	return total
}

// IndemnityBreakdown is the per-acre insurance payout for one
// (yield, price) scenario.
type IndemnityBreakdown struct {
	Base  decimal.Decimal `json:"baseIndemnity"`
	Sco   decimal.Decimal `json:"scoIndemnity"`
	Eco   decimal.Decimal `json:"ecoIndemnity"`
	Total decimal.Decimal `json:"totalIndemnity"`
}
