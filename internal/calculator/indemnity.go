package calculator

import (
	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/shopspring/decimal"
)

// scoBandTop is the county-level coverage the SCO rider fills up to.
// ECO bands stack on top of it whether or not SCO was purchased.
var scoBandTop = decimal.NewFromFloat(0.86)

type IndemnityInput struct {
	Policy        *domain.CropInsurancePolicy
	Aph           decimal.Decimal
	ScenarioYield decimal.Decimal
	ScenarioPrice decimal.Decimal
}

// ComputeIndemnity computes the per-acre base, SCO, and ECO payouts for
// one (yield, price) scenario using RMA revenue/yield protection
// formulas. A nil policy returns all zeros - the matrix still shows
// profit without insurance for uninsured farms.
func ComputeIndemnity(in IndemnityInput) domain.IndemnityBreakdown {
	if in.Policy == nil {
		return domain.IndemnityBreakdown{
			Base:  decimal.Zero,
			Sco:   decimal.Zero,
			Eco:   decimal.Zero,
			Total: decimal.Zero,
		}
	}
	policy := *in.Policy

	base := indemnityAtLevel(policy, policy.CoverageLevel, in)

	sco := decimal.Zero
	if policy.HasSco {
		// SCO fills the band between the farmer's own coverage level
		// and the 86% county trigger
		sco = indemnityAtLevel(policy, scoBandTop, in).Sub(base)
		if sco.LessThan(decimal.Zero) {
			sco = decimal.Zero
		}
	}

	eco := decimal.Zero
	// a malformed ECO rider (missing level, or level at/below base
	// coverage) is treated as disabled; the service logs it once at
	// load time
	if policy.EcoUsable() {
		eco = indemnityAtLevel(policy, *policy.EcoLevel, in).
			Sub(indemnityAtLevel(policy, scoBandTop, in))
		if eco.LessThan(decimal.Zero) {
			eco = decimal.Zero
		}
	}

	return domain.IndemnityBreakdown{
		Base:  base,
		Sco:   sco,
		Eco:   eco,
		Total: base.Add(sco).Add(eco),
	}
}

// indemnityAtLevel evaluates the plan's shortfall formula as if the
// policy were written at the given coverage level. Band riders are the
// difference between two such evaluations.
func indemnityAtLevel(policy domain.CropInsurancePolicy, coverageLevel decimal.Decimal, in IndemnityInput) decimal.Decimal {
	guaranteeYield := in.Aph.Mul(coverageLevel)

	var guarantee, actual decimal.Decimal
	switch policy.PlanType {
	case domain.PlanType_YieldProtection:
		// yield shortfall only; scenario price never enters
		guarantee = guaranteeYield.Mul(policy.ProjectedPrice)
		actual = in.ScenarioYield.Mul(policy.ProjectedPrice)
	case domain.PlanType_RevenueProtectionHPE:
		// harvest price exclusion: the guarantee never rises with a
		// higher harvest price
		guarantee = guaranteeYield.Mul(policy.ProjectedPrice)
		actual = in.ScenarioYield.Mul(in.ScenarioPrice)
	default:
		// RP: harvest price option locks in the higher of projected
		// and harvest price
		price := policy.ProjectedPrice
		if in.ScenarioPrice.GreaterThan(price) {
			price = in.ScenarioPrice
		}
		guarantee = guaranteeYield.Mul(price)
		actual = in.ScenarioYield.Mul(in.ScenarioPrice)
	}

	shortfall := guarantee.Sub(actual)
	if shortfall.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return shortfall
}
