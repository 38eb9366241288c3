package calculator

import (
	"testing"

	"github.com/jdrittgers/business-app-sub007/internal"
	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func rpPolicy() *domain.CropInsurancePolicy {
	return &domain.CropInsurancePolicy{
		PlanType:       domain.PlanType_RevenueProtection,
		CoverageLevel:  decimal.NewFromFloat(0.80),
		ProjectedPrice: decimal.NewFromFloat(4.50),
		PremiumPerAcre: decimal.NewFromInt(12),
	}
}

func Test_ComputeIndemnity(t *testing.T) {
	aph := decimal.NewFromInt(180)

	t.Run("rp - no shortfall at full yield and projected price", func(t *testing.T) {
		out := ComputeIndemnity(IndemnityInput{
			Policy:        rpPolicy(),
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(180),
			ScenarioPrice: decimal.NewFromFloat(4.50),
		})

		// guarantee yield 144, revenue guarantee 648, actual 810
		require.True(t, out.Base.IsZero(), "expected zero base indemnity, got %s", out.Base)
		require.True(t, out.Total.IsZero())
	})

	t.Run("rp - yield and price shortfall", func(t *testing.T) {
		out := ComputeIndemnity(IndemnityInput{
			Policy:        rpPolicy(),
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(100),
			ScenarioPrice: decimal.NewFromFloat(3.50),
		})

		// guarantee 144 x max(4.50, 3.50) = 648, actual 350
		require.True(t, decimal.NewFromInt(298).Equal(out.Base), "expected 298, got %s", out.Base)
	})

	t.Run("rp - harvest price option raises the guarantee", func(t *testing.T) {
		out := ComputeIndemnity(IndemnityInput{
			Policy:        rpPolicy(),
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(100),
			ScenarioPrice: decimal.NewFromInt(6),
		})

		// guarantee 144 x 6 = 864, actual 600
		require.True(t, decimal.NewFromInt(264).Equal(out.Base), "expected 264, got %s", out.Base)
	})

	t.Run("rp_hpe - guarantee stays at projected price", func(t *testing.T) {
		policy := rpPolicy()
		policy.PlanType = domain.PlanType_RevenueProtectionHPE

		out := ComputeIndemnity(IndemnityInput{
			Policy:        policy,
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(100),
			ScenarioPrice: decimal.NewFromInt(6),
		})

		// guarantee 648, actual 600
		require.True(t, decimal.NewFromInt(48).Equal(out.Base), "expected 48, got %s", out.Base)
	})

	t.Run("yp - scenario price is ignored", func(t *testing.T) {
		policy := rpPolicy()
		policy.PlanType = domain.PlanType_YieldProtection

		lowPrice := ComputeIndemnity(IndemnityInput{
			Policy:        policy,
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(100),
			ScenarioPrice: decimal.NewFromInt(1),
		})
		highPrice := ComputeIndemnity(IndemnityInput{
			Policy:        policy,
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(100),
			ScenarioPrice: decimal.NewFromInt(9),
		})

		// (144 - 100) x 4.50 = 198 either way
		require.True(t, decimal.NewFromInt(198).Equal(lowPrice.Base), "expected 198, got %s", lowPrice.Base)
		require.True(t, lowPrice.Base.Equal(highPrice.Base))
	})

	t.Run("no riders - total equals base", func(t *testing.T) {
		out := ComputeIndemnity(IndemnityInput{
			Policy:        rpPolicy(),
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(100),
			ScenarioPrice: decimal.NewFromFloat(3.50),
		})

		require.True(t, out.Sco.IsZero())
		require.True(t, out.Eco.IsZero())
		require.True(t, out.Total.Equal(out.Base))
	})

	t.Run("sco - band between coverage level and 86 percent", func(t *testing.T) {
		policy := rpPolicy()
		policy.HasSco = true

		out := ComputeIndemnity(IndemnityInput{
			Policy:        policy,
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(100),
			ScenarioPrice: decimal.NewFromFloat(3.50),
		})

		// at 86%: 180 x 0.86 x 4.50 - 350 = 346.6; minus base 298
		require.True(t, decimal.NewFromFloat(48.6).Equal(out.Sco), "expected 48.6, got %s", out.Sco)
		require.True(t, out.Total.Equal(out.Base.Add(out.Sco)))
	})

	t.Run("eco - band above 86 percent", func(t *testing.T) {
		policy := rpPolicy()
		policy.HasEco = true
		policy.EcoLevel = internal.DecimalPointer(decimal.NewFromFloat(0.95))

		out := ComputeIndemnity(IndemnityInput{
			Policy:        policy,
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(100),
			ScenarioPrice: decimal.NewFromFloat(3.50),
		})

		// at 95%: 180 x 0.95 x 4.50 - 350 = 419.5; at 86%: 346.6
		require.True(t, decimal.NewFromFloat(72.9).Equal(out.Eco), "expected 72.9, got %s", out.Eco)
	})

	t.Run("malformed eco rider is treated as disabled", func(t *testing.T) {
		policy := rpPolicy()
		policy.HasEco = true
		policy.EcoLevel = nil

		out := ComputeIndemnity(IndemnityInput{
			Policy:        policy,
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(100),
			ScenarioPrice: decimal.NewFromFloat(3.50),
		})
		require.True(t, out.Eco.IsZero())

		policy.EcoLevel = internal.DecimalPointer(decimal.NewFromFloat(0.70))
		out = ComputeIndemnity(IndemnityInput{
			Policy:        policy,
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(100),
			ScenarioPrice: decimal.NewFromFloat(3.50),
		})
		require.True(t, out.Eco.IsZero())
	})

	t.Run("nil policy - all zeros", func(t *testing.T) {
		out := ComputeIndemnity(IndemnityInput{
			Policy:        nil,
			Aph:           aph,
			ScenarioYield: decimal.NewFromInt(50),
			ScenarioPrice: decimal.NewFromInt(2),
		})

		require.True(t, out.Base.IsZero())
		require.True(t, out.Sco.IsZero())
		require.True(t, out.Eco.IsZero())
		require.True(t, out.Total.IsZero())
	})
}

func Test_indemnityMonotonicity(t *testing.T) {
	aph := decimal.NewFromInt(180)

	t.Run("non-increasing in scenario yield", func(t *testing.T) {
		for _, planType := range []domain.PlanType{
			domain.PlanType_RevenueProtection,
			domain.PlanType_RevenueProtectionHPE,
			domain.PlanType_YieldProtection,
		} {
			policy := rpPolicy()
			policy.PlanType = planType

			prev := decimal.NewFromInt(1_000_000)
			for yield := 40; yield <= 240; yield += 20 {
				out := ComputeIndemnity(IndemnityInput{
					Policy:        policy,
					Aph:           aph,
					ScenarioYield: decimal.NewFromInt(int64(yield)),
					ScenarioPrice: decimal.NewFromFloat(4.00),
				})
				require.True(t, out.Total.LessThanOrEqual(prev),
					"%s: indemnity rose from %s to %s at yield %d", planType, prev, out.Total, yield)
				prev = out.Total
			}
		}
	})

	t.Run("non-increasing in scenario price while price is below projected", func(t *testing.T) {
		policy := rpPolicy()

		prev := decimal.NewFromInt(1_000_000)
		for cents := 250; cents <= 450; cents += 25 {
			out := ComputeIndemnity(IndemnityInput{
				Policy:        policy,
				Aph:           aph,
				ScenarioYield: decimal.NewFromInt(100),
				ScenarioPrice: decimal.NewFromInt(int64(cents)).Div(decimal.NewFromInt(100)),
			})
			require.True(t, out.Total.LessThanOrEqual(prev),
				"indemnity rose from %s to %s at price %d cents", prev, out.Total, cents)
			prev = out.Total
		}
	})
}
