package calculator

import (
	"testing"

	"github.com/jdrittgers/business-app-sub007/internal"
	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func Test_AggregateCosts(t *testing.T) {
	farm := domain.Farm{
		Acres:             decimal.NewFromInt(100),
		ProjectedYield:    decimal.NewFromInt(200),
		LandRentPerAcre:   decimal.NewFromInt(50),
		TruckingPerBushel: decimal.NewFromFloat(0.10),
	}

	t.Run("full breakdown", func(t *testing.T) {
		inputs := domain.FarmCostInputs{
			FertilizerUsage: []domain.InputUsage{
				{
					Category:     domain.InputCategory_Fertilizer,
					AmountUsed:   internal.DecimalPointer(decimal.NewFromInt(10)),
					RateUnit:     domain.Unit_Gallon,
					PurchaseUnit: domain.Unit_Gallon,
					PricePerUnit: decimal.NewFromInt(30),
				},
			},
			ChemicalUsage: []domain.InputUsage{
				{
					Category:     domain.InputCategory_Chemical,
					RatePerAcre:  internal.DecimalPointer(decimal.NewFromInt(32)),
					AcresApplied: internal.DecimalPointer(decimal.NewFromInt(100)),
					RateUnit:     domain.Unit_FlOz,
					PurchaseUnit: domain.Unit_Gallon,
					PricePerUnit: decimal.NewFromInt(40),
				},
			},
			SeedUsage: []domain.SeedUsage{
				{
					PopulationPerAcre: internal.DecimalPointer(decimal.NewFromInt(34000)),
					AcresApplied:      internal.DecimalPointer(decimal.NewFromInt(100)),
					SeedsPerBag:       internal.DecimalPointer(decimal.NewFromInt(80000)),
					PricePerBag:       decimal.NewFromInt(120),
				},
			},
			OtherCosts: []domain.OtherCost{
				{Description: "crop scouting", Amount: decimal.NewFromInt(2000), PerAcre: false},
				{Description: "drying", Amount: decimal.NewFromInt(5), PerAcre: true},
			},
			Loans: []domain.LoanRecord{
				{Category: domain.LoanCategory_Equipment, AnnualPayment: decimal.NewFromInt(3000)},
				{Category: domain.LoanCategory_Land, AnnualPayment: decimal.NewFromInt(7000)},
				{Category: domain.LoanCategory_Operating, AnnualPayment: decimal.NewFromInt(1000)},
			},
		}

		out, err := AggregateCosts(farm, inputs)
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				&domain.CostBreakdown{
					// 10 GAL x $30 / 100 acres
					Fertilizer: decimal.NewFromInt(3),
					// 32 oz/acre x 100 acres = 3200 oz = 25 GAL x $40 / 100 acres
					Chemical: decimal.NewFromInt(10),
					// 34k x 100 / 80k = 42.5 bags x $120 / 100 acres
					Seed:     decimal.NewFromInt(51),
					LandRent: decimal.NewFromInt(50),
					// $2000 flat + $5/acre x 100 acres, over 100 acres
					OtherCosts:        decimal.NewFromInt(25),
					EquipmentLoan:     decimal.NewFromInt(30),
					LandLoan:          decimal.NewFromInt(70),
					OperatingInterest: decimal.NewFromInt(10),
					// $0.10/bu x 200 bu/acre
					Trucking: decimal.NewFromInt(20),
				},
				out,
				decimalComparer,
			),
		)

		require.True(t, decimal.NewFromInt(269).Equal(out.Total()), "total: %s", out.Total())

		// whole-farm cost is exactly components x acres
		totalCost := out.Total().Mul(farm.Acres)
		require.True(t, decimal.NewFromInt(26900).Equal(totalCost), "total cost: %s", totalCost)
	})

	t.Run("stored amount wins over rate derivation", func(t *testing.T) {
		inputs := domain.FarmCostInputs{
			FertilizerUsage: []domain.InputUsage{
				{
					AmountUsed:   internal.DecimalPointer(decimal.NewFromInt(5)),
					RatePerAcre:  internal.DecimalPointer(decimal.NewFromInt(999)),
					AcresApplied: internal.DecimalPointer(decimal.NewFromInt(999)),
					RateUnit:     domain.Unit_Quart,
					PurchaseUnit: domain.Unit_Gallon,
					PricePerUnit: decimal.NewFromInt(20),
				},
			},
		}

		out, err := AggregateCosts(farm, inputs)
		require.NoError(t, err)
		require.True(t, decimal.NewFromInt(1).Equal(out.Fertilizer), "fertilizer: %s", out.Fertilizer)
	})

	t.Run("weight units convert within family", func(t *testing.T) {
		inputs := domain.FarmCostInputs{
			ChemicalUsage: []domain.InputUsage{
				{
					// 8 dry oz/acre of a product bought by the pound
					RatePerAcre:  internal.DecimalPointer(decimal.NewFromInt(8)),
					AcresApplied: internal.DecimalPointer(decimal.NewFromInt(100)),
					RateUnit:     domain.Unit_DryOz,
					PurchaseUnit: domain.Unit_Pound,
					PricePerUnit: decimal.NewFromInt(16),
				},
			},
		}

		out, err := AggregateCosts(farm, inputs)
		require.NoError(t, err)
		// 800 oz = 50 lb x $16 / 100 acres
		require.True(t, decimal.NewFromInt(8).Equal(out.Chemical), "chemical: %s", out.Chemical)
	})

	t.Run("cross-family unit conversion is rejected", func(t *testing.T) {
		inputs := domain.FarmCostInputs{
			ChemicalUsage: []domain.InputUsage{
				{
					RatePerAcre:  internal.DecimalPointer(decimal.NewFromInt(8)),
					AcresApplied: internal.DecimalPointer(decimal.NewFromInt(100)),
					RateUnit:     domain.Unit_FlOz,
					PurchaseUnit: domain.Unit_Pound,
					PricePerUnit: decimal.NewFromInt(16),
				},
			},
		}

		_, err := AggregateCosts(farm, inputs)
		require.Error(t, err)
	})

	t.Run("zero acres produces an all-zero breakdown", func(t *testing.T) {
		out, err := AggregateCosts(domain.Farm{Acres: decimal.Zero}, domain.FarmCostInputs{
			OtherCosts: []domain.OtherCost{
				{Amount: decimal.NewFromInt(5000), PerAcre: false},
			},
		})
		require.NoError(t, err)
		require.True(t, out.Total().IsZero())
	})
}
