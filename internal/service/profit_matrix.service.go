package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jdrittgers/business-app-sub007/internal/calculator"
	"github.com/jdrittgers/business-app-sub007/internal/domain"
	"github.com/jdrittgers/business-app-sub007/internal/logger"
	"github.com/jdrittgers/business-app-sub007/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfitMatrixService is the read-then-compute orchestrator: it fetches
// a farm's records once, runs the pure calculators, and assembles the
// response. It never writes, so concurrent requests for the same farm
// are safe.
type ProfitMatrixService struct {
	FarmRepository          repository.FarmRepository
	InputUsageRepository    repository.InputUsageRepository
	CostRepository          repository.CostRepository
	GrainContractRepository repository.GrainContractRepository
	PolicyRepository        repository.InsurancePolicyRepository
}

func NewProfitMatrixService(
	farmRepository repository.FarmRepository,
	inputUsageRepository repository.InputUsageRepository,
	costRepository repository.CostRepository,
	grainContractRepository repository.GrainContractRepository,
	policyRepository repository.InsurancePolicyRepository,
) ProfitMatrixService {
	return ProfitMatrixService{
		FarmRepository:          farmRepository,
		InputUsageRepository:    inputUsageRepository,
		CostRepository:          costRepository,
		GrainContractRepository: grainContractRepository,
		PolicyRepository:        policyRepository,
	}
}

type farmInputs struct {
	Farm         domain.Farm
	CostInputs   domain.FarmCostInputs
	Contracts    []domain.GrainContract
	Policy       *domain.CropInsurancePolicy
	CurrentPrice decimal.Decimal
}

func (s ProfitMatrixService) loadFarmInputs(ctx context.Context, farmID uuid.UUID, businessID uuid.UUID) (*farmInputs, error) {
	farm, err := s.FarmRepository.Get(ctx, farmID, businessID)
	if err != nil {
		return nil, err
	}

	fertilizer, err := s.InputUsageRepository.ListInputUsage(ctx, farmID, domain.InputCategory_Fertilizer)
	if err != nil {
		return nil, fmt.Errorf("failed to load fertilizer usage: %w", err)
	}
	chemical, err := s.InputUsageRepository.ListInputUsage(ctx, farmID, domain.InputCategory_Chemical)
	if err != nil {
		return nil, fmt.Errorf("failed to load chemical usage: %w", err)
	}
	seed, err := s.InputUsageRepository.ListSeedUsage(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed usage: %w", err)
	}
	otherCosts, err := s.CostRepository.ListOtherCosts(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to load other costs: %w", err)
	}
	loans, err := s.CostRepository.ListLoans(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to load loans: %w", err)
	}
	contracts, err := s.GrainContractRepository.List(ctx, farmID, farm.Commodity, farm.CropYear)
	if err != nil {
		return nil, fmt.Errorf("failed to load grain contracts: %w", err)
	}
	policy, err := s.PolicyRepository.GetByFarm(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to load insurance policy: %w", err)
	}
	if policy != nil && policy.HasEco && !policy.EcoUsable() {
		logger.FromContext(ctx).Warnw(
			"policy has malformed ECO rider, treating as disabled",
			"policyID", policy.PolicyID,
			"farmID", farmID,
		)
	}
	currentPrice, err := s.GrainContractRepository.GetCurrentPrice(ctx, farm.Commodity, farm.CropYear)
	if err != nil {
		return nil, fmt.Errorf("failed to load current price: %w", err)
	}

	return &farmInputs{
		Farm: *farm,
		CostInputs: domain.FarmCostInputs{
			FertilizerUsage: fertilizer,
			ChemicalUsage:   chemical,
			SeedUsage:       seed,
			OtherCosts:      otherCosts,
			Loans:           loans,
		},
		Contracts:    contracts,
		Policy:       policy,
		CurrentPrice: currentPrice,
	}, nil
}

// ComputeBreakEven produces the lighter-weight cost/break-even report
// without the scenario matrix.
func (s ProfitMatrixService) ComputeBreakEven(ctx context.Context, farmID uuid.UUID, businessID uuid.UUID) (*domain.BreakEvenResponse, error) {
	in, err := s.loadFarmInputs(ctx, farmID, businessID)
	if err != nil {
		return nil, err
	}

	breakdown, err := calculator.AggregateCosts(in.Farm, in.CostInputs)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate costs: %w", err)
	}

	position := calculator.ComputeMarketingPosition(in.Contracts, in.Farm.ExpectedBushels())

	breakEven, err := breakEvenOrNil(in.Farm, breakdown.Total())
	if err != nil {
		return nil, err
	}

	return &domain.BreakEvenResponse{
		FarmID:            in.Farm.FarmID.String(),
		FarmName:          in.Farm.Name,
		Commodity:         in.Farm.Commodity,
		CropYear:          in.Farm.CropYear,
		Acres:             in.Farm.Acres,
		ProjectedYield:    in.Farm.ProjectedYield,
		ExpectedBushels:   in.Farm.ExpectedBushels(),
		CostBreakdown:     *breakdown,
		TotalCostPerAcre:  breakdown.Total(),
		BreakEvenPrice:    breakEven,
		MarketedBushels:   position.MarketedBushels,
		AvgMarketedPrice:  position.AvgPrice,
		UnmarketedBushels: position.UnmarketedBushels,
	}, nil
}

// ComputeProfitMatrix produces the full report: cost structure,
// break-even, marketing position, and the yield x price profit matrix
// with per-cell insurance indemnities.
func (s ProfitMatrixService) ComputeProfitMatrix(ctx context.Context, farmID uuid.UUID, businessID uuid.UUID) (*domain.ProfitMatrixResponse, error) {
	in, err := s.loadFarmInputs(ctx, farmID, businessID)
	if err != nil {
		return nil, err
	}

	breakdown, err := calculator.AggregateCosts(in.Farm, in.CostInputs)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate costs: %w", err)
	}

	position := calculator.ComputeMarketingPosition(in.Contracts, in.Farm.ExpectedBushels())

	breakEven, err := breakEvenOrNil(in.Farm, breakdown.Total())
	if err != nil {
		return nil, err
	}

	matrix, err := calculator.GenerateMatrix(calculator.GenerateMatrixInput{
		Farm:          in.Farm,
		CostBreakdown: *breakdown,
		Position:      position,
		Policy:        in.Policy,
		CurrentPrice:  in.CurrentPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate profit matrix: %w", err)
	}

	return &domain.ProfitMatrixResponse{
		FarmID:            in.Farm.FarmID.String(),
		FarmName:          in.Farm.Name,
		Commodity:         in.Farm.Commodity,
		CropYear:          in.Farm.CropYear,
		Acres:             in.Farm.Acres,
		ProjectedYield:    in.Farm.ProjectedYield,
		Aph:               in.Farm.Aph,
		Policy:            in.Policy,
		BreakEvenPrice:    breakEven,
		CostBreakdown:     *breakdown,
		TotalCostPerAcre:  breakdown.Total(),
		MarketedBushels:   position.MarketedBushels,
		AvgMarketedPrice:  position.AvgPrice,
		UnmarketedBushels: position.UnmarketedBushels,
		YieldScenarios:    matrix.YieldScenarios,
		PriceScenarios:    matrix.PriceScenarios,
		Matrix:            matrix.Matrix,
		Summary:           matrix.Summary,
	}, nil
}

// breakEvenOrNil maps the no-production case to a null break-even
// price; anything else is a real failure.
func breakEvenOrNil(farm domain.Farm, totalCostPerAcre decimal.Decimal) (*decimal.Decimal, error) {
	breakEven, err := calculator.BreakEvenPrice(farm, totalCostPerAcre)
	if errors.Is(err, domain.ErrNoProduction) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &breakEven, nil
}
