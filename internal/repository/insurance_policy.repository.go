package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type InsurancePolicyRepository interface {
	// GetByFarm returns (nil, nil) when the farm carries no policy;
	// uninsured farms are a normal case, not an error.
	GetByFarm(ctx context.Context, farmID uuid.UUID) (*domain.CropInsurancePolicy, error)
}

func NewInsurancePolicyRepository(db *sqlx.DB) InsurancePolicyRepository {
	return insurancePolicyRepositoryHandler{Db: db}
}

type insurancePolicyRepositoryHandler struct {
	Db *sqlx.DB
}

type policyRow struct {
	PolicyID          uuid.UUID           `db:"policy_id"`
	FarmID            uuid.UUID           `db:"farm_id"`
	PlanType          string              `db:"plan_type"`
	CoverageLevel     decimal.Decimal     `db:"coverage_level"`
	ProjectedPrice    decimal.Decimal     `db:"projected_price"`
	VolatilityFactor  decimal.Decimal     `db:"volatility_factor"`
	PremiumPerAcre    decimal.Decimal     `db:"premium_per_acre"`
	HasSco            bool                `db:"has_sco"`
	ScoPremiumPerAcre decimal.Decimal     `db:"sco_premium_per_acre"`
	HasEco            bool                `db:"has_eco"`
	EcoLevel          decimal.NullDecimal `db:"eco_level"`
	EcoPremiumPerAcre decimal.Decimal     `db:"eco_premium_per_acre"`
}

func (h insurancePolicyRepositoryHandler) GetByFarm(ctx context.Context, farmID uuid.UUID) (*domain.CropInsurancePolicy, error) {
	query := `
		SELECT policy_id, farm_id, plan_type, coverage_level, projected_price,
		       volatility_factor, premium_per_acre, has_sco, sco_premium_per_acre,
		       has_eco, eco_level, eco_premium_per_acre
		FROM crop_insurance_policy
		WHERE farm_id = $1 AND deleted_at IS NULL`

	var row policyRow
	err := h.Db.GetContext(ctx, &row, query, farmID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get policy for farm %s: %w", farmID, err)
	}

	planType, err := domain.NewPlanType(row.PlanType)
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", row.PolicyID, err)
	}

	return &domain.CropInsurancePolicy{
		PolicyID:          row.PolicyID,
		FarmID:            row.FarmID,
		PlanType:          planType,
		CoverageLevel:     row.CoverageLevel,
		ProjectedPrice:    row.ProjectedPrice,
		VolatilityFactor:  row.VolatilityFactor,
		PremiumPerAcre:    row.PremiumPerAcre,
		HasSco:            row.HasSco,
		ScoPremiumPerAcre: row.ScoPremiumPerAcre,
		HasEco:            row.HasEco,
		EcoLevel:          nullableDecimal(row.EcoLevel),
		EcoPremiumPerAcre: row.EcoPremiumPerAcre,
	}, nil
}
