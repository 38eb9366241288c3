package repository

import (
	"context"
	"fmt"

	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type InputUsageRepository interface {
	ListInputUsage(ctx context.Context, farmID uuid.UUID, category domain.InputCategory) ([]domain.InputUsage, error)
	ListSeedUsage(ctx context.Context, farmID uuid.UUID) ([]domain.SeedUsage, error)
}

func NewInputUsageRepository(db *sqlx.DB) InputUsageRepository {
	return inputUsageRepositoryHandler{Db: db}
}

type inputUsageRepositoryHandler struct {
	Db *sqlx.DB
}

type inputUsageRow struct {
	UsageID      uuid.UUID           `db:"usage_id"`
	FarmID       uuid.UUID           `db:"farm_id"`
	Category     string              `db:"category"`
	ProductName  string              `db:"product_name"`
	AmountUsed   decimal.NullDecimal `db:"amount_used"`
	RatePerAcre  decimal.NullDecimal `db:"rate_per_acre"`
	AcresApplied decimal.NullDecimal `db:"acres_applied"`
	RateUnit     string              `db:"rate_unit"`
	PurchaseUnit string              `db:"purchase_unit"`
	PricePerUnit decimal.Decimal     `db:"price_per_unit"`
}

func (h inputUsageRepositoryHandler) ListInputUsage(ctx context.Context, farmID uuid.UUID, category domain.InputCategory) ([]domain.InputUsage, error) {
	query := `
		SELECT usage_id, farm_id, category, product_name, amount_used,
		       rate_per_acre, acres_applied, rate_unit, purchase_unit, price_per_unit
		FROM input_usage
		WHERE farm_id = $1 AND category = $2 AND deleted_at IS NULL`

	rows := []inputUsageRow{}
	err := h.Db.SelectContext(ctx, &rows, query, farmID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s usage for farm %s: %w", category, farmID, err)
	}

	usages := make([]domain.InputUsage, 0, len(rows))
	for _, row := range rows {
		rateUnit, err := domain.NewUnit(row.RateUnit)
		if err != nil {
			return nil, fmt.Errorf("usage %s: %w", row.UsageID, err)
		}
		purchaseUnit, err := domain.NewUnit(row.PurchaseUnit)
		if err != nil {
			return nil, fmt.Errorf("usage %s: %w", row.UsageID, err)
		}
		usages = append(usages, domain.InputUsage{
			UsageID:      row.UsageID,
			FarmID:       row.FarmID,
			Category:     domain.InputCategory(row.Category),
			ProductName:  row.ProductName,
			AmountUsed:   nullableDecimal(row.AmountUsed),
			RatePerAcre:  nullableDecimal(row.RatePerAcre),
			AcresApplied: nullableDecimal(row.AcresApplied),
			RateUnit:     rateUnit,
			PurchaseUnit: purchaseUnit,
			PricePerUnit: row.PricePerUnit,
		})
	}

	return usages, nil
}

type seedUsageRow struct {
	UsageID           uuid.UUID           `db:"usage_id"`
	FarmID            uuid.UUID           `db:"farm_id"`
	ProductName       string              `db:"product_name"`
	BagsUsed          decimal.NullDecimal `db:"bags_used"`
	PopulationPerAcre decimal.NullDecimal `db:"population_per_acre"`
	AcresApplied      decimal.NullDecimal `db:"acres_applied"`
	SeedsPerBag       decimal.NullDecimal `db:"seeds_per_bag"`
	PricePerBag       decimal.Decimal     `db:"price_per_bag"`
}

func (h inputUsageRepositoryHandler) ListSeedUsage(ctx context.Context, farmID uuid.UUID) ([]domain.SeedUsage, error) {
	query := `
		SELECT usage_id, farm_id, product_name, bags_used, population_per_acre,
		       acres_applied, seeds_per_bag, price_per_bag
		FROM seed_usage
		WHERE farm_id = $1 AND deleted_at IS NULL`

	rows := []seedUsageRow{}
	err := h.Db.SelectContext(ctx, &rows, query, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seed usage for farm %s: %w", farmID, err)
	}

	usages := make([]domain.SeedUsage, 0, len(rows))
	for _, row := range rows {
		usages = append(usages, domain.SeedUsage{
			UsageID:           row.UsageID,
			FarmID:            row.FarmID,
			ProductName:       row.ProductName,
			BagsUsed:          nullableDecimal(row.BagsUsed),
			PopulationPerAcre: nullableDecimal(row.PopulationPerAcre),
			AcresApplied:      nullableDecimal(row.AcresApplied),
			SeedsPerBag:       nullableDecimal(row.SeedsPerBag),
			PricePerBag:       row.PricePerBag,
		})
	}

	return usages, nil
}

func nullableDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
