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

type GrainContractRepository interface {
	List(ctx context.Context, farmID uuid.UUID, commodity domain.Commodity, cropYear int) ([]domain.GrainContract, error)

	// GetCurrentPrice returns the latest cash price the bid side of
	// the marketplace has recorded for the commodity and crop year.
	// Zero (not an error) when no bid exists yet.
	GetCurrentPrice(ctx context.Context, commodity domain.Commodity, cropYear int) (decimal.Decimal, error)
}

func NewGrainContractRepository(db *sqlx.DB) GrainContractRepository {
	return grainContractRepositoryHandler{Db: db}
}

type grainContractRepositoryHandler struct {
	Db *sqlx.DB
}

func (h grainContractRepositoryHandler) List(ctx context.Context, farmID uuid.UUID, commodity domain.Commodity, cropYear int) ([]domain.GrainContract, error) {
	query := `
		SELECT contract_id, farm_id, commodity, crop_year, contract_type,
		       bushels, priced_bushels, cash_price
		FROM grain_contract
		WHERE farm_id = $1 AND commodity = $2 AND crop_year = $3 AND deleted_at IS NULL`

	contracts := []domain.GrainContract{}
	err := h.Db.SelectContext(ctx, &contracts, query, farmID, commodity, cropYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts for farm %s: %w", farmID, err)
	}

	return contracts, nil
}

func (h grainContractRepositoryHandler) GetCurrentPrice(ctx context.Context, commodity domain.Commodity, cropYear int) (decimal.Decimal, error) {
	query := `
		SELECT price
		FROM commodity_price
		WHERE commodity = $1 AND crop_year = $2
		ORDER BY recorded_at DESC
		LIMIT 1`

	var price decimal.Decimal
	err := h.Db.GetContext(ctx, &price, query, commodity, cropYear)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	} else if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get current price for %s/%d: %w", commodity, cropYear, err)
	}

	return price, nil
}
