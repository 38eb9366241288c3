package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type FarmRepository interface {
	// Get returns the farm only if it belongs to the given business;
	// a farm under another business is domain.ErrFarmNotFound, same as
	// a missing one.
	Get(ctx context.Context, farmID uuid.UUID, businessID uuid.UUID) (*domain.Farm, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.Farm, error)
}

func NewFarmRepository(db *sqlx.DB) FarmRepository {
	return farmRepositoryHandler{Db: db}
}

type farmRepositoryHandler struct {
	Db *sqlx.DB
}

func (h farmRepositoryHandler) Get(ctx context.Context, farmID uuid.UUID, businessID uuid.UUID) (*domain.Farm, error) {
	query := `
		SELECT farm_id, business_id, name, acres, projected_yield, aph,
		       commodity, crop_year, land_rent_per_acre, trucking_per_bushel
		FROM farm
		WHERE farm_id = $1 AND business_id = $2 AND deleted_at IS NULL`

	var farm domain.Farm
	err := h.Db.GetContext(ctx, &farm, query, farmID, businessID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFarmNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get farm %s: %w", farmID, err)
	}

	return &farm, nil
}

func (h farmRepositoryHandler) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.Farm, error) {
	query := `
		SELECT farm_id, business_id, name, acres, projected_yield, aph,
		       commodity, crop_year, land_rent_per_acre, trucking_per_bushel
		FROM farm
		WHERE business_id = $1 AND deleted_at IS NULL
		ORDER BY name`

	farms := []domain.Farm{}
	err := h.Db.SelectContext(ctx, &farms, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms for business %s: %w", businessID, err)
	}

	return farms, nil
}
