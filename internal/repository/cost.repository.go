package repository

import (
	"context"
	"fmt"

	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CostRepository interface {
	ListOtherCosts(ctx context.Context, farmID uuid.UUID) ([]domain.OtherCost, error)
	ListLoans(ctx context.Context, farmID uuid.UUID) ([]domain.LoanRecord, error)
}

func NewCostRepository(db *sqlx.DB) CostRepository {
	return costRepositoryHandler{Db: db}
}

type costRepositoryHandler struct {
	Db *sqlx.DB
}

func (h costRepositoryHandler) ListOtherCosts(ctx context.Context, farmID uuid.UUID) ([]domain.OtherCost, error) {
	query := `
		SELECT cost_id, farm_id, description, amount, per_acre
		FROM other_cost
		WHERE farm_id = $1 AND deleted_at IS NULL`

	costs := []domain.OtherCost{}
	err := h.Db.SelectContext(ctx, &costs, query, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list other costs for farm %s: %w", farmID, err)
	}

	return costs, nil
}

func (h costRepositoryHandler) ListLoans(ctx context.Context, farmID uuid.UUID) ([]domain.LoanRecord, error) {
	// annual_payment is amortized by the loan service before it lands
	// in this table
	query := `
		SELECT loan_id, farm_id, category, annual_payment
		FROM farm_loan
		WHERE farm_id = $1 AND deleted_at IS NULL`

	loans := []domain.LoanRecord{}
	err := h.Db.SelectContext(ctx, &loans, query, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans for farm %s: %w", farmID, err)
	}

	return loans, nil
}
