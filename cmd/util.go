package cmd

import (
	"fmt"
	"log"

	"github.com/jdrittgers/business-app-sub007/api"
	"github.com/jdrittgers/business-app-sub007/internal"
	"github.com/jdrittgers/business-app-sub007/internal/repository"
	"github.com/jdrittgers/business-app-sub007/internal/service"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sqlx.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	farmRepository := repository.NewFarmRepository(dbConn)
	inputUsageRepository := repository.NewInputUsageRepository(dbConn)
	costRepository := repository.NewCostRepository(dbConn)
	grainContractRepository := repository.NewGrainContractRepository(dbConn)
	policyRepository := repository.NewInsurancePolicyRepository(dbConn)

	profitMatrixService := service.NewProfitMatrixService(
		farmRepository,
		inputUsageRepository,
		costRepository,
		grainContractRepository,
		policyRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                  dbConn,
		ProfitMatrixService: profitMatrixService,
	}

	return apiHandler, nil
}
