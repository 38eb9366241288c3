package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jdrittgers/business-app-sub007/cmd"
	"github.com/jdrittgers/business-app-sub007/internal"
	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	businessIDFlag string
	farmIDFlag     string
	csvFlag        bool
)

// matrixCsvRow is the flattened per-cell shape agronomists pull into
// spreadsheets.
type matrixCsvRow struct {
	ScenarioYield string `csv:"scenario_yield"`
	ScenarioPrice string `csv:"scenario_price"`
	GrossRevenue  string `csv:"gross_revenue_per_acre"`
	TotalCost     string `csv:"total_cost_per_acre"`
	BaseIndemnity string `csv:"base_indemnity"`
	ScoIndemnity  string `csv:"sco_indemnity"`
	EcoIndemnity  string `csv:"eco_indemnity"`
	PremiumCost   string `csv:"premium_cost"`
	NetProfit     string `csv:"net_profit_per_acre"`
}

func parseIDs() (uuid.UUID, uuid.UUID, error) {
	businessID, err := uuid.Parse(businessIDFlag)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid business id: %w", err)
	}
	farmID, err := uuid.Parse(farmIDFlag)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid farm id: %w", err)
	}
	return businessID, farmID, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "profitctl",
		Short: "Run farm profitability reports from the command line",
	}
	rootCmd.PersistentFlags().StringVar(&businessIDFlag, "business-id", "", "business UUID")
	rootCmd.PersistentFlags().StringVar(&farmIDFlag, "farm-id", "", "farm UUID")

	breakevenCmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Print the cost breakdown and break-even price for a farm",
		RunE: func(c *cobra.Command, args []string) error {
			businessID, farmID, err := parseIDs()
			if err != nil {
				return err
			}
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			response, err := apiHandler.ProfitMatrixService.ComputeBreakEven(context.Background(), farmID, businessID)
			if err != nil {
				return err
			}
			internal.Pprint(response)
			return nil
		},
	}

	matrixCmd := &cobra.Command{
		Use:   "profit-matrix",
		Short: "Print the full yield x price profit matrix for a farm",
		RunE: func(c *cobra.Command, args []string) error {
			businessID, farmID, err := parseIDs()
			if err != nil {
				return err
			}
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			response, err := apiHandler.ProfitMatrixService.ComputeProfitMatrix(context.Background(), farmID, businessID)
			if err != nil {
				return err
			}

			if !csvFlag {
				internal.Pprint(response)
				return nil
			}

			out, err := gocsv.MarshalString(flattenMatrix(response))
			if err != nil {
				return fmt.Errorf("failed to marshal matrix csv: %w", err)
			}
			fmt.Print(out)
			return nil
		},
	}
	matrixCmd.Flags().BoolVar(&csvFlag, "csv", false, "emit the matrix as CSV instead of JSON")

	rootCmd.AddCommand(breakevenCmd, matrixCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func flattenMatrix(response *domain.ProfitMatrixResponse) []*matrixCsvRow {
	rows := []*matrixCsvRow{}
	for _, matrixRow := range response.Matrix {
		for _, cell := range matrixRow {
			rows = append(rows, &matrixCsvRow{
				ScenarioYield: cell.ScenarioYield.StringFixed(1),
				ScenarioPrice: cell.ScenarioPrice.StringFixed(2),
				GrossRevenue:  cell.GrossRevenue.StringFixed(2),
				TotalCost:     cell.TotalCost.StringFixed(2),
				BaseIndemnity: cell.BaseIndemnity.StringFixed(2),
				ScoIndemnity:  cell.ScoIndemnity.StringFixed(2),
				EcoIndemnity:  cell.EcoIndemnity.StringFixed(2),
				PremiumCost:   cell.PremiumCost.StringFixed(2),
				NetProfit:     cell.NetProfit.StringFixed(2),
			})
		}
	}
	return rows
}
