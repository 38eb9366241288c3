package api

import (
	"errors"
	"fmt"

	"github.com/jdrittgers/business-app-sub007/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) profitMatrix(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid business id: %w", err), c, 400)
		return
	}
	farmID, err := uuid.Parse(c.Param("farmId"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid farm id: %w", err), c, 400)
		return
	}

	response, err := m.ProfitMatrixService.ComputeProfitMatrix(c.Request.Context(), farmID, businessID)
	if errors.Is(err, domain.ErrFarmNotFound) {
		returnErrorJsonCode(err, c, 404)
		return
	} else if errors.Is(err, domain.ErrNoPriceBasis) {
		returnErrorJsonCode(err, c, 400)
		return
	} else if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute profit matrix: %w", err), c)
		return
	}

	c.JSON(200, response)
}
