package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// listFarms backs the farm pickers on the dashboards.
func (m ApiHandler) listFarms(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid business id: %w", err), c, 400)
		return
	}

	farms, err := m.ProfitMatrixService.FarmRepository.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list farms: %w", err), c)
		return
	}

	c.JSON(200, gin.H{"farms": farms})
}
