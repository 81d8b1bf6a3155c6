package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turbine-backtest/internal/api/models"
)

// PolicyHandler handles policy-related requests
type PolicyHandler struct{}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler() *PolicyHandler {
	return &PolicyHandler{}
}

// ListPolicies handles GET /api/v1/policies
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	policies := []models.PolicyInfo{
		{
			Name:        "scheduled",
			Description: "Calendar-based maintenance. Sends the vessel on a fixed day and month every year, regardless of turbine condition.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "day",
					Type:        "int",
					Description: "Calendar day of the visit (1-31)",
				},
				{
					Name:        "month",
					Type:        "int",
					Description: "Calendar month of the visit (1-12)",
				},
			},
		},
		{
			Name:        "condition",
			Description: "Condition monitoring. Sends the vessel as soon as cooling-system pressure falls to the threshold.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "threshold_bar",
					Type:        "float",
					Description: "Pressure threshold in bars that triggers a visit",
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"policies": policies})
}
