package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/contractors/internal/app/controllers"
)

// SetupRouter registers every API route under /api
func SetupRouter(
	router *gin.Engine,
	contractorController *controllers.ContractorController,
	statsController *controllers.StatsController,
	healthController *controllers.HealthController,
) {
	api := router.Group("/api")

	contractors := api.Group("/contractors")
	{
		contractors.GET("", contractorController.ListContractors)
		contractors.GET("/:id", contractorController.GetContractorDetail)
	}

	api.GET("/departments", contractorController.ListDepartments)
	api.GET("/stats", statsController.GetStats)
	api.GET("/health", healthController.Health)
}
