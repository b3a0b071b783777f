package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	handler "atm-stream-generator/internal/handlers"
	"atm-stream-generator/internal/repository"
	"atm-stream-generator/internal/services/synthesis"
)

func RegisterRoutes(r *gin.Engine, repo *repository.PopulationRepository, engine *synthesis.Engine, seed int64) {
	genHandler := handler.NewGeneratorHandler(repo, engine, seed)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.GET("/stats", genHandler.Stats)

	// Transaction routes
	tx := api.Group("/transactions")
	tx.GET("/sample", genHandler.SampleTransaction)

	// Population routes
	api.GET("/atms", genHandler.ListATMs)
	api.GET("/customers", genHandler.ListCustomers)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
