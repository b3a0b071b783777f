package handler

import (
	"net/http"
	"strconv"

	"atm-stream-generator/internal/repository"
	"atm-stream-generator/internal/services/synthesis"

	"github.com/gin-gonic/gin"
)

// GeneratorHandler serves the ops API: population introspection and
// on-demand sample transactions. Sampled records are returned to the
// caller only, never sent to the ingestion endpoint.
type GeneratorHandler struct {
	repo   *repository.PopulationRepository
	engine *synthesis.Engine
	seed   int64
}

func NewGeneratorHandler(repo *repository.PopulationRepository, engine *synthesis.Engine, seed int64) *GeneratorHandler {
	return &GeneratorHandler{repo: repo, engine: engine, seed: seed}
}

// SampleTransaction synthesizes one transaction and returns it.
func (h *GeneratorHandler) SampleTransaction(c *gin.Context) {
	tx := h.engine.Synthesize(h.repo.ATMs(), h.repo.Customers())
	c.JSON(http.StatusOK, tx)
}

// ListATMs returns up to ?limit ATM profiles (default 50).
func (h *GeneratorHandler) ListATMs(c *gin.Context) {
	atms := h.repo.ATMs()
	limit := parseLimit(c, len(atms))
	c.JSON(http.StatusOK, gin.H{
		"items": atms[:limit],
		"total": len(atms),
	})
}

// ListCustomers returns up to ?limit customer profiles (default 50).
func (h *GeneratorHandler) ListCustomers(c *gin.Context) {
	customers := h.repo.Customers()
	limit := parseLimit(c, len(customers))
	c.JSON(http.StatusOK, gin.H{
		"items": customers[:limit],
		"total": len(customers),
	})
}

// Stats reports population sizes and the seed in use.
func (h *GeneratorHandler) Stats(c *gin.Context) {
	atms, customers := h.repo.Counts()
	c.JSON(http.StatusOK, gin.H{
		"atm_count":      atms,
		"customer_count": customers,
		"seed":           h.seed,
	})
}

func parseLimit(c *gin.Context, total int) int {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > total {
		limit = total
	}
	return limit
}
