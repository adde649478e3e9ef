package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/interfaces/http/response"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/usecases"
)

// SweeperHandler exposes the expiration sweep over HTTP. The scheduler POSTs
// the root path; /trigger exists for manual runs and returns the same report.
type SweeperHandler struct {
	sweeperUsecase *usecases.SweeperUsecase
}

// NewSweeperHandler creates a new sweeper handler
func NewSweeperHandler(sweeperUsecase *usecases.SweeperUsecase) *SweeperHandler {
	return &SweeperHandler{sweeperUsecase: sweeperUsecase}
}

// RunSweep executes one expiration sweep
// POST / and POST /trigger
func (h *SweeperHandler) RunSweep(c *gin.Context) {
	report := h.sweeperUsecase.Sweep(c.Request.Context())
	response.Success(c, http.StatusOK, report)
}

// Health reports liveness without touching any record
// GET /health
func (h *SweeperHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
