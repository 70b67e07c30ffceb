package http

import (
	"errors"
	"io"
	"log"
	"net/http"

	"strategy-commander/internal/config"
	"strategy-commander/internal/features/strategy/application"
	"strategy-commander/internal/features/strategy/domain"

	"github.com/gin-gonic/gin"
)

// StrategyHandler holds the pipeline service and app config service.
type StrategyHandler struct {
	pipelineService  application.PipelineService
	appConfigService config.AppConfigService
}

// NewStrategyHandler creates a new StrategyHandler.
func NewStrategyHandler(pipelineService application.PipelineService, appConfigService config.AppConfigService) *StrategyHandler {
	return &StrategyHandler{
		pipelineService:  pipelineService,
		appConfigService: appConfigService,
	}
}

// RunStrategyHandler handles the request to run the full workflow.
// The product name is optional; the configured default applies when
// the body omits it.
func (h *StrategyHandler) RunStrategyHandler(c *gin.Context) {
	var req domain.StrategyRequest

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appConfig, err := h.appConfigService.LoadAppConfig()
	if err != nil {
		log.Println("[ERROR] Failed to load app config:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load app config: " + err.Error()})
		return
	}

	report, err := h.pipelineService.Run(c.Request.Context(), req.ProductName, appConfig)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to run strategy workflow: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
