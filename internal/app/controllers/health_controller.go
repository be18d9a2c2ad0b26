package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/records/internal/app/models/dto"
)

// Pinger is implemented by both store gateways.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports store reachability
type HealthController struct {
	postgres Pinger
	mongo    Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(postgres, mongo Pinger) *HealthController {
	return &HealthController{postgres: postgres, mongo: mongo}
}

// GetHealth pings both stores
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) GetHealth(ctx *gin.Context) {
	resp := dto.HealthResponse{
		Status:   "ok",
		Postgres: pingStatus(ctx, c.postgres),
		Mongo:    pingStatus(ctx, c.mongo),
	}

	status := http.StatusOK
	if resp.Postgres != "ok" || resp.Mongo != "ok" {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, resp)
}

func pingStatus(ctx context.Context, p Pinger) string {
	if err := p.Ping(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}
