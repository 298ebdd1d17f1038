// Package handlers contains the HTTP handlers of the evaluation service.
package handlers

import (
	"github.com/rollcv/rollcv/internal/config"
	"github.com/rollcv/rollcv/internal/logging"
	"github.com/rollcv/rollcv/internal/services"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger      *logging.Logger
	evalService *services.EvalService
}

// New creates a new handler instance
func New(logger *logging.Logger, evalCfg config.EvalConfig) *Handler {
	return &Handler{
		logger:      logger,
		evalService: services.NewEvalService(logger, evalCfg),
	}
}
