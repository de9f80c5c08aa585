package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/fundable/internal/common"
	"github.com/ternarybob/fundable/internal/engine"
	"github.com/ternarybob/fundable/internal/models"
)

// StageHandler serves GET /api/stages
type StageHandler struct {
	registry *engine.Registry
	logger   arbor.ILogger
}

// NewStageHandler creates a stage handler over the shared registry
func NewStageHandler(registry *engine.Registry) *StageHandler {
	return &StageHandler{
		registry: registry,
		logger:   common.GetLogger(),
	}
}

// ListStagesHandler returns the registered stage profiles in ascending order
func (h *StageHandler) ListStagesHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	profiles := h.registry.Profiles()
	payload := make([]models.StageProfilePayload, 0, len(profiles))
	for _, p := range profiles {
		payload = append(payload, models.NewStageProfilePayload(p))
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"stages": payload,
	})
}
