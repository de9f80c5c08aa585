package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/fundable/internal/common"
	"github.com/ternarybob/fundable/internal/engine"
	"github.com/ternarybob/fundable/internal/models"
)

// EvaluateHandler serves POST /api/evaluate
type EvaluateHandler struct {
	evaluator *engine.Evaluator
	validate  *validator.Validate
	logger    arbor.ILogger
}

// NewEvaluateHandler creates an evaluate handler over the shared evaluator
func NewEvaluateHandler(evaluator *engine.Evaluator) *EvaluateHandler {
	return &EvaluateHandler{
		evaluator: evaluator,
		validate:  validator.New(),
		logger:    common.GetLogger(),
	}
}

// EvaluateHandler decodes and validates the request, runs the evaluation,
// and writes the assessment. Validation failures are client errors; the
// engine itself cannot fail on valid input.
func (h *EvaluateHandler) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req models.EvaluationRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.Debug().Err(err).Msg("Evaluation request failed validation")
		WriteError(w, http.StatusUnprocessableEntity, "validation failed: "+err.Error())
		return
	}

	assessment, err := h.evaluator.Evaluate(req.ToEngineInput())
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			WriteError(w, http.StatusUnprocessableEntity, verr.Error())
			return
		}
		h.logger.Error().Err(err).Msg("Evaluation failed")
		WriteError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}

	assessmentID := common.NewAssessmentID()

	h.logger.Info().
		Str("assessment_id", assessmentID).
		Str("stage", string(assessment.Stage)).
		Str("verdict", string(assessment.Verdict)).
		Str("strength", string(assessment.Strength)).
		Float64("weighted_score", assessment.WeightedScore).
		Int("critical_failures", len(assessment.CriticalFailures)).
		Msg("Startup evaluated")

	WriteJSON(w, http.StatusOK, models.NewEvaluationResponse(assessmentID, assessment))
}
