package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ternarybob/fundable/internal/engine"
)

func newTestEvaluateHandler(t *testing.T) *EvaluateHandler {
	t.Helper()
	return NewEvaluateHandler(engine.NewEvaluator(engine.NewDefaultRegistry()))
}

// Helper function to execute an evaluation request
func executeEvaluateRequest(handler *EvaluateHandler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/evaluate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.EvaluateHandler(rec, req)
	return rec
}

func TestEvaluateHandler_Success(t *testing.T) {
	handler := newTestEvaluateHandler(t)

	body := `{
		"funding_stage": "seed",
		"pillar_scores": {
			"capital": 0.82,
			"advantage": 0.71,
			"market": 0.64,
			"people": 0.89
		},
		"metrics": {
			"runway_months": 18,
			"burn_multiple": 1.5,
			"net_dollar_retention_percent": 115
		}
	}`

	rec := executeEvaluateRequest(handler, "POST", body)

	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if resp["verdict"] != "PASS" {
		t.Errorf("Expected verdict PASS, got %v", resp["verdict"])
	}
	if resp["strength"] != "STRONG" {
		t.Errorf("Expected strength STRONG, got %v", resp["strength"])
	}
	id, _ := resp["assessment_id"].(string)
	if !strings.HasPrefix(id, "asmt_") {
		t.Errorf("Expected assessment_id with asmt_ prefix, got %q", id)
	}
	if _, ok := resp["weighted_score"].(float64); !ok {
		t.Errorf("Expected numeric weighted_score, got %v", resp["weighted_score"])
	}
}

func TestEvaluateHandler_CriticalFailure(t *testing.T) {
	handler := newTestEvaluateHandler(t)

	body := `{
		"funding_stage": "seed",
		"pillar_scores": {
			"capital": 0.9,
			"advantage": 0.9,
			"market": 0.9,
			"people": 0.9
		},
		"metrics": {
			"runway_months": 2
		}
	}`

	rec := executeEvaluateRequest(handler, "POST", body)

	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if resp["verdict"] != "FAIL" {
		t.Errorf("Expected verdict FAIL, got %v", resp["verdict"])
	}
	if resp["risk_level"] != "Critical Risk" {
		t.Errorf("Expected risk_level Critical Risk, got %v", resp["risk_level"])
	}
	failures, ok := resp["critical_failures"].([]interface{})
	if !ok || len(failures) != 1 {
		t.Errorf("Expected one critical failure, got %v", resp["critical_failures"])
	}
}

func TestEvaluateHandler_InvalidJSON(t *testing.T) {
	handler := newTestEvaluateHandler(t)

	rec := executeEvaluateRequest(handler, "POST", "{not json")

	if rec.Code != 400 {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestEvaluateHandler_UnknownField(t *testing.T) {
	handler := newTestEvaluateHandler(t)

	body := `{
		"funding_stage": "seed",
		"pillar_scores": {"capital": 0.5, "advantage": 0.5, "market": 0.5, "people": 0.5},
		"surprise": true
	}`

	rec := executeEvaluateRequest(handler, "POST", body)

	if rec.Code != 400 {
		t.Errorf("Expected status 400 for unknown field, got %d", rec.Code)
	}
}

func TestEvaluateHandler_ValidationFailure(t *testing.T) {
	handler := newTestEvaluateHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "unknown stage",
			body: `{"funding_stage": "series_z", "pillar_scores": {"capital": 0.5, "advantage": 0.5, "market": 0.5, "people": 0.5}}`,
		},
		{
			name: "missing stage",
			body: `{"pillar_scores": {"capital": 0.5, "advantage": 0.5, "market": 0.5, "people": 0.5}}`,
		},
		{
			name: "pillar score above range",
			body: `{"funding_stage": "seed", "pillar_scores": {"capital": 1.5, "advantage": 0.5, "market": 0.5, "people": 0.5}}`,
		},
		{
			name: "negative runway",
			body: `{"funding_stage": "seed", "pillar_scores": {"capital": 0.5, "advantage": 0.5, "market": 0.5, "people": 0.5}, "metrics": {"runway_months": -1}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := executeEvaluateRequest(handler, "POST", tt.body)
			if rec.Code != 422 {
				t.Errorf("Expected status 422, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestEvaluateHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestEvaluateHandler(t)

	rec := executeEvaluateRequest(handler, "GET", "")

	if rec.Code != 405 {
		t.Errorf("Expected status 405, got %d", rec.Code)
	}
}

func TestStageHandler_ListStages(t *testing.T) {
	handler := NewStageHandler(engine.NewDefaultRegistry())

	req := httptest.NewRequest("GET", "/api/stages", nil)
	rec := httptest.NewRecorder()
	handler.ListStagesHandler(rec, req)

	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Stages []struct {
			Stage      string             `json:"stage"`
			Weights    map[string]float64 `json:"weights"`
			Thresholds map[string]float64 `json:"thresholds"`
		} `json:"stages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if len(resp.Stages) != 5 {
		t.Fatalf("Expected 5 stages, got %d", len(resp.Stages))
	}
	if resp.Stages[0].Stage != "pre_seed" {
		t.Errorf("Expected pre_seed first, got %s", resp.Stages[0].Stage)
	}
	for _, s := range resp.Stages {
		if len(s.Weights) != 4 || len(s.Thresholds) != 4 {
			t.Errorf("Stage %s missing pillar entries", s.Stage)
		}
	}
}
