// -----------------------------------------------------------------------
// Last Modified: Tuesday, 1st September 2026 9:12:33 am
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package app

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/fundable/internal/common"
	"github.com/ternarybob/fundable/internal/engine"
	"github.com/ternarybob/fundable/internal/handlers"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	Registry  *engine.Registry
	Evaluator *engine.Evaluator

	APIHandler      *handlers.APIHandler
	EvaluateHandler *handlers.EvaluateHandler
	StageHandler    *handlers.StageHandler
}

// New creates the application, building the stage registry from config.
// An invalid stage profile is a fatal configuration error: the process must
// refuse to start rather than serve evaluations with broken weights.
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	registry, err := buildRegistry(config)
	if err != nil {
		return nil, fmt.Errorf("failed to build stage registry: %w", err)
	}

	evaluator := engine.NewEvaluator(registry)

	app := &App{
		Config:    config,
		Logger:    logger,
		Registry:  registry,
		Evaluator: evaluator,

		APIHandler:      handlers.NewAPIHandler(),
		EvaluateHandler: handlers.NewEvaluateHandler(evaluator),
		StageHandler:    handlers.NewStageHandler(registry),
	}

	logger.Info().
		Int("stages", len(registry.Profiles())).
		Msg("Evaluation engine initialized")

	return app, nil
}

// buildRegistry merges config overrides into the built-in stage table and
// validates the result
func buildRegistry(config *common.Config) (*engine.Registry, error) {
	profiles := engine.DefaultProfiles()

	for i := range profiles {
		override, ok := config.Engine.Stages[string(profiles[i].Stage)]
		if !ok {
			continue
		}
		for pillar, w := range override.Weights {
			profiles[i].Weights[engine.Pillar(pillar)] = w
		}
		for pillar, th := range override.Thresholds {
			profiles[i].Thresholds[engine.Pillar(pillar)] = th
		}
	}

	// Reject overrides that name stages the engine does not know
	for stage := range config.Engine.Stages {
		if _, known := knownStage(stage); !known {
			return nil, fmt.Errorf("config overrides unknown stage %q", stage)
		}
	}

	return engine.NewRegistry(profiles...)
}

func knownStage(name string) (engine.FundingStage, bool) {
	for _, stage := range engine.Stages {
		if string(stage) == name {
			return stage, true
		}
	}
	return "", false
}
