package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/types"
)

// CompletionEvaluator recomputes one module's registry row for a cluster from
// the module's own domain rows. Each evaluator owns exactly one ModuleName and
// writes only that key; a settings domain gets dashboard visibility by
// implementing this and registering itself in the EvaluatorSet.
type CompletionEvaluator interface {
	ModuleName() types.ModuleName
	Recompute(ctx context.Context, clusterID uuid.UUID) (*types.ModuleCompletion, error)
}

// EvaluatorSet is the registry of evaluators, keyed by module name.
type EvaluatorSet struct {
	log        *logger.Logger
	evaluators map[types.ModuleName]CompletionEvaluator
}

func NewEvaluatorSet(baseLog *logger.Logger) *EvaluatorSet {
	return &EvaluatorSet{
		log:        baseLog.With("service", "EvaluatorSet"),
		evaluators: map[types.ModuleName]CompletionEvaluator{},
	}
}

func (s *EvaluatorSet) Register(e CompletionEvaluator) error {
	if e == nil {
		return fmt.Errorf("nil evaluator")
	}
	name := e.ModuleName()
	if !name.Valid() {
		return fmt.Errorf("evaluator has unknown module name %q", name)
	}
	if _, exists := s.evaluators[name]; exists {
		return fmt.Errorf("evaluator for %q already registered", name)
	}
	s.evaluators[name] = e
	s.log.Info("Registered completion evaluator", "module_name", name)
	return nil
}

func (s *EvaluatorSet) Recompute(ctx context.Context, name types.ModuleName, clusterID uuid.UUID) (*types.ModuleCompletion, error) {
	e, ok := s.evaluators[name]
	if !ok {
		return nil, apierr.NotFound("no completion evaluator registered for %q", name)
	}
	return e.Recompute(ctx, clusterID)
}

func (s *EvaluatorSet) ModuleNames() []types.ModuleName {
	names := make([]types.ModuleName, 0, len(s.evaluators))
	for name := range s.evaluators {
		names = append(names, name)
	}
	return names
}
