package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/types"
)

type stubEvaluator struct {
	name types.ModuleName
}

func (e *stubEvaluator) ModuleName() types.ModuleName { return e.name }

func (e *stubEvaluator) Recompute(ctx context.Context, clusterID uuid.UUID) (*types.ModuleCompletion, error) {
	return &types.ModuleCompletion{ModuleName: e.name, ClusterID: clusterID}, nil
}

func TestEvaluatorSetRejectsDuplicateRegistration(t *testing.T) {
	set := NewEvaluatorSet(newTestLogger())

	if err := set.Register(&stubEvaluator{name: types.ModuleLoanSetting}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := set.Register(&stubEvaluator{name: types.ModuleLoanSetting}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestEvaluatorSetRejectsUnknownModuleName(t *testing.T) {
	set := NewEvaluatorSet(newTestLogger())

	if err := set.Register(&stubEvaluator{name: "Mystery Setting"}); err == nil {
		t.Fatal("expected unknown module name to fail registration")
	}
	if err := set.Register(nil); err == nil {
		t.Fatal("expected nil evaluator to fail registration")
	}
}

func TestEvaluatorSetRecomputeUnregisteredModule(t *testing.T) {
	set := NewEvaluatorSet(newTestLogger())

	_, err := set.Recompute(context.Background(), types.ModuleHRSetting, uuid.New())
	assertAPIErrCode(t, err, apierr.CodeNotFound)
}

func TestEvaluatorSetDispatchesByModule(t *testing.T) {
	set := NewEvaluatorSet(newTestLogger())
	if err := set.Register(&stubEvaluator{name: types.ModuleVendorSetting}); err != nil {
		t.Fatalf("register: %v", err)
	}

	clusterID := uuid.New()
	row, err := set.Recompute(context.Background(), types.ModuleVendorSetting, clusterID)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if row.ModuleName != types.ModuleVendorSetting || row.ClusterID != clusterID {
		t.Fatalf("wrong evaluator dispatched: %+v", row)
	}

	names := set.ModuleNames()
	if len(names) != 1 || names[0] != types.ModuleVendorSetting {
		t.Fatalf("unexpected registered names: %v", names)
	}
}
