package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/types"
)

func createTestCluster(t *testing.T, env *testEnv, name string) *types.Cluster {
	t.Helper()
	row := &types.Cluster{
		ID:       uuid.New(),
		Name:     name,
		District: "Pune Rural",
		State:    "Maharashtra",
		IsActive: true,
	}
	if err := env.repos.cluster.Create(context.Background(), nil, row); err != nil {
		t.Fatalf("create cluster: %v", err)
	}
	return row
}

func registryRow(t *testing.T, env *testEnv, clusterID uuid.UUID) *types.ModuleCompletion {
	t.Helper()
	rows, err := env.repos.registry.GetByClusterID(context.Background(), nil, clusterID)
	if err != nil {
		t.Fatalf("registry read: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 registry row, got %d", len(rows))
	}
	return rows[0]
}

func TestLoanRuleLifecycleDrivesCompletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cluster := createTestCluster(t, env, "cluster-a")

	// Creating an active rule flips the cluster to complete.
	rule, err := env.loan.Create(ctx, LoanRuleCreate{
		ClusterID:       cluster.ID,
		Name:            "standard solar loan",
		InterestRate:    9.5,
		MaxTenureMonths: 60,
		MinAmount:       50000,
		MaxAmount:       500000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	row := registryRow(t, env, cluster.ID)
	if row.ModuleName != types.ModuleLoanSetting {
		t.Fatalf("expected Loan Setting row, got %s", row.ModuleName)
	}
	if !row.Completed || row.ProgressPercent != 100 {
		t.Fatalf("expected (true, 100) after active rule, got (%v, %d)", row.Completed, row.ProgressPercent)
	}

	// Deactivating the only rule flips it back.
	inactive := types.LoanRuleStatusInactive
	if _, err := env.loan.Update(ctx, rule.ID, LoanRuleUpdate{Status: &inactive}); err != nil {
		t.Fatalf("update: %v", err)
	}
	row = registryRow(t, env, cluster.ID)
	if row.Completed || row.ProgressPercent != 0 {
		t.Fatalf("expected (false, 0) after deactivation, got (%v, %d)", row.Completed, row.ProgressPercent)
	}

	// Reactivate, then delete: the cluster is re-evaluated against what
	// remains, so the row must transition back to incomplete, not vanish.
	active := types.LoanRuleStatusActive
	if _, err := env.loan.Update(ctx, rule.ID, LoanRuleUpdate{Status: &active}); err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if !registryRow(t, env, cluster.ID).Completed {
		t.Fatal("expected completed after reactivation")
	}
	if err := env.loan.Delete(ctx, rule.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	row = registryRow(t, env, cluster.ID)
	if row.Completed || row.ProgressPercent != 0 {
		t.Fatalf("expected (false, 0) after deleting last rule, got (%v, %d)", row.Completed, row.ProgressPercent)
	}
}

func TestLoanRuleCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cluster := createTestCluster(t, env, "cluster-b")

	cases := []struct {
		name     string
		in       LoanRuleCreate
		wantCode string
	}{
		{
			name:     "missing_cluster",
			in:       LoanRuleCreate{Name: "x"},
			wantCode: apierr.CodeValidation,
		},
		{
			name:     "unknown_cluster",
			in:       LoanRuleCreate{ClusterID: uuid.New(), Name: "x"},
			wantCode: apierr.CodeNotFound,
		},
		{
			name:     "missing_name",
			in:       LoanRuleCreate{ClusterID: cluster.ID},
			wantCode: apierr.CodeValidation,
		},
		{
			name:     "negative_rate",
			in:       LoanRuleCreate{ClusterID: cluster.ID, Name: "x", InterestRate: -1},
			wantCode: apierr.CodeValidation,
		},
		{
			name:     "bad_status",
			in:       LoanRuleCreate{ClusterID: cluster.ID, Name: "x", Status: "paused"},
			wantCode: apierr.CodeValidation,
		},
		{
			name:     "min_above_max",
			in:       LoanRuleCreate{ClusterID: cluster.ID, Name: "x", MinAmount: 10, MaxAmount: 5},
			wantCode: apierr.CodeValidation,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.loan.Create(ctx, tc.in)
			assertAPIErrCode(t, err, tc.wantCode)
		})
	}
}

func TestLoanRuleUpdateDeleteNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.loan.Update(ctx, uuid.New(), LoanRuleUpdate{})
	assertAPIErrCode(t, err, apierr.CodeNotFound)

	err = env.loan.Delete(ctx, uuid.New())
	assertAPIErrCode(t, err, apierr.CodeNotFound)
}

func TestLoanRuleManualRecompute(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cluster := createTestCluster(t, env, "cluster-c")

	// No rules yet: manual recompute writes an incomplete row rather than
	// leaving the cluster absent from the registry.
	row, err := env.loan.Recompute(ctx, cluster.ID)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if row.Completed || row.ProgressPercent != 0 {
		t.Fatalf("expected (false, 0) for empty cluster, got (%v, %d)", row.Completed, row.ProgressPercent)
	}
	if got := registryRow(t, env, cluster.ID); got.ModuleName != types.ModuleLoanSetting {
		t.Fatalf("expected persisted Loan Setting row, got %s", got.ModuleName)
	}
}
