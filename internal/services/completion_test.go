package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/types"
)

func assertAPIErrCode(t *testing.T, err error, wantCode string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", wantCode)
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apierr.Error, got %T: %v", err, err)
	}
	if ae.Code != wantCode {
		t.Fatalf("expected code %s, got %s (%v)", wantCode, ae.Code, err)
	}
}

func TestCompletionUpsertRejectsOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clusterID := uuid.New()

	cases := []struct {
		name    string
		percent int
	}{
		{"above_range", 150},
		{"below_range", -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.completion.Upsert(ctx, CompletionUpsert{
				ModuleName:      types.ModuleLoanSetting,
				ClusterID:       clusterID,
				Completed:       true,
				ProgressPercent: tc.percent,
			})
			assertAPIErrCode(t, err, apierr.CodeValidation)
		})
	}

	// Rejection means rejection: nothing may have been written.
	rows, err := env.repos.registry.GetByClusterID(ctx, nil, clusterID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows after rejected upserts, got %d", len(rows))
	}
}

func TestCompletionUpsertRejectsUnknownModule(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.completion.Upsert(context.Background(), CompletionUpsert{
		ModuleName:      types.ModuleName("Made Up Setting"),
		ClusterID:       uuid.New(),
		ProgressPercent: 50,
	})
	assertAPIErrCode(t, err, apierr.CodeValidation)
}

func TestCompletionUpsertRequiresCluster(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.completion.Upsert(context.Background(), CompletionUpsert{
		ModuleName:      types.ModuleLoanSetting,
		ProgressPercent: 50,
	})
	assertAPIErrCode(t, err, apierr.CodeValidation)
}

func TestCompletionUpsertLastWriterWins(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clusterID := uuid.New()

	for _, percent := range []int{100, 40} {
		if _, err := env.completion.Upsert(ctx, CompletionUpsert{
			ModuleName:      types.ModuleLoanSetting,
			ClusterID:       clusterID,
			Completed:       percent == 100,
			ProgressPercent: percent,
			Category:        "Loan",
			IconName:        "loan",
		}); err != nil {
			t.Fatalf("upsert %d: %v", percent, err)
		}
	}

	rows, err := env.completion.GetForCluster(ctx, clusterID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].ProgressPercent != 40 || rows[0].Completed {
		t.Fatalf("expected last writer's values (40, false), got (%d, %v)", rows[0].ProgressPercent, rows[0].Completed)
	}
}
