package services

import (
	"context"
	"testing"

	"github.com/veloraops/backoffice-backend/internal/apierr"
)

func newCategoryService(t *testing.T, env *testEnv) CategoryService {
	t.Helper()
	return NewCategoryService(env.db, newTestLogger(), env.repos.category)
}

func TestCategoryUpsertIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := newCategoryService(t, env)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, CategoryUpsert{Title: "Loan", IconName: "loan", IconBg: "#fff"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := svc.Upsert(ctx, CategoryUpsert{Title: "Loan", IconName: "loan-v2", IconBg: "#eee"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert created a second row: %s vs %s", second.ID, first.ID)
	}
	if second.IconName != "loan-v2" || second.IconBg != "#eee" {
		t.Fatalf("display fields not overwritten: %+v", second)
	}

	count, err := env.repos.category.Count(ctx, nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 category row, got %d", count)
	}
}

func TestCategoryUpsertCanDeactivate(t *testing.T) {
	env := newTestEnv(t)
	svc := newCategoryService(t, env)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, CategoryUpsert{Title: "Vendor"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	inactive := false
	row, err := svc.Upsert(ctx, CategoryUpsert{Title: "Vendor", IsActive: &inactive})
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if row.IsActive {
		t.Fatal("expected category to be deactivated")
	}

	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	for _, c := range active {
		if c.Title == "Vendor" {
			t.Fatal("deactivated category still listed as active")
		}
	}
}

func TestCategoryUpsertRequiresTitle(t *testing.T) {
	env := newTestEnv(t)
	svc := newCategoryService(t, env)

	_, err := svc.Upsert(context.Background(), CategoryUpsert{})
	assertAPIErrCode(t, err, apierr.CodeValidation)
}
