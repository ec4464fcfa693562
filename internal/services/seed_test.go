package services

import (
	"context"
	"testing"
)

func TestSeedIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	log := newTestLogger()
	seed := NewSeedService(env.db, log, env.repos.category, env.repos.template)
	ctx := context.Background()

	first, err := seed.Seed(ctx)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if first.Categories != 16 {
		t.Fatalf("expected 16 seeded categories, got %d", first.Categories)
	}
	if first.Templates != 2 {
		t.Fatalf("expected 2 sample templates, got %d", first.Templates)
	}

	second, err := seed.Seed(ctx)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if second.Categories != first.Categories || second.Templates != first.Templates {
		t.Fatalf("second seed changed counts: %+v -> %+v", first, second)
	}
}

func TestSeedKeepsManualEdits(t *testing.T) {
	env := newTestEnv(t)
	log := newTestLogger()
	seed := NewSeedService(env.db, log, env.repos.category, env.repos.template)
	categories := NewCategoryService(env.db, log, env.repos.category)
	ctx := context.Background()

	if _, err := seed.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// An admin retires a category; re-seeding must not resurrect it.
	inactive := false
	if _, err := categories.Upsert(ctx, CategoryUpsert{Title: "Dealer", IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := seed.Seed(ctx); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	row, err := env.repos.category.GetByTitle(ctx, nil, "Dealer")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row == nil || row.IsActive {
		t.Fatalf("expected Dealer to stay deactivated after re-seed, got %+v", row)
	}
}
