package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/veloraops/backoffice-backend/internal/types"
)

func TestTemplateNameUniqueness(t *testing.T) {
	db := newTestDB(t)
	repo := NewChecklistTemplateRepo(db, newTestLogger())
	ctx := context.Background()

	first := &types.ChecklistTemplate{
		ID:               uuid.New(),
		Name:             "Primary Location Check",
		Status:           types.TemplateStatusActive,
		CompletionStatus: types.TemplateCompletionPending,
	}
	if err := repo.Create(ctx, nil, first); err != nil {
		t.Fatalf("first create: %v", err)
	}

	dup := &types.ChecklistTemplate{
		ID:               uuid.New(),
		Name:             "Primary Location Check",
		Status:           types.TemplateStatusActive,
		CompletionStatus: types.TemplateCompletionPending,
	}
	if err := repo.Create(ctx, nil, dup); err == nil {
		t.Fatal("expected unique constraint violation on duplicate name")
	}

	count, err := repo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 template persisted, got %d", count)
	}
}

func TestTemplateListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewChecklistTemplateRepo(db, newTestLogger())
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	names := []string{"oldest", "middle", "newest"}
	for i, name := range names {
		row := &types.ChecklistTemplate{
			ID:               uuid.New(),
			Name:             name,
			Status:           types.TemplateStatusActive,
			CompletionStatus: types.TemplateCompletionPending,
			CreatedAt:        base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, nil, row); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	rows, err := repo.ListAll(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(rows))
	}
	if rows[0].Name != "newest" || rows[2].Name != "oldest" {
		t.Fatalf("expected newest-first ordering, got %s..%s", rows[0].Name, rows[2].Name)
	}
}

func TestTemplateDeleteRemovesRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewChecklistTemplateRepo(db, newTestLogger())
	ctx := context.Background()

	row := &types.ChecklistTemplate{
		ID:               uuid.New(),
		Name:             "to-delete",
		Status:           types.TemplateStatusActive,
		CompletionStatus: types.TemplateCompletionPending,
	}
	if err := repo.Create(ctx, nil, row); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, nil, row.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.GetByID(ctx, nil, row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("expected template gone after delete")
	}
}

func TestTemplateItemsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewChecklistTemplateRepo(db, newTestLogger())
	ctx := context.Background()

	row := &types.ChecklistTemplate{
		ID:   uuid.New(),
		Name: "with-items",
		Items: []types.ChecklistItem{
			{ItemName: "A", Required: true, Order: 1},
			{ItemName: "B", Required: false, Order: 2},
		},
		Status:           types.TemplateStatusActive,
		CompletionStatus: types.TemplateCompletionPending,
	}
	if err := repo.Create(ctx, nil, row); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, nil, row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || len(got.Items) != 2 {
		t.Fatalf("expected 2 items back, got %+v", got)
	}
	if got.Items[0].ItemName != "A" || !got.Items[0].Required || got.Items[0].Order != 1 {
		t.Fatalf("item A did not round-trip: %+v", got.Items[0])
	}
}
