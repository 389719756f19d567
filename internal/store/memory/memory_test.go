package memory

import (
	"context"
	"testing"
	"time"

	"khata/internal/core"
)

func tx(paise int64, merchant string, ts time.Time) core.Transaction {
	return core.Transaction{
		Amount:    core.Money{Paise: paise},
		Merchant:  merchant,
		Type:      core.Debit,
		Timestamp: ts.UnixMilli(),
	}
}

func TestInsertAssignsIDs(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now()

	id1, err := s.Insert(ctx, tx(100, "Zomato", now))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id2, err := s.Insert(ctx, tx(200, "Uber", now))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id1 == id2 {
		t.Fatalf("ids must be unique, got %d twice", id1)
	}

	n, err := s.Count(ctx)
	if err != nil || n != 2 {
		t.Fatalf("Count = %d, %v; want 2", n, err)
	}
}

func TestInsertRejectsInvalid(t *testing.T) {
	s := New()
	if _, err := s.Insert(context.Background(), core.Transaction{}); err == nil {
		t.Fatal("expected validation error for zero transaction")
	}
}

func TestDelete(t *testing.T) {
	s := New()
	ctx := context.Background()
	id, _ := s.Insert(ctx, tx(100, "Zomato", time.Now()))

	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, id); err == nil {
		t.Fatal("expected error deleting missing id")
	}
	n, _ := s.Count(ctx)
	if n != 0 {
		t.Fatalf("Count = %d after delete, want 0", n)
	}
}

func TestListRange(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	s.Insert(ctx, tx(100, "before", base.Add(-time.Hour)))
	s.Insert(ctx, tx(200, "inside", base.Add(time.Hour)))
	s.Insert(ctx, tx(300, "after", base.Add(48*time.Hour)))

	got, err := s.ListRange(ctx, base, base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("ListRange: %v", err)
	}
	if len(got) != 1 || got[0].Merchant != "inside" {
		t.Fatalf("ListRange = %+v, want single 'inside' entry", got)
	}
}

func TestBudgetDefault(t *testing.T) {
	s := New()
	ctx := context.Background()

	b, err := s.Budget(ctx)
	if err != nil {
		t.Fatalf("Budget: %v", err)
	}
	if b != core.DefaultBudget {
		t.Fatalf("Budget = %+v, want default %+v", b, core.DefaultBudget)
	}

	if err := s.SetBudget(ctx, core.Money{Paise: 1000000}); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	b, _ = s.Budget(ctx)
	if b.Paise != 1000000 {
		t.Fatalf("Budget = %d paise, want 1000000", b.Paise)
	}

	if err := s.SetBudget(ctx, core.Money{Paise: -5}); err == nil {
		t.Fatal("expected error for negative budget")
	}
}
