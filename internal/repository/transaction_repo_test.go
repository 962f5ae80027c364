package repository

import (
	"context"
	"testing"
	"time"

	"skiresort/internal/domain"
)

func newTransactionRepo(t *testing.T) *TransactionRepository {
	t.Helper()
	repo := NewTransactionRepository(newTestDB(t))
	if err := repo.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return repo
}

func TestTransactionAppendAndListKeepInsertionOrder(t *testing.T) {
	repo := newTransactionRepo(t)
	ctx := context.Background()
	when := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	entries := []*domain.Transaction{
		{Reference: "01AR0001", Username: "alice", Kind: domain.KindBooking, Amount: 50, Time: when},
		{Reference: "01AR0002", Username: "alice", Kind: domain.KindCancelBooking, Amount: -50, Time: when.Add(time.Hour)},
		{Reference: "01AR0003", Username: "bob", Kind: domain.KindLesson, Amount: 30, Time: when},
	}
	for _, e := range entries {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
		if e.ID == 0 {
			t.Fatal("expected assigned entry id")
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	if all[0].Kind != domain.KindBooking || all[1].Kind != domain.KindCancelBooking {
		t.Fatal("expected entries in insertion order")
	}

	mine, err := repo.ListFor(ctx, "alice")
	if err != nil {
		t.Fatalf("ListFor returned error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 entries for alice, got %d", len(mine))
	}
}

func TestTransactionReferenceMustBeUnique(t *testing.T) {
	repo := newTransactionRepo(t)
	ctx := context.Background()
	when := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	if err := repo.Append(ctx, &domain.Transaction{Reference: "01AR0001", Username: "alice", Kind: domain.KindBooking, Amount: 50, Time: when}); err != nil {
		t.Fatalf("first append returned error: %v", err)
	}

	err := repo.Append(ctx, &domain.Transaction{Reference: "01AR0001", Username: "bob", Kind: domain.KindLesson, Amount: 30, Time: when})
	if err == nil {
		t.Fatal("expected duplicate reference to be rejected")
	}
}
