package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/deppfellow/items-api/internal/model"
)

func TestItemRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	first := repo.Create(ctx, "Pen", "Blue ink")
	second := repo.Create(ctx, "Pencil", "HB")

	if first.ID != 1 {
		t.Fatalf("expected first id 1; got %d", first.ID)
	}
	if second.ID <= first.ID {
		t.Fatalf("expected increasing ids; got %d then %d", first.ID, second.ID)
	}
}

func TestItemRepository_IDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	a := repo.Create(ctx, "a", "a")
	b := repo.Create(ctx, "b", "b")
	if _, err := repo.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	c := repo.Create(ctx, "c", "c")
	if c.ID != 3 {
		t.Fatalf("expected id 3 after deletes; got %d", c.ID)
	}
}

func TestItemRepository_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	created := repo.Create(ctx, "Pen", "Blue ink")

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *got != *created {
		t.Fatalf("expected %+v; got %+v", *created, *got)
	}
}

func TestItemRepository_UpdateReplacesBothFields(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	created := repo.Create(ctx, "Pen", "Blue ink")

	updated, err := repo.Update(ctx, created.ID, "Pencil", "HB")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := model.Item{ID: created.ID, Name: "Pencil", Description: "HB"}
	if *updated != want {
		t.Fatalf("expected %+v; got %+v", want, *updated)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *got != want {
		t.Fatalf("expected stored %+v; got %+v", want, *got)
	}
}

func TestItemRepository_DeleteReturnsPreviousStateAndRemoves(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	created := repo.Create(ctx, "Pen", "Blue ink")
	if _, err := repo.Update(ctx, created.ID, "Pencil", "HB"); err != nil {
		t.Fatalf("Update: %v", err)
	}

	deleted, err := repo.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	want := model.Item{ID: created.ID, Name: "Pencil", Description: "HB"}
	if *deleted != want {
		t.Fatalf("expected deleted %+v; got %+v", want, *deleted)
	}

	if _, err := repo.Get(ctx, created.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete; got %v", err)
	}
	if repo.Len(ctx) != 0 {
		t.Fatalf("expected empty repository; got %d", repo.Len(ctx))
	}
}

func TestItemRepository_MissesReturnNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	repo.Create(ctx, "Pen", "Blue ink")

	if _, err := repo.Get(ctx, 99); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("Get: expected ErrItemNotFound; got %v", err)
	}
	if _, err := repo.Update(ctx, 99, "x", "y"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("Update: expected ErrItemNotFound; got %v", err)
	}
	if _, err := repo.Delete(ctx, 99); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("Delete: expected ErrItemNotFound; got %v", err)
	}
	if repo.Len(ctx) != 1 {
		t.Fatalf("expected misses to leave the store unchanged; got %d items", repo.Len(ctx))
	}
}

func TestItemRepository_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	if items := repo.List(ctx); items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil list; got %#v", items)
	}

	repo.Create(ctx, "a", "a")
	b := repo.Create(ctx, "b", "b")
	repo.Create(ctx, "c", "c")
	if _, err := repo.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	items := repo.List(ctx)
	if len(items) != 2 || items[0].Name != "a" || items[1].Name != "c" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestItemRepository_ReturnedItemsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	created := repo.Create(ctx, "Pen", "Blue ink")

	created.Name = "mutated"
	items := repo.List(ctx)
	items[0].Description = "mutated"

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Pen" || got.Description != "Blue ink" {
		t.Fatalf("store state leaked through returned values: %+v", got)
	}
}

func TestItemRepository_ConcurrentCreatesYieldUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	const workers = 16
	const perWorker = 50

	var wg sync.WaitGroup
	ids := make(chan int, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- repo.Create(ctx, "n", "d").ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, workers*perWorker)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker || repo.Len(ctx) != workers*perWorker {
		t.Fatalf("expected %d items; got %d ids, %d stored", workers*perWorker, len(seen), repo.Len(ctx))
	}
}
