package session

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestMemoryStoreCreatesOnFirstUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Get(ctx, "u1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Get before Update: err = %v, want ErrSessionNotFound", err)
	}

	err := store.Update(ctx, "u1", func(s *UserSession) error {
		s.DailyGoal = 2000
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	sess, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get after Update: %v", err)
	}
	if sess.DailyGoal != 2000 {
		t.Errorf("DailyGoal = %d, want 2000", sess.DailyGoal)
	}
}

func TestMemoryStoreCounts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, id := range []string{"a", "b", "c"} {
		_ = store.Update(ctx, id, func(s *UserSession) error { return nil })
	}
	_ = store.Update(ctx, "b", func(s *UserSession) error {
		s.Append(NewLoggedFoodItem(Draft{Name: "рис", Calories: 130}))
		return nil
	})

	if n, _ := store.Count(ctx); n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
	if n, _ := store.ActiveCount(ctx); n != 1 {
		t.Errorf("ActiveCount = %d, want 1", n)
	}
}

func TestMemoryStoreConcurrentUpdatesSerialize(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update(ctx, "u1", func(s *UserSession) error {
				s.Consumed++
				return nil
			})
		}()
	}
	wg.Wait()

	sess, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Consumed != workers {
		t.Errorf("Consumed = %d, want %d: updates must not interleave", sess.Consumed, workers)
	}
}

func TestMemoryStoreActiveCountDuringUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = store.Update(ctx, "u1", func(s *UserSession) error {
				s.Consumed++
				return nil
			})
		}
	}()

	// reads must serialize against in-flight updates (run with -race)
	for i := 0; i < 200; i++ {
		if _, err := store.ActiveCount(ctx); err != nil {
			t.Fatal(err)
		}
	}
	<-done

	if n, _ := store.ActiveCount(ctx); n != 1 {
		t.Errorf("ActiveCount = %d, want 1", n)
	}
}

func TestMemoryStoreEach(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, id := range []string{"a", "b"} {
		_ = store.Update(ctx, id, func(s *UserSession) error {
			s.Consumed = 100
			return nil
		})
	}

	err := store.Each(ctx, func(s *UserSession) { s.ClearDay() })
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := store.ActiveCount(ctx); n != 0 {
		t.Errorf("ActiveCount after reset = %d, want 0", n)
	}
}

func TestMemoryStoreClosed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Close()

	if err := store.Update(ctx, "u1", func(s *UserSession) error { return nil }); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("Update on closed store: err = %v, want ErrStoreClosed", err)
	}
	if _, err := store.Get(ctx, "u1"); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("Get on closed store: err = %v, want ErrStoreClosed", err)
	}
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Update(ctx, "u1", func(s *UserSession) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Errorf("Update with cancelled ctx: err = %v, want context.Canceled", err)
	}
}
