package store_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"depotlog/internal/store"
)

// fakeSource keeps rows in order of insertion, like a table read back with
// ORDER BY rowid. listHold, when set, blocks List so a test can observe the
// optimistic state before the refetch lands.
type fakeSource struct {
	mu        sync.Mutex
	rows      []string
	insertErr error
	listHold  chan struct{}
}

func (s *fakeSource) List() ([]string, error) {
	if s.listHold != nil {
		<-s.listHold
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.rows...), nil
}

func (s *fakeSource) Insert(v string) (string, error) {
	if s.insertErr != nil {
		return "", s.insertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, v)
	return v, nil
}

func (s *fakeSource) Update(v string) (string, error) { return v, nil }

func (s *fakeSource) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.rows[:0]
	for _, r := range s.rows {
		if r != key {
			kept = append(kept, r)
		}
	}
	s.rows = kept
	return nil
}

func self(s string) string { return s }

func waitSnapshot(t *testing.T, ch <-chan []string) []string {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot delivered")
		return nil
	}
}

func TestCreateIsVisibleBeforeRefetch(t *testing.T) {
	src := &fakeSource{listHold: make(chan struct{})}
	col := store.NewCollection("test", src, self, true)
	defer col.Close()

	if _, err := col.Create("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := col.Create("b"); err != nil {
		t.Fatal(err)
	}

	// Refetch is still blocked, so these are the optimistic patches:
	// prepend puts the newest first.
	got := col.Items()
	if len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Fatalf("optimistic state: want [b a], got %v", got)
	}
	close(src.listHold) // unblock the reconciler so it can shut down
}

func TestRefetchReplacesOptimisticState(t *testing.T) {
	src := &fakeSource{listHold: make(chan struct{})}
	col := store.NewCollection("test", src, self, true)
	defer col.Close()

	ch := make(chan []string, 4)
	cancel := col.Subscribe(func(items []string) { ch <- items })
	defer cancel()

	col.Create("a")
	col.Create("b")
	close(src.listHold) // let the reconciler through

	snap := waitSnapshot(t, ch)
	// The source keeps insertion order, so the confirmed snapshot is [a b]
	// even though the optimistic view was [b a].
	if len(snap) != 2 || snap[0] != "a" || snap[1] != "b" {
		t.Fatalf("confirmed snapshot: want [a b], got %v", snap)
	}
	for i := 0; i < 10; i++ {
		items := col.Items()
		if len(items) == 2 && items[0] == "a" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("local state never converged: %v", col.Items())
}

func TestCreateErrorLeavesStateAlone(t *testing.T) {
	src := &fakeSource{insertErr: errors.New("boom")}
	col := store.NewCollection("test", src, self, false)
	defer col.Close()

	if _, err := col.Create("a"); err == nil {
		t.Fatal("want insert error")
	}
	if got := col.Items(); len(got) != 0 {
		t.Fatalf("failed insert must not be patched in, got %v", got)
	}
}

func TestRemoveFiltersLocally(t *testing.T) {
	src := &fakeSource{rows: []string{"a", "b", "c"}}
	col := store.NewCollection("test", src, self, false)
	defer col.Close()

	if _, err := col.FetchAll(); err != nil {
		t.Fatal(err)
	}
	if err := col.Remove("b"); err != nil {
		t.Fatal(err)
	}
	got := col.Items()
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("want [a c], got %v", got)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	src := &fakeSource{}
	col := store.NewCollection("test", src, self, false)
	defer col.Close()

	chA := make(chan []string, 4)
	chB := make(chan []string, 4)
	cancelA := col.Subscribe(func(items []string) { chA <- items })
	cancelB := col.Subscribe(func(items []string) { chB <- items })
	defer cancelB()

	cancelA()
	col.Create("x")

	// B gets the refreshed snapshot; by the time it arrives A would have
	// been called too, had it still been registered.
	waitSnapshot(t, chB)
	select {
	case snap := <-chA:
		t.Fatalf("cancelled subscriber still got %v", snap)
	default:
	}
}

func TestReplaceNotifiesSubscribers(t *testing.T) {
	src := &fakeSource{}
	col := store.NewCollection("test", src, self, false)
	defer col.Close()

	ch := make(chan []string, 1)
	cancel := col.Subscribe(func(items []string) { ch <- items })
	defer cancel()

	col.Replace([]string{"mock"})
	snap := waitSnapshot(t, ch)
	if len(snap) != 1 || snap[0] != "mock" {
		t.Fatalf("want [mock], got %v", snap)
	}
}

func TestInvalidateCoalescesAndCloseIsIdempotent(t *testing.T) {
	src := &fakeSource{}
	col := store.NewCollection("test", src, self, false)

	// Must never block, however many signals are queued.
	for i := 0; i < 100; i++ {
		col.Invalidate()
	}

	col.Close()
	col.Close()
	col.Invalidate() // harmless after close
}
