package text

import (
	"errors"
	"sync"
	"testing"
)

func TestCacheGetOrCreate(t *testing.T) {
	c := NewCache[string, int](0, nil)

	calls := 0
	create := func() (int, error) {
		calls++
		return 42, nil
	}
	for range 3 {
		v, err := c.GetOrCreate("k", create)
		if err != nil || v != 42 {
			t.Fatalf("GetOrCreate() = %v, %v, want 42", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if v, ok := c.Get("k"); !ok || v != 42 {
		t.Errorf("Get() = %v, %v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) = true")
	}
}

func TestCacheCreateErrorNotCached(t *testing.T) {
	c := NewCache[string, int](0, nil)
	boom := errors.New("boom")

	if _, err := c.GetOrCreate("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("GetOrCreate() error = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failed create, want 0", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []string
	c := NewCache(2, func(k string, _ int) { evicted = append(evicted, k) })
	value := func(v int) func() (int, error) { return func() (int, error) { return v, nil } }

	_, _ = c.GetOrCreate("a", value(1))
	_, _ = c.GetOrCreate("b", value(2))
	c.Get("a")
	_, _ = c.GetOrCreate("c", value(3))

	if len(evicted) != 1 || evicted[0] != "b" {
		t.Fatalf("evicted = %v, want [b]", evicted)
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("recently used entry was evicted")
	}

	c.Clear()
	if c.Len() != 0 || len(evicted) != 3 {
		t.Errorf("after Clear: Len() = %d, evicted = %v", c.Len(), evicted)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache[int, int](8, nil)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				_, _ = c.GetOrCreate((g*100+i)%16, func() (int, error) { return i, nil })
			}
		}()
	}
	wg.Wait()
	if c.Len() > 9 {
		t.Errorf("Len() = %d, soft limit 8 exceeded by more than one", c.Len())
	}
}
