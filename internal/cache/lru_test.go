package cache

import (
	"testing"
	"time"
)

func TestLRU_SetGet(t *testing.T) {
	c := NewLRU(2, 0)
	c.Set("a", 1)

	got, ok := c.Get("a")
	if !ok || got != 1 {
		t.Errorf("Get(a) = %v, %v; want 1, true", got, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Errorf("Get(missing) = hit, want miss")
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU(2, 0)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // refresh a
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Errorf("b survived eviction")
	}
	if _, ok := c.Get("a"); !ok {
		t.Errorf("recently used a was evicted")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLRU_TTLExpiry(t *testing.T) {
	c := NewLRU(4, time.Millisecond)
	c.Set("a", 1)
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Errorf("expired entry still served")
	}
}

func TestLRU_DumpRestore(t *testing.T) {
	c := NewLRU(4, 0)
	c.Set("a", "one")
	c.Set("b", "two")

	fresh := NewLRU(4, 0)
	fresh.Restore(c.Dump())

	for key, want := range map[string]string{"a": "one", "b": "two"} {
		got, ok := fresh.Get(key)
		if !ok || got != want {
			t.Errorf("restored Get(%s) = %v, %v; want %q, true", key, got, ok, want)
		}
	}
}

func TestHashKey(t *testing.T) {
	if HashKey("same") != HashKey("same") {
		t.Errorf("identical inputs hash differently")
	}
	if HashKey("one") == HashKey("two") {
		t.Errorf("distinct inputs collide")
	}
}
