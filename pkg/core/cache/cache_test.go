package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New(DefaultConfig())

	c.Set("euro", 42)
	v, ok := c.Get("euro")
	if !ok || v != 42 {
		t.Errorf("Get() = %v, %v, want 42, true", v, ok)
	}

	if _, ok := c.Get("dollar"); ok {
		t.Error("Get() of a missing key should miss")
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 || rate != 50 {
		t.Errorf("Stats() = %d, %d, %v", hits, misses, rate)
	}
}

func TestCache_Expiration(t *testing.T) {
	c := New(Config{MaxItems: 10})
	c.SetWithTTL("short", "v", time.Nanosecond)
	c.SetWithTTL("forever", "v", 0)

	time.Sleep(time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expired entry should not be returned")
	}
	if _, ok := c.Get("forever"); !ok {
		t.Error("entry without TTL should never expire")
	}
}

func TestCache_EvictsOldest(t *testing.T) {
	c := New(Config{MaxItems: 3})
	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
		time.Sleep(time.Millisecond)
	}
	c.Set("k3", 3)

	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3", c.Size())
	}
	if _, ok := c.Get("k0"); ok {
		t.Error("the oldest entry should have been evicted")
	}
	if _, ok := c.Get("k3"); !ok {
		t.Error("the newest entry must be present")
	}
}
