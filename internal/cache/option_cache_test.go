package cache

import (
	"context"
	"sync"
	"testing"
)

func TestOptionCacheCopies(t *testing.T) {
	ctx := context.Background()
	c := NewOptionCache()

	in := []byte(`"a"`)
	c.SetOptions(ctx, map[string][]byte{"rate": in})
	in[1] = 'z'

	got, _ := c.GetOptions(ctx, "rate", "missing")
	if string(got["rate"]) != `"a"` {
		t.Errorf("stored value aliased caller slice: %s", got["rate"])
	}
	if _, ok := got["missing"]; ok {
		t.Error("missing name must be absent")
	}

	got["rate"][1] = 'y'
	again, _ := c.GetOptions(ctx, "rate")
	if string(again["rate"]) != `"a"` {
		t.Errorf("returned value aliased storage: %s", again["rate"])
	}
}

func TestOptionCacheConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	c := NewOptionCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v := []byte{byte('a' + n%26)}
			c.SetOptions(ctx, map[string][]byte{"x": v, "y": v})
			c.GetOptions(ctx, "x", "y")
		}(i)
	}
	wg.Wait()

	got, _ := c.GetOptions(ctx, "x", "y")
	if string(got["x"]) != string(got["y"]) {
		t.Errorf("slots written by one call diverged: %s %s", got["x"], got["y"])
	}
}
