package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *countingCounter) Increment(val ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	c.counts[val[0]]++
}

func (c *countingCounter) get(k string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[k]
}

func writeMenu(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	writeMenu(t, path, "items:\n  - title: A\n")

	store := menu.NewStore(nil)
	counter := &countingCounter{}
	var seen int
	r := New(path, store, WithCounter(counter), WithOnReload(func(b *menu.Builder) { seen = b.Len() }))

	require.NoError(t, r.Reload())
	assert.Equal(t, 1, store.Load().Len())
	assert.Equal(t, 1, seen)
	assert.Equal(t, 1, counter.get("success"))

	// a broken file keeps the current menu
	writeMenu(t, path, "items: [\n")
	assert.Error(t, r.Reload())
	assert.Equal(t, 1, store.Load().Len())
	assert.Equal(t, 1, counter.get("error"))
}

func TestRunPicksUpChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	writeMenu(t, path, "items:\n  - title: A\n")

	store := menu.NewStore(nil)
	r := New(path, store, WithDebounce(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	// give the watcher a moment to register
	time.Sleep(100 * time.Millisecond)
	writeMenu(t, path, "items:\n  - title: A\n  - title: B\n")

	require.Eventually(t, func() bool {
		return store.Load().Len() == 2
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestRunMissingDirectory(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "nope", "menu.yaml"), menu.NewStore(nil))
	assert.Error(t, r.Run(context.Background()))
}
