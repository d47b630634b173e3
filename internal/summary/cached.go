package summary

import (
	"context"
	"encoding/json"
	"os"

	"gomate/internal/cache"
)

// Cached memoizes a Backend by the exact input text. Within process
// lifetime an input is summarized at most once; with a file path the
// memo also survives restarts.
type Cached struct {
	backend  Backend
	cache    *cache.LRU
	filePath string
}

// NewCached wraps backend with an LRU memo of the given size. filePath
// may be empty to disable persistence.
func NewCached(backend Backend, size int, filePath string) *Cached {
	c := &Cached{
		backend:  backend,
		cache:    cache.NewLRU(size, 0),
		filePath: filePath,
	}
	if filePath != "" {
		c.load()
	}
	return c
}

// Summarize returns the memoized summary for text, calling the backend
// only on a miss.
func (c *Cached) Summarize(ctx context.Context, text string) (string, error) {
	key := cache.HashKey(text)
	if val, ok := c.cache.Get(key); ok {
		if s, ok := val.(string); ok {
			return s, nil
		}
	}

	out, err := c.backend.Summarize(ctx, text)
	if err != nil {
		return "", err
	}
	c.cache.Set(key, out)
	c.save()
	return out, nil
}

func (c *Cached) load() {
	f, err := os.Open(c.filePath)
	if err != nil {
		return // missing file is a cold cache
	}
	defer f.Close()

	var dump map[string]cache.Entry
	if err := json.NewDecoder(f).Decode(&dump); err == nil {
		c.cache.Restore(dump)
	}
}

// save persists the memo with an atomic write. Persistence is best
// effort; a failure here never fails the summarize call.
func (c *Cached) save() {
	if c.filePath == "" {
		return
	}
	tmp := c.filePath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return
	}
	if err := json.NewEncoder(f).Encode(c.cache.Dump()); err != nil {
		f.Close()
		os.Remove(tmp)
		return
	}
	f.Close()
	os.Rename(tmp, c.filePath)
}
