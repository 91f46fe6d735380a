package stops

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Fetcher provides the raw stop-area list. Satisfied by api.Client.
type Fetcher interface {
	StopAreas() ([]byte, error)
}

// Cache holds the locally persisted snapshot of all known stops.
//
// The on-disk file is rewritten when it is missing or older than
// maxAge. Staleness is checked once, at first load: the in-memory list
// is never reloaded within a process even if the file changes later.
// The file is shared by every invocation on the machine and is written
// without locking; the payload is small and changes about weekly, so
// last-writer-wins is acceptable.
type Cache struct {
	fetcher Fetcher
	file    string
	maxAge  time.Duration

	stops  []Stop
	loaded bool
}

// NewCache creates a stop cache backed by the given file.
func NewCache(fetcher Fetcher, file string, maxAge time.Duration) *Cache {
	return &Cache{fetcher: fetcher, file: file, maxAge: maxAge}
}

// EnsureLoaded makes sure the stop list is in memory, refreshing the
// cache file first if it is missing or stale. Calling it again in the
// same process is a no-op.
func (c *Cache) EnsureLoaded() error {
	if c.loaded {
		return nil
	}

	info, err := os.Stat(c.file)
	switch {
	case err == nil:
		if time.Since(info.ModTime()) > c.maxAge {
			log.Printf("stop cache %s is stale, refreshing", c.file)
			if err := c.fetchAndStore(); err != nil {
				return err
			}
		}
	case os.IsNotExist(err):
		log.Printf("stop cache %s missing, fetching", c.file)
		if err := c.fetchAndStore(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("failed to stat stop cache: %w", err)
	}

	data, err := os.ReadFile(c.file)
	if err != nil {
		return fmt.Errorf("failed to read stop cache: %w", err)
	}
	stops, err := parseStops(data)
	if err != nil {
		return err
	}

	c.stops = stops
	c.loaded = true
	return nil
}

// fetchAndStore downloads the full stop-area list and overwrites the
// cache file with the response body verbatim.
func (c *Cache) fetchAndStore() error {
	body, err := c.fetcher.StopAreas()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.file, body, 0644); err != nil {
		return fmt.Errorf("failed to write stop cache: %w", err)
	}
	return nil
}

// Stops returns the loaded stop list in provider order.
func (c *Cache) Stops() []Stop {
	return c.stops
}
