package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jpals/localmem/internal/repository"
)

// collection is a file-backed, insertion-ordered map of JSON documents.
// The whole collection is loaded once at construction; after that the
// in-memory index is the source of truth and every inserting, replacing, or
// removing call rewrites the full file before returning. A save failure
// aborts the in-memory change so index and file stay in lockstep.
type collection[T any] struct {
	path string
	id   func(*T) string

	mu    sync.RWMutex
	items map[string]*T
	order []string
}

func newCollection[T any](path string, id func(*T) string) (*collection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	c := &collection[T]{path: path, id: id, items: map[string]*T{}}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

// load fails softly only when the file doesn't exist yet. Any other read or
// parse failure is fatal: the store must not start on partial data.
func (c *collection[T]) load() error {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.path, err)
	}

	var list []*T
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parsing %s: %w", c.path, err)
	}
	for _, item := range list {
		id := c.id(item)
		if _, ok := c.items[id]; !ok {
			c.order = append(c.order, id)
		}
		c.items[id] = item
	}
	return nil
}

// save serializes the full collection. Callers must hold the write lock.
func (c *collection[T]) save() error {
	list := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		list = append(list, c.items[id])
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.path, err)
	}
	data = append(data, '\n')
	if err := writeFileAtomic(c.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", c.path, err)
	}
	return nil
}

func (c *collection[T]) Get(id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return item, nil
}

func (c *collection[T]) Put(item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.id(item)
	prev, existed := c.items[id]
	c.items[id] = item
	if !existed {
		c.order = append(c.order, id)
	}

	if err := c.save(); err != nil {
		if existed {
			c.items[id] = prev
		} else {
			delete(c.items, id)
			c.order = c.order[:len(c.order)-1]
		}
		return err
	}
	return nil
}

// Delete reports whether the id was present. A no-op delete does not write.
func (c *collection[T]) Delete(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		return false, nil
	}

	oldOrder := c.order
	newOrder := make([]string, 0, len(oldOrder)-1)
	for _, existing := range oldOrder {
		if existing != id {
			newOrder = append(newOrder, existing)
		}
	}
	delete(c.items, id)
	c.order = newOrder

	if err := c.save(); err != nil {
		c.items[id] = item
		c.order = oldOrder
		return false, err
	}
	return true, nil
}

func (c *collection[T]) List() ([]*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		list = append(list, c.items[id])
	}
	return list, nil
}
