package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/academica/registrar/internal/pkg/apperrors"
	"github.com/academica/registrar/internal/pkg/logger"
)

// jsonCollection is a JSON-file-backed collection of one entity type. The
// whole collection lives in memory and is mirrored to the backing file on
// every mutation. The identifier is read through the extractor supplied at
// construction, so entities need no common interface and no reflection.
//
// The collection is not safe for concurrent use; the application is
// single-user and callers are expected to serialize access.
type jsonCollection[T any] struct {
	path   string
	entity string
	idOf   func(T) string
	items  []T
}

// newJSONCollection creates the collection and performs the initial load.
// A missing file leaves the collection empty; the file is created on the
// first save. A file that exists but cannot be parsed is a fatal error.
func newJSONCollection[T any](path, entity string, idOf func(T) string) (*jsonCollection[T], error) {
	c := &jsonCollection[T]{
		path:   path,
		entity: entity,
		idOf:   idOf,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewDataOperationError(
			fmt.Sprintf("failed to create data directory for %s", path), err)
	}

	if err := c.load(); err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Str("entity", entity).Int("count", len(c.items)).
		Msg("Collection loaded")
	return c, nil
}

// load reads the backing file into memory, if it exists.
func (c *jsonCollection[T]) load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return apperrors.NewDataOperationError(
			fmt.Sprintf("failed to read %s", c.path), err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &c.items); err != nil {
		return apperrors.NewDataOperationError(
			fmt.Sprintf("failed to parse %s", c.path), err)
	}
	return nil
}

// save serializes the full collection and replaces the backing file. The
// write goes to a temp file in the same directory followed by a rename, so
// a crash mid-write leaves the previous file version intact.
func (c *jsonCollection[T]) save() error {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return apperrors.NewDataOperationError(
			fmt.Sprintf("failed to serialize %s records", c.entity), err)
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return apperrors.NewDataOperationError(
			fmt.Sprintf("failed to create temp file in %s", dir), err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return apperrors.NewDataOperationError(
			fmt.Sprintf("failed to write %s", c.path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return apperrors.NewDataOperationError(
			fmt.Sprintf("failed to write %s", c.path), err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return apperrors.NewDataOperationError(
			fmt.Sprintf("failed to replace %s", c.path), err)
	}
	return nil
}

// all returns the records in insertion order. The slice is a copy; the
// elements are shared.
func (c *jsonCollection[T]) all() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// get returns the record with the given identifier.
func (c *jsonCollection[T]) get(id string) (T, error) {
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, apperrors.NewNotFoundError(c.entity, id)
}

// add appends the record and rewrites the file.
func (c *jsonCollection[T]) add(item T) error {
	c.items = append(c.items, item)
	if err := c.save(); err != nil {
		// Keep memory consistent with the file on failed persists.
		c.items = c.items[:len(c.items)-1]
		return err
	}
	return nil
}

// update replaces the stored record with the same identifier wholesale.
func (c *jsonCollection[T]) update(item T) error {
	id := c.idOf(item)
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return c.save()
		}
	}
	return apperrors.NewNotFoundError(c.entity, id)
}

// delete removes the record with the given identifier and rewrites the file.
func (c *jsonCollection[T]) delete(id string) error {
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.save()
		}
	}
	return apperrors.NewNotFoundError(c.entity, id)
}
