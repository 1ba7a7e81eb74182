package pokemon

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"pokedex/pkg/models"
)

var ErrNotFound = errors.New("pokemon not found")

// Catalog is the read-only collection served by the API. It is built once at
// startup and shared by every request without locking; nothing mutates it
// after construction.
type Catalog struct {
	records []models.Pokemon
	path    string
	loadErr error

	// first raw sprites value, kept for /api/debug/sprites
	rawSprites    any
	hasRawSprites bool
}

// NewCatalog wraps already-normalized records.
func NewCatalog(records []models.Pokemon) *Catalog {
	return &Catalog{records: records}
}

// Load reads and normalizes the dataset at path. It always returns a usable
// catalog: when the source cannot be read the catalog is empty and LoadErr
// reports why.
func Load(path string, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("path", path))

	raw, err := readSourceSafe(path)
	if err != nil {
		logger.Error("pokemon data load failed, starting with an empty catalog", zap.Error(err))
		return &Catalog{path: path, loadErr: err}
	}

	rep := Normalize(raw)
	for _, issue := range rep.Issues {
		logger.Warn("pokemon entry degraded",
			zap.Int("index", issue.Index),
			zap.String("name", issue.Name),
			zap.String("field", issue.Field),
			zap.Error(issue.Err),
		)
	}
	logger.Info("pokemon data loaded",
		zap.Int("count", len(rep.Records)),
		zap.Int("issues", len(rep.Issues)),
	)

	c := &Catalog{records: rep.Records, path: path}
	if len(raw) > 0 {
		c.rawSprites, c.hasRawSprites = raw[0]["sprites"]
	}
	return c
}

func readSourceSafe(path string) (raw []models.RawRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			raw, err = nil, fmt.Errorf("unexpected error reading %s: %v", path, r)
		}
	}()
	return ReadSource(path)
}

func (c *Catalog) Len() int { return len(c.records) }

// All returns the records in load order. Callers must not modify the slice.
func (c *Catalog) All() []models.Pokemon { return c.records }

// Loaded reports whether the source was read successfully.
func (c *Catalog) Loaded() bool { return c.loadErr == nil }

func (c *Catalog) LoadErr() error { return c.loadErr }

func (c *Catalog) Path() string { return c.path }

// SourceExists reports whether the data file is currently present on disk.
func (c *Catalog) SourceExists() bool {
	if c.path == "" {
		return false
	}
	_, err := os.Stat(c.path)
	return err == nil
}

// First returns the first record, or nil for an empty catalog.
func (c *Catalog) First() *models.Pokemon {
	if len(c.records) == 0 {
		return nil
	}
	p := c.records[0]
	return &p
}

// RawFirstSprites returns the sprites value of the first source entry before
// normalization. ok is false when that entry had no sprites key.
func (c *Catalog) RawFirstSprites() (v any, ok bool) {
	return c.rawSprites, c.hasRawSprites
}

// FindByID returns the first record whose id equals id exactly.
func (c *Catalog) FindByID(id string) (*models.Pokemon, error) {
	for i := range c.records {
		if c.records[i].ID.String() == id {
			p := c.records[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}
