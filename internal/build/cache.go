// Package build holds the steps after code generation: the compile cache
// and the host C toolchain runner.
package build

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// codegenVersion is bumped when the generated code format changes.
// This ensures stale cached outputs are regenerated.
const codegenVersion = "v1"

const schema = `CREATE TABLE IF NOT EXISTS outputs (
	key     TEXT PRIMARY KEY,
	source  TEXT NOT NULL,
	output  TEXT NOT NULL
)`

// Cache stores generated C keyed by a hash of the source file's base name
// and contents, the runtime header name, and the generator version. The
// base name is part of the key because the generated prelude names it.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the cache database at path.
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache %s: %w", path, err)
	}
	return &Cache{db: db}, nil
}

// Lookup returns the cached output for source read from file, if any.
func (c *Cache) Lookup(file, source, header string) (string, bool, error) {
	var output string
	err := c.db.QueryRow(`SELECT output FROM outputs WHERE key = ?`, computeKey(file, source, header)).Scan(&output)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading cache: %w", err)
	}
	return output, true, nil
}

// Store records the output generated for source read from file.
func (c *Cache) Store(file, source, header, output string) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO outputs (key, source, output) VALUES (?, ?, ?)`,
		computeKey(file, source, header), source, output)
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// computeKey generates a deterministic cache key.
func computeKey(file, source, header string) string {
	h := sha256.New()
	h.Write([]byte(filepath.Base(file)))
	h.Write([]byte("\x00"))
	h.Write([]byte(source))
	h.Write([]byte("\x00"))
	h.Write([]byte(header))
	h.Write([]byte("\x00"))
	h.Write([]byte(codegenVersion))
	return hex.EncodeToString(h.Sum(nil))
}
