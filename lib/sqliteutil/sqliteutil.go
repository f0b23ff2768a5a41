package sqliteutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// OpenDB opens an sqlite database at the given path (or ":memory:"),
// creating parent directories as needed, and applies the given schema.
// Schemas are expected to be written with idempotent re-application in
// mind; "already exists" errors are ignored.
func OpenDB(schema, path string) (*sql.DB, error) {
	driver := "sqlite"
	if strings.HasPrefix(path, "libsql://") || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		driver = "libsql"
	} else if path != ":memory:" {
		err := os.MkdirAll(filepath.Dir(path), 0755)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		db.Close()
		return nil, err
	}
	return db, nil
}
