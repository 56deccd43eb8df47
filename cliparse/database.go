package cliparse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Database drivers, named as registered with database/sql
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	sqlitePrefix   = "sqlite:///"
	defaultDBFile  = "leads.db"
	sqliteDSNFlags = "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite"
)

var ErrUnsupportedDatabase = errors.New("unsupported database URL")

// Database is a ready-to-open connection target
type Database struct {
	Driver string
	DSN    string
	// Path is the absolute file path for sqlite targets, empty otherwise
	Path string
}

// ResolveDatabase turns the operator supplied URL into a connection target.
//
//   - sqlite:///relative/path.db resolves against rootDir
//   - sqlite:////absolute/path.db is used as is
//   - postgres:// and postgresql:// URLs are passed through unmodified
//   - an empty URL falls back to instanceDir/leads.db
//
// Parent directories of sqlite files, and instanceDir itself, are created.
func ResolveDatabase(rawURL, rootDir, instanceDir string) (Database, error) {
	if instanceDir != "" {
		if err := os.MkdirAll(instanceDir, 0o755); err != nil {
			return Database{}, fmt.Errorf("failed to create instance directory: %w", err)
		}
	}

	rawURL = strings.TrimSpace(rawURL)

	switch {
	case rawURL == "":
		return sqliteTarget(filepath.Join(instanceDir, defaultDBFile))

	case strings.HasPrefix(rawURL, sqlitePrefix):
		path := strings.TrimPrefix(rawURL, sqlitePrefix)
		if path == "" {
			return Database{}, fmt.Errorf("%w: missing sqlite file path", ErrUnsupportedDatabase)
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootDir, path)
		}
		return sqliteTarget(path)

	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return Database{Driver: DriverPostgres, DSN: rawURL}, nil
	}

	scheme, _, found := strings.Cut(rawURL, "://")
	if !found {
		scheme = rawURL
	}
	return Database{}, fmt.Errorf("%w: scheme %q", ErrUnsupportedDatabase, scheme)
}

func sqliteTarget(path string) (Database, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Database{}, fmt.Errorf("failed to resolve sqlite path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return Database{}, fmt.Errorf("failed to create database directory: %w", err)
	}
	return Database{
		Driver: DriverSQLite,
		DSN:    "file:" + abs + sqliteDSNFlags,
		Path:   abs,
	}, nil
}
