package db

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migration is one versioned schema change
type Migration struct {
	Version      int
	Name         string
	UpSQL        string
	Dependencies []int
}

var (
	migrationFileRegex = regexp.MustCompile(`^(\d{3})_([a-zA-Z0-9_-]+)\.sql$`)
	upMarkerRegex      = regexp.MustCompile(`^--\s*\+migrate\s+Up\s*$`)
	dependsRegex       = regexp.MustCompile(`^--\s*\+migrate\s+Depends:\s*(.*)$`)
)

// Migrate applies the journal's embedded migrations that have not run yet
func (db *DB) Migrate() error {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		return err
	}
	return db.MigrateFS(sub)
}

// MigrateFS applies pending migrations found at the root of fsys, in version
// order, each in its own transaction together with its schema_migrations row.
func (db *DB) MigrateFS(fsys fs.FS) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema table: %w", err)
	}

	migrations, err := LoadMigrations(fsys)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	applied, err := db.appliedVersions()
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	maxApplied := 0
	for v := range applied {
		if v > maxApplied {
			maxApplied = v
		}
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if m.Version < maxApplied {
			return fmt.Errorf("cannot apply migration %d: version %d is already applied (migrations must be applied in order)", m.Version, maxApplied)
		}
		for _, dep := range m.Dependencies {
			if !applied[dep] {
				return fmt.Errorf("migration %d depends on version %d which has not been applied", m.Version, dep)
			}
		}

		err := db.WithTransaction(func(tx *Tx) error {
			if _, err := tx.Exec(m.UpSQL); err != nil {
				return fmt.Errorf("failed to execute SQL: %w", err)
			}
			if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.Version); err != nil {
				return fmt.Errorf("failed to record migration: %w", err)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.Version, err)
		}
		applied[m.Version] = true
	}

	return nil
}

// CurrentVersion returns the highest applied migration version, 0 if none
func (db *DB) CurrentVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			return 0, nil
		}
		return 0, err
	}
	return version, nil
}

func (db *DB) appliedVersions() (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// LoadMigrations parses every NNN_name.sql file at the root of fsys and
// returns them sorted by version. Versions must run 1..n without gaps and
// dependencies must point at earlier versions.
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !migrationFileRegex.MatchString(entry.Name()) {
			continue
		}
		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file: %w", err)
		}
		m, err := ParseMigration(entry.Name(), string(content))
		if err != nil {
			return nil, err
		}
		migrations = append(migrations, *m)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for i, m := range migrations {
		if m.Version != i+1 {
			if i > 0 && m.Version == migrations[i-1].Version {
				return nil, fmt.Errorf("duplicate migration version: %d", m.Version)
			}
			return nil, fmt.Errorf("gap in migration versions: expected %d, found %d", i+1, m.Version)
		}
		for _, dep := range m.Dependencies {
			if dep >= m.Version || dep < 1 {
				return nil, fmt.Errorf("migration %d cannot depend on version %d", m.Version, dep)
			}
		}
	}

	return migrations, nil
}

// ParseMigration parses one migration file. SQL starts after the
// "-- +migrate Up" marker and any "-- +migrate Depends: NNN ..." lines.
func ParseMigration(filename, content string) (*Migration, error) {
	base := path.Base(filename)
	matches := migrationFileRegex.FindStringSubmatch(base)
	if matches == nil {
		return nil, fmt.Errorf("invalid migration filename format: %s (expected NNN_name.sql)", base)
	}
	version, _ := strconv.Atoi(matches[1])

	lines := strings.Split(content, "\n")
	up := -1
	for i, line := range lines {
		if upMarkerRegex.MatchString(strings.TrimSpace(line)) {
			up = i
			break
		}
	}
	if up < 0 {
		return nil, fmt.Errorf("missing '-- +migrate Up' marker in migration file: %s", base)
	}

	var deps []int
	var body []string
	for _, line := range lines[up+1:] {
		trimmed := strings.TrimSpace(line)
		if m := dependsRegex.FindStringSubmatch(trimmed); m != nil && len(body) == 0 {
			fields := strings.Fields(m[1])
			if len(fields) == 0 {
				return nil, fmt.Errorf("empty dependency list in migration file: %s", base)
			}
			for _, f := range fields {
				dep, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("invalid dependency version '%s' in migration file: %s", f, base)
				}
				deps = append(deps, dep)
			}
			continue
		}
		body = append(body, line)
	}

	sql := strings.TrimSpace(strings.Join(body, "\n"))
	if sql == "" {
		return nil, fmt.Errorf("migration file contains no SQL statements: %s", base)
	}

	return &Migration{
		Version:      version,
		Name:         matches[2],
		UpSQL:        sql,
		Dependencies: deps,
	}, nil
}
