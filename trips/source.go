package trips

import (
	"path/filepath"
	"strings"
)

// RawTable is the untyped content of one source: a header and its data rows.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Source is a readable tabular trip source for one catalog entry.
type Source interface {
	Name() string
	Read() (RawTable, error)
}

// DefaultSQLiteTable is the table read from SQLite sources.
const DefaultSQLiteTable = "trips"

// OpenSource picks a Source implementation from the identifier's extension.
// Relative identifiers are resolved against dataDir.
func OpenSource(dataDir, id, sqliteTable string) Source {
	path := id
	if !filepath.IsAbs(path) && dataDir != "" {
		path = filepath.Join(dataDir, path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		if sqliteTable == "" {
			sqliteTable = DefaultSQLiteTable
		}
		return NewSQLiteSource(path, sqliteTable)
	default:
		return NewCSVSource(path)
	}
}
