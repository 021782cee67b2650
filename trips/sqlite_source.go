package trips

import (
	"database/sql"
	"fmt"
	"os"
	"regexp"

	_ "modernc.org/sqlite"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads every row of one table in a SQLite database file.
// Column names play the role of the CSV header.
type SQLiteSource struct {
	path  string
	table string
}

func NewSQLiteSource(path, table string) *SQLiteSource {
	return &SQLiteSource{path: path, table: table}
}

func (s *SQLiteSource) Name() string { return s.path + "#" + s.table }

func (s *SQLiteSource) Read() (RawTable, error) {
	if !tableNamePattern.MatchString(s.table) {
		return RawTable{}, fmt.Errorf("invalid sqlite table name %q", s.table)
	}
	// sql.Open would create a missing file; sources are read-only.
	if _, err := os.Stat(s.path); err != nil {
		return RawTable{}, fmt.Errorf("open sqlite %q: %w", s.path, err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return RawTable{}, fmt.Errorf("open sqlite %q: %w", s.path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT * FROM "` + s.table + `"`)
	if err != nil {
		return RawTable{}, fmt.Errorf("query %s: %w", s.Name(), err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return RawTable{}, fmt.Errorf("columns %s: %w", s.Name(), err)
	}

	out := RawTable{Header: header}
	cells := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range cells {
		dest[i] = &cells[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return RawTable{}, fmt.Errorf("scan %s row %d: %w", s.Name(), len(out.Rows)+1, err)
		}
		row := make([]string, len(cells))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			}
		}
		out.Rows = append(out.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return RawTable{}, fmt.Errorf("read %s: %w", s.Name(), err)
	}
	return out, nil
}
