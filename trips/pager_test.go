package trips

import (
	"errors"
	"fmt"
	"testing"
)

func tableOf(t *testing.T, n int) *Table {
	t.Helper()
	records := make([]Record, n)
	for i := range records {
		records[i] = tripAt(t, fmt.Sprintf("2017-01-01 %02d:00:00", i%24))
	}
	return NewTable(records)
}

func TestPageWalksSevenRows(t *testing.T) {
	table := tableOf(t, 7)
	steps := []struct {
		cursor, rows, next int
	}{
		{0, 5, 5},
		{5, 2, 10},
		{10, 0, 15},
	}
	for _, s := range steps {
		rows, next, err := Page(table, s.cursor)
		if err != nil {
			t.Fatalf("page(%d): %v", s.cursor, err)
		}
		if len(rows) != s.rows || next != s.next {
			t.Fatalf("page(%d) = %d rows next %d, want %d rows next %d", s.cursor, len(rows), next, s.rows, s.next)
		}
	}

	rows, _, _ := Page(table, 5)
	if rows[0].StartHour != 5 || rows[1].StartHour != 6 {
		t.Fatalf("page rows out of order: %d %d", rows[0].StartHour, rows[1].StartHour)
	}
}

func TestPageRowCountInvariant(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 6, 12} {
		table := tableOf(t, n)
		for cursor := 0; cursor <= n+PageSize*2; cursor++ {
			rows, next, err := Page(table, cursor)
			if err != nil {
				t.Fatalf("n=%d cursor=%d: %v", n, cursor, err)
			}
			want := min(PageSize, max(0, n-cursor))
			if len(rows) != want || next != cursor+PageSize {
				t.Fatalf("n=%d cursor=%d: got %d rows next %d", n, cursor, len(rows), next)
			}
		}
	}
}

func TestPageNegativeCursor(t *testing.T) {
	_, _, err := Page(tableOf(t, 3), -1)
	if !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor, got %v", err)
	}
}
