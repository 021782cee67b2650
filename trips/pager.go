package trips

import "fmt"

// PageSize is the number of rows returned per Page call.
const PageSize = 5

// Page returns up to PageSize rows of t starting at cursor, in table order.
// next is always cursor+PageSize, so paging past the end yields empty pages
// rather than an error. The caller owns the cursor between calls.
func Page(t *Table, cursor int) (rows []Record, next int, err error) {
	if cursor < 0 {
		return nil, cursor, fmt.Errorf("%w: %d", ErrInvalidCursor, cursor)
	}
	next = cursor + PageSize
	n := t.Len()
	if cursor >= n {
		return []Record{}, next, nil
	}
	end := min(next, n)
	rows = make([]Record, 0, end-cursor)
	for i := cursor; i < end; i++ {
		rows = append(rows, t.At(i))
	}
	return rows, next, nil
}
