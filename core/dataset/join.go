package dataset

import (
	"fmt"
	"slices"
)

// OuterJoin combines left and right on the named column as a full outer
// join. Matched rows merge into one; a left row without a match keeps nil
// for the right-hand columns, and unmatched right rows are appended after
// all left rows with nil for the left-hand columns. The join column appears
// once, in its left-table position; nil join keys never match. Column names
// other than the join column must not collide between the two tables.
func OuterJoin(left, right *Table, on string) (*Table, error) {
	if !left.HasColumn(on) {
		return nil, fmt.Errorf("%w: join column %q in left table", ErrColumnMissing, on)
	}
	if !right.HasColumn(on) {
		return nil, fmt.Errorf("%w: join column %q in right table", ErrColumnMissing, on)
	}

	rightCols := make([]string, 0, len(right.Columns))
	for _, name := range right.Columns {
		if name == on {
			continue
		}
		if left.HasColumn(name) {
			return nil, fmt.Errorf("column %q exists in both tables", name)
		}
		rightCols = append(rightCols, name)
	}

	byKey := make(map[any][]int, right.Len())
	for i, row := range right.Rows {
		key := row[on]
		if key == nil {
			continue
		}
		byKey[key] = append(byKey[key], i)
	}

	out := NewTable(slices.Concat(left.Columns, rightCols)...)
	matched := make([]bool, right.Len())

	for _, lrow := range left.Rows {
		var matches []int
		if key := lrow[on]; key != nil {
			matches = byKey[key]
		}
		if len(matches) == 0 {
			out.Append(mergeRows(left.Columns, lrow, rightCols, nil))
			continue
		}
		for _, ri := range matches {
			matched[ri] = true
			out.Append(mergeRows(left.Columns, lrow, rightCols, right.Rows[ri]))
		}
	}

	for i, rrow := range right.Rows {
		if matched[i] {
			continue
		}
		row := mergeRows(left.Columns, nil, rightCols, rrow)
		row[on] = rrow[on]
		out.Append(row)
	}
	return out, nil
}

// mergeRows builds a joined row from the two sides. A nil side contributes
// nil cells for its columns.
func mergeRows(leftCols []string, lrow Row, rightCols []string, rrow Row) Row {
	row := make(Row, len(leftCols)+len(rightCols))
	for _, name := range leftCols {
		row[name] = lrow[name]
	}
	for _, name := range rightCols {
		row[name] = rrow[name]
	}
	return row
}
