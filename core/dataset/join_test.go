package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusTable() *Table {
	t := NewTable("Row", "Article Id", "Reference Id", "Status")
	t.Append(Row{"Row": int64(1), "Article Id": "nyt-1", "Reference Id": "ref-1", "Status": "Accepted"})
	t.Append(Row{"Row": int64(2), "Article Id": "nyt-2", "Reference Id": "ref-2", "Status": "Rejected"})
	t.Append(Row{"Row": int64(3), "Article Id": "nyt-3", "Reference Id": "ref-9", "Status": nil})
	return t
}

func completedTable() *Table {
	t := NewTable("Reference Id", "Date Completed", "Reviewer")
	t.Append(Row{"Reference Id": "ref-1", "Date Completed": "2021-08-01", "Reviewer": "R. One"})
	t.Append(Row{"Reference Id": "ref-5", "Date Completed": "2021-08-03", "Reviewer": "R. Two"})
	return t
}

func TestOuterJoin(t *testing.T) {
	joined, err := OuterJoin(statusTable(), completedTable(), "Reference Id")
	require.NoError(t, err)

	// Left columns first, then right columns without the join column.
	assert.Equal(t, []string{
		"Row", "Article Id", "Reference Id", "Status", "Date Completed", "Reviewer",
	}, joined.Columns)
	require.Equal(t, 4, joined.Len())

	// Matched row merges both sides.
	assert.Equal(t, Row{
		"Row": int64(1), "Article Id": "nyt-1", "Reference Id": "ref-1",
		"Status": "Accepted", "Date Completed": "2021-08-01", "Reviewer": "R. One",
	}, joined.Rows[0])

	// Left rows without a match keep nil right-hand cells.
	assert.Equal(t, Row{
		"Row": int64(2), "Article Id": "nyt-2", "Reference Id": "ref-2",
		"Status": "Rejected", "Date Completed": nil, "Reviewer": nil,
	}, joined.Rows[1])
	assert.Equal(t, "ref-9", joined.Rows[2]["Reference Id"])

	// The unmatched right row survives with nil left-hand cells.
	assert.Equal(t, Row{
		"Row": nil, "Article Id": nil, "Reference Id": "ref-5",
		"Status": nil, "Date Completed": "2021-08-03", "Reviewer": "R. Two",
	}, joined.Rows[3])
}

func TestOuterJoin_DuplicateKeysMultiply(t *testing.T) {
	left := NewTable("Reference Id", "L")
	left.Append(Row{"Reference Id": "ref-1", "L": "a"})
	left.Append(Row{"Reference Id": "ref-1", "L": "b"})

	right := NewTable("Reference Id", "R")
	right.Append(Row{"Reference Id": "ref-1", "R": "x"})
	right.Append(Row{"Reference Id": "ref-1", "R": "y"})

	joined, err := OuterJoin(left, right, "Reference Id")
	require.NoError(t, err)

	// Each left occurrence pairs with each right occurrence, left-major.
	require.Equal(t, 4, joined.Len())
	assert.Equal(t, "a", joined.Rows[0]["L"])
	assert.Equal(t, "x", joined.Rows[0]["R"])
	assert.Equal(t, "a", joined.Rows[1]["L"])
	assert.Equal(t, "y", joined.Rows[1]["R"])
	assert.Equal(t, "b", joined.Rows[2]["L"])
	assert.Equal(t, "x", joined.Rows[2]["R"])
}

func TestOuterJoin_NilKeysNeverMatch(t *testing.T) {
	left := NewTable("Reference Id", "L")
	left.Append(Row{"Reference Id": nil, "L": "a"})

	right := NewTable("Reference Id", "R")
	right.Append(Row{"Reference Id": nil, "R": "x"})

	joined, err := OuterJoin(left, right, "Reference Id")
	require.NoError(t, err)

	// Both nil-keyed rows survive unmatched.
	require.Equal(t, 2, joined.Len())
	assert.Equal(t, Row{"Reference Id": nil, "L": "a", "R": nil}, joined.Rows[0])
	assert.Equal(t, Row{"Reference Id": nil, "L": nil, "R": "x"}, joined.Rows[1])
}

func TestOuterJoin_EmptySides(t *testing.T) {
	empty := NewTable("Reference Id", "L")

	joined, err := OuterJoin(empty, completedTable(), "Reference Id")
	require.NoError(t, err)
	require.Equal(t, 2, joined.Len())
	assert.Equal(t, "ref-1", joined.Rows[0]["Reference Id"])
	assert.Nil(t, joined.Rows[0]["L"])

	joined, err = OuterJoin(statusTable(), NewTable("Reference Id", "R"), "Reference Id")
	require.NoError(t, err)
	assert.Equal(t, 3, joined.Len())
}

func TestOuterJoin_Errors(t *testing.T) {
	t.Run("join column missing", func(t *testing.T) {
		left := NewTable("Other")
		_, err := OuterJoin(left, completedTable(), "Reference Id")
		assert.ErrorIs(t, err, ErrColumnMissing)

		_, err = OuterJoin(completedTable(), left, "Reference Id")
		assert.ErrorIs(t, err, ErrColumnMissing)
	})

	t.Run("colliding column names", func(t *testing.T) {
		left := NewTable("Reference Id", "Reviewer")
		_, err := OuterJoin(left, completedTable(), "Reference Id")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"Reviewer" exists in both`)
	})
}
