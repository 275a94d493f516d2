package articles

import (
	"bytes"
	"io"
	"testing"

	"article-stream/core/dataset"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var combinedColumns = []string{"Row", "Article Id", "Reference Id", "Status", "Date Completed", "Reviewer"}

func writeRows(t *testing.T, file *excelize.File, sheet string, rows [][]any) {
	t.Helper()
	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &cells))
	}
}

// referenceWorkbook writes both editorial sheets into an in-memory xlsx:
// review_status with its title block and index column, date_completed
// with a plain first-row header.
func referenceWorkbook(t *testing.T) dataset.Opener {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()
	require.NoError(t, file.SetSheetName("Sheet1", "review_status"))
	_, err := file.NewSheet("date_completed")
	require.NoError(t, err)

	writeRows(t, file, "review_status", [][]any{
		{"Editorial review"},
		{},
		{nil, "Row", "Article Id", "Reference Id", "Status"},
		{0, 1, "nyt-1", "ref-1", "draft"},
		{1, 7, "nyt-1", "ref-2", "approved"},
		{2, 5, "nyt-2", "ref-3", "rejected"},
	})
	writeRows(t, file, "date_completed", [][]any{
		{"Reference Id", "Date Completed", "Reviewer"},
		{"ref-1", "2024-01-02", "Ada"},
		{"ref-2", "2024-02-05", "Grace"},
		{"ref-9", "2024-03-01", "Edsger"},
	})

	buf, err := file.WriteToBuffer()
	require.NoError(t, err)
	data := buf.Bytes()
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}

func TestWorkbookReference_Load(t *testing.T) {
	workbook := dataset.NewWorkbook("reference_data.xlsx", referenceWorkbook(t))
	defer workbook.Close()

	table, err := NewWorkbookReference(workbook).Load()
	require.NoError(t, err)

	assert.Equal(t, combinedColumns, table.Columns)
	require.Equal(t, 4, table.Len())

	assert.Equal(t, dataset.Row{
		"Row": int64(1), "Article Id": "nyt-1", "Reference Id": "ref-1",
		"Status": "draft", "Date Completed": "2024-01-02", "Reviewer": "Ada",
	}, table.Rows[0])

	// A status row without completion metadata keeps nil cells
	assert.Equal(t, dataset.Row{
		"Row": int64(5), "Article Id": "nyt-2", "Reference Id": "ref-3",
		"Status": "rejected", "Date Completed": nil, "Reviewer": nil,
	}, table.Rows[2])

	// Completion metadata without a status row lands after all status rows
	assert.Equal(t, dataset.Row{
		"Row": nil, "Article Id": nil, "Reference Id": "ref-9",
		"Status": nil, "Date Completed": "2024-03-01", "Reviewer": "Edsger",
	}, table.Rows[3])
}

func showColumns(names ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, name := range names {
		rows.AddRow(name, "varchar(64)", "YES", "", nil, "")
	}
	return rows
}

func TestDatabaseReference_Load(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `review_status`").
		WillReturnRows(showColumns("row", "article_id", "reference_id", "status"))
	mock.ExpectQuery("SELECT .+ FROM `review_status`").WillReturnRows(
		sqlmock.NewRows([]string{"row", "article_id", "reference_id", "status"}).
			AddRow(1, "nyt-1", "ref-1", "draft").
			AddRow(7, "nyt-1", "ref-2", "approved").
			AddRow(5, "nyt-2", "ref-3", " rejected "))

	mock.ExpectQuery("SHOW COLUMNS FROM `date_completed`").
		WillReturnRows(showColumns("reference_id", "date_completed", "reviewer"))
	mock.ExpectQuery("SELECT .+ FROM `date_completed`").WillReturnRows(
		sqlmock.NewRows([]string{"reference_id", "date_completed", "reviewer"}).
			AddRow("ref-1", "2024-01-02", "Ada").
			AddRow("ref-9", "2024-03-01", nil))

	table, err := NewDatabaseReference(db).Load()
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, combinedColumns, table.Columns)
	require.Equal(t, 4, table.Len())

	// Cells come out in the same shapes the workbook path produces
	assert.Equal(t, dataset.Row{
		"Row": int64(1), "Article Id": "nyt-1", "Reference Id": "ref-1",
		"Status": "draft", "Date Completed": "2024-01-02", "Reviewer": "Ada",
	}, table.Rows[0])
	assert.Equal(t, "rejected", table.Rows[2]["Status"])
	assert.Equal(t, dataset.Row{
		"Row": nil, "Article Id": nil, "Reference Id": "ref-9",
		"Status": nil, "Date Completed": "2024-03-01", "Reviewer": nil,
	}, table.Rows[3])
}

func TestDatabaseReference_MissingColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	// review_status lacks reference_id, so loading stops before any SELECT
	mock.ExpectQuery("SHOW COLUMNS FROM `review_status`").
		WillReturnRows(showColumns("row", "article_id", "status"))

	_, err := NewDatabaseReference(db).Load()

	var loadErr *dataset.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "database", loadErr.Source)
	assert.Equal(t, "review_status", loadErr.Sheet)
	assert.ErrorIs(t, err, dataset.ErrColumnMissing)
	assert.Contains(t, err.Error(), "reference_id")
}

func TestDatabaseReference_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `review_status`").
		WillReturnRows(showColumns("row", "article_id", "reference_id", "status"))
	mock.ExpectQuery("SELECT .+ FROM `review_status`").WillReturnError(assert.AnError)

	_, err := NewDatabaseReference(db).Load()

	var loadErr *dataset.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "database", loadErr.Source)
	assert.Equal(t, "review_status", loadErr.Sheet)
}
