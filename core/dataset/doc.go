// Package dataset loads declared worksheets into in-memory tables and
// combines them relationally.
//
// It wraps excelize to turn xlsx worksheets into typed tables. A SheetSpec
// declares everything the parser needs to know up front: the worksheet name,
// where the header row sits, whether a leading index column should be
// discarded, and the columns with their types. Cells are whitespace-trimmed,
// blank cells become nil, and rows with no value in any declared column are
// dropped.
//
// # Workbook
//
// A Workbook opens its source lazily and at most once. Sheets parse on first
// request and are cached, so repeated loads of the same sheet never re-read
// the source. The source is anything that can hand over an xlsx byte stream:
// a file on disk or an object fetched from a bucket.
//
// # Joining
//
// OuterJoin combines two tables on a shared column the way a full outer join
// does: matched rows merge, unmatched rows from either side survive with nil
// cells for the columns of the absent side. Row order is the left table's
// order followed by the unmatched right rows.
//
// # Usage
//
//	wb := dataset.FileWorkbook("reference_data.xlsx")
//	defer wb.Close()
//
//	status, err := wb.LoadSheet(dataset.SheetSpec{
//	    Name:      "review_status",
//	    HeaderRow: 2,
//	    IndexCol:  true,
//	    Columns: []dataset.Column{
//	        {Name: "Row", Type: dataset.TypeInt},
//	        {Name: "Article Id", Type: dataset.TypeString},
//	    },
//	})
package dataset
