package articles

import (
	"context"
	"fmt"
	"io"
	"os"

	"article-stream/core/database"
	"article-stream/core/dataset"
	"article-stream/core/storage"
	"article-stream/feature/articles/models"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// referenceKey is the column the two editorial sheets are combined on.
const referenceKey = "Reference Id"

// reviewStatusSheet declares the first editorial sheet: a title block above
// the header, a discarded index column, and the review verdict per article.
var reviewStatusSheet = dataset.SheetSpec{
	Name:      "review_status",
	HeaderRow: 2,
	IndexCol:  true,
	Columns: []dataset.Column{
		{Name: "Row", Type: dataset.TypeInt},
		{Name: "Article Id", Type: dataset.TypeString},
		{Name: referenceKey, Type: dataset.TypeString},
		{Name: "Status", Type: dataset.TypeString},
	},
}

// dateCompletedSheet declares the second editorial sheet: completion
// metadata keyed by reference id, header on the first row.
var dateCompletedSheet = dataset.SheetSpec{
	Name:      "date_completed",
	HeaderRow: 0,
	Columns: []dataset.Column{
		{Name: referenceKey, Type: dataset.TypeString},
		{Name: "Date Completed", Type: dataset.TypeString},
		{Name: "Reviewer", Type: dataset.TypeString},
	},
}

// ReferenceLoader assembles the combined editorial reference table.
type ReferenceLoader interface {
	Load() (*dataset.Table, error)
}

// WorkbookReference reads the two editorial sheets from an xlsx workbook
// and combines them with a full outer join on the reference id.
type WorkbookReference struct {
	workbook *dataset.Workbook
}

// NewWorkbookReference creates a workbook-backed reference loader.
func NewWorkbookReference(workbook *dataset.Workbook) *WorkbookReference {
	return &WorkbookReference{workbook: workbook}
}

func (r *WorkbookReference) Load() (*dataset.Table, error) {
	status, err := r.workbook.LoadSheet(reviewStatusSheet)
	if err != nil {
		return nil, err
	}
	completed, err := r.workbook.LoadSheet(dateCompletedSheet)
	if err != nil {
		return nil, err
	}
	return dataset.OuterJoin(status, completed, referenceKey)
}

// DatabaseReference reads the editorial tables through GORM and combines
// them exactly like the workbook path: declared columns only, cells
// trimmed, and the same outer join.
type DatabaseReference struct {
	db *gorm.DB
}

// NewDatabaseReference creates a database-backed reference loader.
func NewDatabaseReference(db *gorm.DB) *DatabaseReference {
	return &DatabaseReference{db: db}
}

func (r *DatabaseReference) Load() (*dataset.Table, error) {
	status, err := r.loadReviewStatus()
	if err != nil {
		return nil, err
	}
	completed, err := r.loadDateCompleted()
	if err != nil {
		return nil, err
	}
	return dataset.OuterJoin(status, completed, referenceKey)
}

func (r *DatabaseReference) loadReviewStatus() (*dataset.Table, error) {
	if err := r.checkColumns("review_status", models.ReviewStatusColumns); err != nil {
		return nil, err
	}

	var records []models.ReviewStatusRecord
	if err := r.db.Select(models.ReviewStatusColumns).Find(&records).Error; err != nil {
		return nil, &dataset.LoadError{Source: "database", Sheet: "review_status", Err: err}
	}

	table := dataset.NewTable(sheetColumnNames(reviewStatusSheet)...)
	for _, record := range records {
		table.Append(record.ToRow())
	}
	return table, nil
}

func (r *DatabaseReference) loadDateCompleted() (*dataset.Table, error) {
	if err := r.checkColumns("date_completed", models.DateCompletedColumns); err != nil {
		return nil, err
	}

	var records []models.DateCompletedRecord
	if err := r.db.Select(models.DateCompletedColumns).Find(&records).Error; err != nil {
		return nil, &dataset.LoadError{Source: "database", Sheet: "date_completed", Err: err}
	}

	table := dataset.NewTable(sheetColumnNames(dateCompletedSheet)...)
	for _, record := range records {
		table.Append(record.ToRow())
	}
	return table, nil
}

// checkColumns verifies the table carries every declared column before it
// is queried, so a schema drift surfaces as a load failure rather than a
// scan surprise.
func (r *DatabaseReference) checkColumns(tableName string, wanted []string) error {
	missing, err := database.MissingColumns(r.db, tableName, wanted)
	if err != nil {
		return &dataset.LoadError{Source: "database", Sheet: tableName, Err: err}
	}
	if len(missing) > 0 {
		return &dataset.LoadError{
			Source: "database",
			Sheet:  tableName,
			Err:    fmt.Errorf("%w: %v", dataset.ErrColumnMissing, missing),
		}
	}
	return nil
}

func sheetColumnNames(spec dataset.SheetSpec) []string {
	names := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		names[i] = col.Name
	}
	return names
}

// FileOpener opens a local file as a source byte stream.
func FileOpener(path string) dataset.Opener {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// StorageOpener fetches an object from the source bucket as a byte stream.
func StorageOpener(client storage.Client, bucket, key string) dataset.Opener {
	return func() (io.ReadCloser, error) {
		return client.GetObject(context.Background(), bucket, key, minio.GetObjectOptions{})
	}
}
