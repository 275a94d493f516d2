package models

import (
	"strings"

	"article-stream/core/dataset"
)

// ReviewStatusColumns are the database columns backing the review_status
// sheet, in declared order.
var ReviewStatusColumns = []string{"row", "article_id", "reference_id", "status"}

// DateCompletedColumns are the database columns backing the date_completed
// sheet, in declared order.
var DateCompletedColumns = []string{"reference_id", "date_completed", "reviewer"}

// ReviewStatusRecord represents the 'review_status' table.
type ReviewStatusRecord struct {
	Row         *int64  `gorm:"column:row"`
	ArticleID   *string `gorm:"column:article_id"`
	ReferenceID *string `gorm:"column:reference_id"`
	Status      *string `gorm:"column:status"`
}

// TableName overrides the table name used by GORM.
func (ReviewStatusRecord) TableName() string {
	return "review_status"
}

// ToRow converts the database record into a table row with the same cell
// shapes the workbook path produces.
func (r ReviewStatusRecord) ToRow() dataset.Row {
	return dataset.Row{
		"Row":          intCell(r.Row),
		"Article Id":   stringCell(r.ArticleID),
		"Reference Id": stringCell(r.ReferenceID),
		"Status":       stringCell(r.Status),
	}
}

// DateCompletedRecord represents the 'date_completed' table.
type DateCompletedRecord struct {
	ReferenceID   *string `gorm:"column:reference_id"`
	DateCompleted *string `gorm:"column:date_completed"`
	Reviewer      *string `gorm:"column:reviewer"`
}

// TableName overrides the table name used by GORM.
func (DateCompletedRecord) TableName() string {
	return "date_completed"
}

// ToRow converts the database record into a table row with the same cell
// shapes the workbook path produces.
func (r DateCompletedRecord) ToRow() dataset.Row {
	return dataset.Row{
		"Reference Id":   stringCell(r.ReferenceID),
		"Date Completed": stringCell(r.DateCompleted),
		"Reviewer":       stringCell(r.Reviewer),
	}
}

// stringCell trims the value the way workbook cells are trimmed; NULL and
// blank values become nil.
func stringCell(v *string) any {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return s
}

func intCell(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
