package articles

import (
	"fmt"
	"strings"

	"article-stream/core/dataset"
	"article-stream/core/document"
	"article-stream/core/utils"
)

// articleIDColumn is the reference column holding the article identifier.
const articleIDColumn = "Article Id"

// ordinalColumn is the reference column deciding which row wins when an
// article has several.
const ordinalColumn = "Row"

// NormalizeKey converts a reference column name into a record key:
// lower-cased, spaces replaced with underscores.
func NormalizeKey(column string) string {
	return strings.ReplaceAll(strings.ToLower(column), " ", "_")
}

// MatchReviewStatus finds the reference rows whose article id equals the
// record's _id, picks the one with the highest row ordinal, and returns a
// new record with that row's columns merged in under normalized keys.
// Merged columns overwrite same-named keys; new keys append in reference
// column order. Both inputs stay untouched.
//
// A document without any matching row fails with *NoMatchError.
func MatchReviewStatus(rec *document.Record, ref *dataset.Table) (*document.Record, error) {
	idValue, _ := rec.Get("_id")
	id, ok := idValue.(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("document has no _id value to match on")
	}

	best := -1
	var bestOrdinal int64
	for i, row := range ref.Rows {
		if row[articleIDColumn] != id {
			continue
		}
		ordinal := int64(utils.ToInt(row[ordinalColumn]))
		if best < 0 || ordinal > bestOrdinal {
			best = i
			bestOrdinal = ordinal
		}
	}
	if best < 0 {
		return nil, &NoMatchError{ArticleID: id}
	}

	merged := rec.Clone()
	row := ref.Rows[best]
	for _, column := range ref.Columns {
		merged.Set(NormalizeKey(column), row[column])
	}
	return merged, nil
}
