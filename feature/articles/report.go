package articles

import (
	"article-stream/core/dataset"
	"article-stream/core/document"
	"article-stream/feature/articles/models"
)

// BuildReport cross-checks a document collection against the editorial
// reference table. It answers two operational questions: which articles
// have no review row yet, and which review rows point at articles that
// are no longer part of the collection.
func BuildReport(docs []*document.Object, ref *dataset.Table) *models.CoverageReport {
	reviewed := make(map[string]bool, ref.Len())
	var reviewedOrder []string
	for _, row := range ref.Rows {
		id, ok := row[articleIDColumn].(string)
		if !ok || id == "" {
			continue
		}
		if !reviewed[id] {
			reviewed[id] = true
			reviewedOrder = append(reviewedOrder, id)
		}
	}

	report := &models.CoverageReport{
		TotalDocuments:   len(docs),
		ReferenceRows:    ref.Len(),
		DistinctArticles: len(reviewedOrder),
	}

	present := make(map[string]bool, len(docs))
	listed := make(map[string]bool)
	for _, doc := range docs {
		id, ok := documentID(doc)
		if !ok {
			// A document without an _id counts as unmatched but cannot
			// be listed by name.
			continue
		}
		present[id] = true
		if reviewed[id] {
			report.MatchedDocuments++
			continue
		}
		if !listed[id] {
			listed[id] = true
			report.UnmatchedArticles = append(report.UnmatchedArticles, id)
		}
	}

	for _, id := range reviewedOrder {
		if !present[id] {
			report.StaleArticles = append(report.StaleArticles, id)
		}
	}
	return report
}

// documentID extracts the non-empty string _id of a document.
func documentID(doc *document.Object) (string, bool) {
	raw, ok := doc.Get("_id")
	if !ok {
		return "", false
	}
	id, ok := raw.(string)
	return id, ok && id != ""
}
