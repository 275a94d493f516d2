package models

// CoverageReport summarizes how well the reference table covers a document
// snapshot. It is a diagnostic view: unlike the record stream, it does not
// stop at the first unmatched document.
type CoverageReport struct {
	// TotalDocuments is the number of documents in the collection.
	TotalDocuments int `json:"total_documents"`
	// MatchedDocuments is the number of documents with at least one
	// reference row.
	MatchedDocuments int `json:"matched_documents"`
	// UnmatchedArticles lists the article ids without any reference row,
	// in document order. Each of these would fail the record stream.
	UnmatchedArticles []string `json:"unmatched_articles"`
	// ReferenceRows is the number of rows in the combined reference table.
	ReferenceRows int `json:"reference_rows"`
	// DistinctArticles is the number of distinct article ids in the
	// reference table.
	DistinctArticles int `json:"distinct_articles"`
	// StaleArticles lists reference article ids that match no document,
	// in reference row order.
	StaleArticles []string `json:"stale_articles"`
}

// Covered reports whether every document has a reference row.
func (r *CoverageReport) Covered() bool {
	return len(r.UnmatchedArticles) == 0
}
