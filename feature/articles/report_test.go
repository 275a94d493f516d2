package articles

import (
	"io"
	"strings"
	"testing"

	"article-stream/core/dataset"
	"article-stream/core/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureDocs(t *testing.T, data string) []*document.Object {
	t.Helper()
	docs, err := loadDocuments(func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(data)), nil
	})
	require.NoError(t, err)
	return docs
}

func TestBuildReport(t *testing.T) {
	ref := partialReference(3)
	ref.Append(dataset.Row{"Row": int64(9), "Article Id": "nyt-1", "Reference Id": "ref-9", "Status": "approved"})
	ref.Append(dataset.Row{"Row": int64(10), "Article Id": "nyt-9", "Reference Id": "ref-10", "Status": "draft"})

	report := BuildReport(fixtureDocs(t, apiResponse), ref)

	assert.Equal(t, 5, report.TotalDocuments)
	assert.Equal(t, 3, report.MatchedDocuments)
	assert.Equal(t, []string{"nyt-4", "nyt-5"}, report.UnmatchedArticles)
	assert.Equal(t, 5, report.ReferenceRows)
	// nyt-1 appears twice but counts once
	assert.Equal(t, 4, report.DistinctArticles)
	assert.Equal(t, []string{"nyt-9"}, report.StaleArticles)
	assert.False(t, report.Covered())
}

func TestBuildReport_FullCoverage(t *testing.T) {
	report := BuildReport(fixtureDocs(t, apiResponse), fullReference())

	assert.Equal(t, 5, report.MatchedDocuments)
	assert.Empty(t, report.UnmatchedArticles)
	assert.Empty(t, report.StaleArticles)
	assert.True(t, report.Covered())
}

func TestBuildReport_DocWithoutID(t *testing.T) {
	data := `{"response": {"docs": [{"_id": "nyt-1"}, {"headline": {"main": "anonymous"}}]}}`

	report := BuildReport(fixtureDocs(t, data), partialReference(1))

	// The document without an _id counts in the total but cannot be listed
	assert.Equal(t, 2, report.TotalDocuments)
	assert.Equal(t, 1, report.MatchedDocuments)
	assert.Empty(t, report.UnmatchedArticles)
	assert.True(t, report.Covered())
}

func TestBuildReport_EmptyInputs(t *testing.T) {
	report := BuildReport(nil, dataset.NewTable("Row", "Article Id"))

	assert.Zero(t, report.TotalDocuments)
	assert.Zero(t, report.ReferenceRows)
	assert.True(t, report.Covered())
}
