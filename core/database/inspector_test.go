package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	// Setup In-Memory DB
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	// Create a reference table the way the database backend expects it
	err = db.Exec("CREATE TABLE review_status (id INTEGER PRIMARY KEY, row INTEGER, article_id TEXT, reference_id TEXT, status TEXT)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "review_status")
	assert.NoError(t, err)
	assert.Len(t, columns, 5)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["row"])
	assert.Equal(t, "text", colMap["article_id"])
	assert.Equal(t, "text", colMap["status"])

	// PRAGMA table_info returns an empty result for a table that does not
	// exist, so no error but no columns either.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	err = db.Exec("CREATE TABLE date_completed (reference_id TEXT, date_completed TEXT, reviewer TEXT)").Error
	assert.NoError(t, err)

	missing, err := MissingColumns(db, "date_completed", []string{"reference_id", "Date_Completed", "reviewer"})
	assert.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = MissingColumns(db, "date_completed", []string{"reference_id", "approved_by"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"approved_by"}, missing)
}
