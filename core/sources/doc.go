// Package sources holds the configuration for the pipeline input sources.
//
// The article pipeline reads two inputs: the article API response (a JSON
// file) and the editorial review reference data. This package defines where
// those inputs come from and validates the backend choices.
//
// # Configuration
//
// The Config struct names the API response file and the reference workbook,
// selects the reference backend (workbook or database), and decides whether
// files are read from local disk or from object storage.
//
// # Usage
//
// This package is primarily used by the core/config package to embed source
// settings and by the articles feature to build its readers.
package sources
