// Package articles implements the article record pipeline feature.
//
// It reconciles two sources of truth into one flat record stream:
//  1. Article API response (JSON): a nested document collection under
//     response.docs.
//  2. Editorial reference data: the review_status and date_completed
//     tables, read from an xlsx workbook or a database.
//
// Each document is flattened into dot-path keys, matched against the
// reference table on its _id, and enriched with the winning review row.
// Consumers read the result as a schema plus fixed-size record batches.
//
// # Batch Source
//
// The Source type carries the pipeline state: it loads both inputs once
// per instance and streams reconciled records lazily. All batch sequences
// of one source share a single forward pass, so interleaved consumers
// continue where the last one stopped instead of starting over.
//
// # Components
//
//   - Source: Configure/GetSchema/GetDataBatch record streaming core.
//   - ReferenceLoader: workbook- and database-backed reference table loading.
//   - Service: Binds the pipeline to the configured backends.
//   - Handler: Exposes HTTP endpoints for schema, batches and coverage.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /articles/schema : Ordered field names of the reconciled records.
//   - GET /articles/batches?size=N&max=M : Records grouped into batches.
//   - GET /articles/report : Coverage of the collection by the reference table.
package articles
