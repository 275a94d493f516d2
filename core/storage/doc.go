// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// read-side operations the pipeline needs: verifying bucket access and
// fetching source files. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the source bucket.
//   - GetObject: Retrieves a source file (API response, reference workbook) as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "sources")
//	rc, err := client.GetObject(ctx, "sources", "api_response.json", minio.GetObjectOptions{})
package storage
