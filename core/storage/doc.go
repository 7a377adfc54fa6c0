// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the backup
// feature needs: bucket checks, uploads, downloads, listings and removal. Both
// AWS S3 and self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket before the first upload.
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - RemoveObject: Deletes backups beyond the retention limit.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config.Bucket, config.Region)
package storage
