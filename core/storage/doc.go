// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the audit archive needs. This abstraction supports both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Archiver
//
// Deleted words and their orphaned suggestions are not lost: the Archiver
// writes a JSON snapshot of each record under archive/<kind>/<id>.json
// before the physical delete, so merge history stays auditable out-of-band.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	archiver := storage.NewArchiver(client, config.Bucket)
//	err = archiver.Archive(ctx, "words", word.ID, word)
package storage
