package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
)

// Archiver writes JSON snapshots of records to object storage before they
// are physically deleted from the database.
type Archiver struct {
	client Client
	bucket string
}

// NewArchiver creates an Archiver writing to the given bucket.
func NewArchiver(client Client, bucket string) *Archiver {
	return &Archiver{client: client, bucket: bucket}
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create archive bucket: %w", err)
	}
	return nil
}

// Archive stores the record as archive/<kind>/<id>.json.
func (a *Archiver) Archive(ctx context.Context, kind, id string, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode archive snapshot: %w", err)
	}

	objectName := path.Join("archive", kind, id+".json")
	_, err = a.client.PutObject(ctx, a.bucket, objectName, bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload archive snapshot %s: %w", objectName, err)
	}
	return nil
}
