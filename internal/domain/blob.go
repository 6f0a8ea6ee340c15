package domain

import "context"

// DeleteOutcome classifies the result of a single blob deletion. Deletions of
// already-gone blobs are expected during cleanup and must not be treated as failures.
type DeleteOutcome int

const (
	DeleteFailed DeleteOutcome = iota
	Deleted
	DeleteNotFound
)

func (o DeleteOutcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case DeleteNotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// BlobStore is the binary object storage port (logos, portfolio photos).
// Upload returns a publicly retrievable URL for the stored object; Delete accepts
// that same URL as the reference.
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, ref string) (DeleteOutcome, error)
}
