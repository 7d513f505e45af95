package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// MediaStorage defines the interface for object storage operations on the
// video library's media files.
type MediaStorage interface {
	// PresignUploadURL creates a temporary URL that allows a coach to PUT a
	// new video object directly to the storage provider.
	PresignUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// PresignPlaybackURL creates a temporary URL that allows GET requests for
	// streaming/downloading a video object.
	PresignPlaybackURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes a video object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
