// Package persist provides the key-value snapshot provider the stores use to
// mirror their collections. Snapshots are whole-state JSON blobs written under
// fixed keys and restored wholesale at startup.
package persist

import (
	"context"
	"errors"
)

// Fixed snapshot keys, one per store slice.
const (
	KeyAuth          = "rapid-budapest-auth-storage"
	KeyEvents        = "rapid-budapest-events-storage"
	KeyTraining      = "rapid-budapest-training-storage"
	KeyVideos        = "rapid-budapest-videos-storage"
	KeyProgress      = "rapid-budapest-progress-storage"
	KeyNotifications = "rapid-budapest-notifications-storage"
	KeyClub          = "rapid-budapest-club-storage"
)

// ErrNoSnapshot is returned by Get when no snapshot exists under the key.
var ErrNoSnapshot = errors.New("no snapshot for key")

// KV is a local key-value snapshot provider: string keys, string values.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
