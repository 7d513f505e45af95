package domain

import "time"

// Video is an entry in the club's video library. The actual media lives
// behind VideoURL (or an object-storage key when ObjectKey is set).
type Video struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description,omitempty" json:"description"`
	ThumbnailURL string    `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl"`
	VideoURL     string    `bson:"videoUrl,omitempty" json:"videoUrl"`
	ObjectKey    string    `bson:"objectKey,omitempty" json:"-"` // S3 object key, internal use
	Duration     int       `bson:"duration" json:"duration"`     // Seconds
	Category     string    `bson:"category" json:"category"`
	Tags         []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	CreatedBy    string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}
