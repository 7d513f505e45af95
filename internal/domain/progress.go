package domain

import "time"

// ProgressEntry is one journal entry in a dancer's progress log.
type ProgressEntry struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"userId" json:"userId"` // Owning User.ID
	Date        time.Time `bson:"date" json:"date"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description"`
	Category    string    `bson:"category,omitempty" json:"category"`
	Rating      int       `bson:"rating,omitempty" json:"rating,omitempty"` // 0 = unset, otherwise 1-5
}

// RatingValid reports whether the rating is unset or within [1,5].
func (e *ProgressEntry) RatingValid() bool {
	return e.Rating == 0 || (e.Rating >= 1 && e.Rating <= 5)
}
