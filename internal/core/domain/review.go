package domain

import "time"

// Review is a rating plus free-text comment a user left on a thing.
// Rating is constrained to [1,5] by the persistence layer.
type Review struct {
	ID          int64     `json:"id"`
	ThingID     int64     `json:"thing_id"`
	Rating      int       `json:"rating"`
	Text        string    `json:"text"`
	UserID      int64     `json:"-"`
	DateCreated time.Time `json:"date_created"`
}
