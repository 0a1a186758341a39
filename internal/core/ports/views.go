package ports

import "time"

// Serialized response shapes. User-authored free-text fields are sanitized
// by the services before these are handed to handlers.

// UserView is the nested author/owner object. Every field is omitted when
// zero so an outer join with no match serializes as {}, never null.
type UserView struct {
	ID           int64     `json:"id,omitempty"`
	UserName     string    `json:"user_name,omitempty"`
	FullName     string    `json:"full_name,omitempty"`
	Nickname     string    `json:"nickname,omitempty"`
	DateCreated  time.Time `json:"date_created,omitzero"`
	DateModified time.Time `json:"date_modified,omitzero"`
}

// ThingView is a thing with its owning user and derived review statistics.
type ThingView struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Content             string    `json:"content"`
	DateCreated         time.Time `json:"date_created"`
	Image               string    `json:"image"`
	User                UserView  `json:"user"`
	NumberOfReviews     int       `json:"number_of_reviews"`
	AverageReviewRating int       `json:"average_review_rating"`
}

// ReviewView is a review with its nested author. ThingID is only populated
// on the create response, matching the listing shape.
type ReviewView struct {
	ID          int64     `json:"id"`
	Rating      int       `json:"rating"`
	ThingID     int64     `json:"thing_id,omitempty"`
	Text        string    `json:"text"`
	User        UserView  `json:"user"`
	DateCreated time.Time `json:"date_created"`
}
