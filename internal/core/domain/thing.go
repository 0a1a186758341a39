package domain

import "time"

// Thing is a reviewable item posted by a user. NumberOfReviews and
// AverageReviewRating are derived from joined review rows and never stored.
type Thing struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	UserID      int64     `json:"-"`
	DateCreated time.Time `json:"date_created"`

	NumberOfReviews     int `json:"number_of_reviews"`
	AverageReviewRating int `json:"average_review_rating"`
}
