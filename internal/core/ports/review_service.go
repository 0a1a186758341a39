package ports

import "context"

// CreateReviewInput carries a new review. UserID comes from the
// authenticated principal, never from the request body.
type CreateReviewInput struct {
	ThingID int64
	Rating  int
	Text    string
	UserID  int64
}

// ReviewService posts reviews.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*ReviewView, error)
}
