package ports

import "context"

// ThingService reads things and their reviews as fully serialized views:
// projected from join rows, aggregated, and sanitized.
type ThingService interface {
	ListThings(ctx context.Context) ([]ThingView, error)
	GetThing(ctx context.Context, id int64) (*ThingView, error)
	ListThingReviews(ctx context.Context, thingID int64) ([]ReviewView, error)
}
