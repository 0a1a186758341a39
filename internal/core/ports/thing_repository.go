package ports

import (
	"context"

	"github.com/thingful/thingful-api/internal/core/projection"
)

// ThingRepository returns flat join rows whose column aliases follow the
// "group:field" naming contract; reassembly into nested objects happens in
// the service layer via the projection package.
type ThingRepository interface {
	// ListThingRows returns one row per (thing, review) pair across all
	// things, with owner columns under the "user:" prefix and review detail
	// columns under the "review:" prefix.
	ListThingRows(ctx context.Context) ([]projection.Row, error)

	// ThingRows returns the rows for a single thing, same shape as
	// ListThingRows. Empty result means the thing does not exist.
	ThingRows(ctx context.Context, thingID int64) ([]projection.Row, error)

	// ReviewRowsForThing returns one row per review of the thing, with the
	// review author's columns under the "user:" prefix.
	ReviewRowsForThing(ctx context.Context, thingID int64) ([]projection.Row, error)
}
