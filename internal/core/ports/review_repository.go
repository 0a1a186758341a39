package ports

import (
	"context"

	"github.com/thingful/thingful-api/internal/core/domain"
	"github.com/thingful/thingful-api/internal/core/projection"
)

// ReviewRepository persists reviews and reads them back joined to their author.
type ReviewRepository interface {
	// Create inserts the review and returns its generated id.
	Create(ctx context.Context, review *domain.Review) (int64, error)

	// ReviewRows returns the flat rows for one review with its author's
	// columns under the "user:" prefix. Empty result means no such review.
	ReviewRows(ctx context.Context, id int64) ([]projection.Row, error)
}
