package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/thingful/thingful-api/internal/core/domain"
	"github.com/thingful/thingful-api/internal/core/ports"
	"github.com/thingful/thingful-api/internal/core/projection"
	"github.com/thingful/thingful-api/internal/core/sanitize"
)

// ThingService reads things and their reviews: join rows in, projected,
// aggregated, sanitized views out.
type ThingService struct {
	things    ports.ThingRepository
	sanitizer *sanitize.Sanitizer
	cache     ports.ThingListCache
	logger    zerolog.Logger
}

func NewThingService(things ports.ThingRepository, sanitizer *sanitize.Sanitizer, cache ports.ThingListCache, logger zerolog.Logger) *ThingService {
	return &ThingService{things: things, sanitizer: sanitizer, cache: cache, logger: logger}
}

// ListThings returns every thing with its owner and review statistics. The
// serialized listing is served from the cache when fresh.
func (s *ThingService) ListThings(ctx context.Context) ([]ports.ThingView, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	rows, err := s.things.ListThingRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list things: %w", err)
	}

	trees := projection.Project(rows, "id")
	views := make([]ports.ThingView, 0, len(trees))
	for _, tree := range trees {
		views = append(views, serializeThingTree(s.sanitizer, tree))
	}

	if s.cache != nil {
		s.cache.Set(ctx, views)
	}
	return views, nil
}

// GetThing returns one thing or ErrThingNotFound.
func (s *ThingService) GetThing(ctx context.Context, id int64) (*ports.ThingView, error) {
	rows, err := s.things.ThingRows(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get thing: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrThingNotFound
	}

	view := serializeThingTree(s.sanitizer, projection.Project(rows, "id")[0])
	return &view, nil
}

// ListThingReviews returns the reviews of one thing with their nested
// authors. The thing itself must exist.
func (s *ThingService) ListThingReviews(ctx context.Context, thingID int64) ([]ports.ReviewView, error) {
	if _, err := s.GetThing(ctx, thingID); err != nil {
		return nil, err
	}

	rows, err := s.things.ReviewRowsForThing(ctx, thingID)
	if err != nil {
		return nil, fmt.Errorf("list thing reviews: %w", err)
	}

	trees := projection.Project(rows, "id")
	views := make([]ports.ReviewView, 0, len(trees))
	for _, tree := range trees {
		views = append(views, serializeReviewTree(s.sanitizer, tree))
	}
	return views, nil
}
