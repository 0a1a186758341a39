package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/thingful/thingful-api/internal/core/domain"
	"github.com/thingful/thingful-api/internal/core/ports"
	"github.com/thingful/thingful-api/internal/core/projection"
	"github.com/thingful/thingful-api/internal/core/sanitize"
)

// ReviewService posts reviews on things.
type ReviewService struct {
	reviews   ports.ReviewRepository
	things    ports.ThingRepository
	sanitizer *sanitize.Sanitizer
	cache     ports.ThingListCache
	logger    zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, things ports.ThingRepository, sanitizer *sanitize.Sanitizer, cache ports.ThingListCache, logger zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, things: things, sanitizer: sanitizer, cache: cache, logger: logger}
}

// Create inserts a review authored by the authenticated principal and reads
// it back joined to its author. The referenced thing must exist; the cached
// things listing is invalidated because its aggregates just changed.
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*ports.ReviewView, error) {
	thingRows, err := s.things.ThingRows(ctx, input.ThingID)
	if err != nil {
		return nil, fmt.Errorf("check thing: %w", err)
	}
	if len(thingRows) == 0 {
		return nil, domain.ErrThingNotFound
	}

	review := &domain.Review{
		ThingID:     input.ThingID,
		Rating:      input.Rating,
		Text:        input.Text,
		UserID:      input.UserID,
		DateCreated: time.Now().UTC(),
	}

	id, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	rows, err := s.reviews.ReviewRows(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read back review: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrReviewNotFound
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	s.logger.Info().Int64("review_id", id).Int64("thing_id", input.ThingID).Int64("user_id", input.UserID).Msg("review created")

	view := serializeReviewTree(s.sanitizer, projection.Project(rows, "id")[0])
	return &view, nil
}
