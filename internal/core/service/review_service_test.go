package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/thingful/thingful-api/internal/core/domain"
	"github.com/thingful/thingful-api/internal/core/ports"
	"github.com/thingful/thingful-api/internal/core/projection"
	"github.com/thingful/thingful-api/internal/core/sanitize"
)

type stubReviewRepo struct {
	nextID  int64
	created []*domain.Review
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (int64, error) {
	r.nextID++
	clone := *review
	clone.ID = r.nextID
	r.created = append(r.created, &clone)
	return r.nextID, nil
}

func (r *stubReviewRepo) ReviewRows(_ context.Context, id int64) ([]projection.Row, error) {
	for _, review := range r.created {
		if review.ID != id {
			continue
		}
		return []projection.Row{{
			"id": review.ID, "rating": int64(review.Rating), "thing_id": review.ThingID,
			"text": review.Text, "date_created": review.DateCreated,
			"user:id": review.UserID, "user:user_name": "alice", "user:full_name": "Alice Example",
			"user:nickname": nil, "user:date_created": "2021-01-01 09:00:00", "user:date_modified": nil,
		}}, nil
	}
	return nil, nil
}

func newReviewService(reviews *stubReviewRepo, things *stubThingRepo, cache ports.ThingListCache) *ReviewService {
	return NewReviewService(reviews, things, sanitize.New(), cache, zerolog.Nop())
}

func existingThingRepo() *stubThingRepo {
	return &stubThingRepo{thingRows: map[int64][]projection.Row{
		1: {{"id": int64(1), "title": "Pawpaw Cafe"}},
	}}
}

func TestReviewService_Create(t *testing.T) {
	reviews := &stubReviewRepo{}
	cache := &stubCache{hasValue: true}
	svc := newReviewService(reviews, existingThingRepo(), cache)

	view, err := svc.Create(context.Background(), ports.CreateReviewInput{
		ThingID: 1,
		Rating:  4,
		Text:    "Really <script>bad()</script>good",
		UserID:  10,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if view.ID != 1 || view.Rating != 4 || view.ThingID != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Text != "Really good" {
		t.Fatalf("expected sanitized text, got %q", view.Text)
	}
	if view.User.ID != 10 {
		t.Fatalf("author must come from input user id, got %+v", view.User)
	}

	if len(reviews.created) != 1 {
		t.Fatalf("expected 1 stored review, got %d", len(reviews.created))
	}
	stored := reviews.created[0]
	if stored.UserID != 10 || stored.DateCreated.IsZero() {
		t.Fatalf("unexpected stored review: %+v", stored)
	}
	if time.Since(stored.DateCreated) > time.Minute {
		t.Fatalf("stored timestamp not current: %v", stored.DateCreated)
	}

	if cache.invalidated != 1 {
		t.Fatalf("expected things cache invalidated once, got %d", cache.invalidated)
	}
}

func TestReviewService_CreateMissingThing(t *testing.T) {
	svc := newReviewService(&stubReviewRepo{}, &stubThingRepo{thingRows: map[int64][]projection.Row{}}, nil)

	_, err := svc.Create(context.Background(), ports.CreateReviewInput{ThingID: 404, Rating: 3, Text: "x", UserID: 10})
	if !errors.Is(err, domain.ErrThingNotFound) {
		t.Fatalf("expected ErrThingNotFound, got %v", err)
	}
}
