package service

import (
	"github.com/thingful/thingful-api/internal/core/ports"
	"github.com/thingful/thingful-api/internal/core/projection"
	"github.com/thingful/thingful-api/internal/core/sanitize"
)

// Mapping from projected trees onto response views. All user-authored text
// passes through the sanitizer here and nowhere else.

func serializeThingTree(sanitizer *sanitize.Sanitizer, tree *projection.Tree) ports.ThingView {
	count, average := projection.ReviewStats(tree.Rows, "review:id", "review:rating")

	return ports.ThingView{
		ID:                  projection.AsInt64(tree.Root["id"]),
		Title:               sanitizer.Clean(projection.AsString(tree.Root["title"])),
		Content:             sanitizer.Clean(projection.AsString(tree.Root["content"])),
		DateCreated:         projection.AsTime(tree.Root["date_created"]),
		Image:               projection.AsString(tree.Root["image"]),
		User:                serializeUserGroup(sanitizer, tree.Nested["user"]),
		NumberOfReviews:     count,
		AverageReviewRating: average,
	}
}

func serializeReviewTree(sanitizer *sanitize.Sanitizer, tree *projection.Tree) ports.ReviewView {
	return ports.ReviewView{
		ID:          projection.AsInt64(tree.Root["id"]),
		Rating:      projection.AsInt(tree.Root["rating"]),
		ThingID:     projection.AsInt64(tree.Root["thing_id"]),
		Text:        sanitizer.Clean(projection.AsString(tree.Root["text"])),
		User:        serializeUserGroup(sanitizer, tree.Nested["user"]),
		DateCreated: projection.AsTime(tree.Root["date_created"]),
	}
}

// serializeUserGroup maps a projected "user:" group onto the nested view.
// A group left empty by an outer join yields the zero view, which
// serializes as {}.
func serializeUserGroup(sanitizer *sanitize.Sanitizer, fields map[string]any) ports.UserView {
	if len(fields) == 0 {
		return ports.UserView{}
	}
	return ports.UserView{
		ID:           projection.AsInt64(fields["id"]),
		UserName:     sanitizer.Clean(projection.AsString(fields["user_name"])),
		FullName:     sanitizer.Clean(projection.AsString(fields["full_name"])),
		Nickname:     sanitizer.Clean(projection.AsString(fields["nickname"])),
		DateCreated:  projection.AsTime(fields["date_created"]),
		DateModified: projection.AsTime(fields["date_modified"]),
	}
}
