package ports

import "context"

// ThingListCache is a best-effort cache of the serialized public things
// listing. Implementations must treat backend failures as misses; callers
// never fail a request on a cache error.
type ThingListCache interface {
	Get(ctx context.Context) ([]ThingView, bool)
	Set(ctx context.Context, things []ThingView)
	Invalidate(ctx context.Context)
}
