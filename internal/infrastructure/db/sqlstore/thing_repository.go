package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thingful/thingful-api/internal/core/projection"
)

// userColumns aliases the joined author/owner columns into the "user:"
// group the projector reassembles into a nested object.
const userColumns = `
	usr.id AS "user:id",
	usr.user_name AS "user:user_name",
	usr.full_name AS "user:full_name",
	usr.nickname AS "user:nickname",
	usr.date_created AS "user:date_created",
	usr.date_modified AS "user:date_modified"`

// ThingRepository reads things as flat join rows.
type ThingRepository struct {
	db *sql.DB
}

func NewThingRepository(db *sql.DB) *ThingRepository {
	return &ThingRepository{db: db}
}

const thingRowsQuery = `
	SELECT
		thg.id,
		thg.title,
		thg.content,
		thg.image,
		thg.date_created,` + userColumns + `,
		rev.id AS "review:id",
		rev.rating AS "review:rating"
	FROM thingful_things AS thg
	LEFT JOIN thingful_reviews AS rev ON rev.thing_id = thg.id
	LEFT JOIN thingful_users AS usr ON usr.id = thg.user_id`

func (r *ThingRepository) ListThingRows(ctx context.Context) ([]projection.Row, error) {
	rows, err := r.db.QueryContext(ctx, thingRowsQuery+` ORDER BY thg.id, rev.id`)
	if err != nil {
		return nil, fmt.Errorf("query things: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

func (r *ThingRepository) ThingRows(ctx context.Context, thingID int64) ([]projection.Row, error) {
	rows, err := r.db.QueryContext(ctx, thingRowsQuery+` WHERE thg.id = $1 ORDER BY rev.id`, thingID)
	if err != nil {
		return nil, fmt.Errorf("query thing: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

func (r *ThingRepository) ReviewRowsForThing(ctx context.Context, thingID int64) ([]projection.Row, error) {
	const query = `
		SELECT
			rev.id,
			rev.rating,
			rev.text,
			rev.date_created,` + userColumns + `
		FROM thingful_reviews AS rev
		LEFT JOIN thingful_users AS usr ON usr.id = rev.user_id
		WHERE rev.thing_id = $1
		ORDER BY rev.id`

	rows, err := r.db.QueryContext(ctx, query, thingID)
	if err != nil {
		return nil, fmt.Errorf("query thing reviews: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}
