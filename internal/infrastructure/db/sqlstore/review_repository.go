package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thingful/thingful-api/internal/core/domain"
	"github.com/thingful/thingful-api/internal/core/projection"
)

// ReviewRepository persists reviews in thingful_reviews.
type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (int64, error) {
	const query = `
		INSERT INTO thingful_reviews (rating, text, thing_id, user_id, date_created)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		review.Rating, review.Text, review.ThingID, review.UserID, review.DateCreated,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert review: %w", err)
	}
	return id, nil
}

func (r *ReviewRepository) ReviewRows(ctx context.Context, id int64) ([]projection.Row, error) {
	const query = `
		SELECT
			rev.id,
			rev.rating,
			rev.text,
			rev.thing_id,
			rev.date_created,` + userColumns + `
		FROM thingful_reviews AS rev
		LEFT JOIN thingful_users AS usr ON usr.id = rev.user_id
		WHERE rev.id = $1`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query review: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}
