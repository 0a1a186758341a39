package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thingful/thingful-api/internal/core/domain"
)

// UserRepository persists accounts in thingful_users.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const query = `
		INSERT INTO thingful_users (user_name, full_name, nickname, password, date_created)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	created := *user
	err := r.db.QueryRowContext(ctx, query,
		user.UserName, user.FullName, nullable(user.Nickname), user.PasswordHash, user.DateCreated,
	).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

func (r *UserRepository) FindByUserName(ctx context.Context, userName string) (*domain.User, error) {
	const query = `
		SELECT id, user_name, full_name, nickname, password, date_created, date_modified
		FROM thingful_users
		WHERE user_name = $1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, userName))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
		SELECT id, user_name, full_name, nickname, password, date_created, date_modified
		FROM thingful_users
		WHERE id = $1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var (
		user     domain.User
		nickname sql.NullString
		modified sql.NullTime
	)
	err := row.Scan(&user.ID, &user.UserName, &user.FullName, &nickname, &user.PasswordHash, &user.DateCreated, &modified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	user.Nickname = nickname.String
	if modified.Valid {
		user.DateModified = &modified.Time
	}
	return &user, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// isUniqueViolation matches the constraint errors of both supported
// drivers; neither exposes a portable error type through database/sql.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
