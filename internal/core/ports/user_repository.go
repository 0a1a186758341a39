package ports

import (
	"context"

	"github.com/thingful/thingful-api/internal/core/domain"
)

// UserRepository persists and looks up user accounts. Lookups are
// case-sensitive exact matches on user_name.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUserName(ctx context.Context, userName string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
