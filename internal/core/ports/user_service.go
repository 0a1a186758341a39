package ports

import "context"

// RegisterUserInput carries the fields accepted by user registration.
type RegisterUserInput struct {
	UserName string
	FullName string
	Nickname string
	Password string
}

// UserService registers new accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*UserView, error)
}
