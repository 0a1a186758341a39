package ports

import "context"

// AuthService exchanges Basic credentials for a signed bearer token.
type AuthService interface {
	Login(ctx context.Context, userName, password string) (string, error)
}
