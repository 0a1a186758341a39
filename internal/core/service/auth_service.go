package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/thingful/thingful-api/internal/core/auth"
	"github.com/thingful/thingful-api/internal/core/domain"
	"github.com/thingful/thingful-api/internal/core/ports"
)

// BasicAuthenticator verifies Basic credentials against stored bcrypt
// hashes. An unknown username and a wrong password both surface as
// ErrInvalidCredentials so the response cannot be used to enumerate
// accounts.
type BasicAuthenticator struct {
	users  ports.UserRepository
	hasher *auth.Hasher
}

func NewBasicAuthenticator(users ports.UserRepository, hasher *auth.Hasher) *BasicAuthenticator {
	return &BasicAuthenticator{users: users, hasher: hasher}
}

func (a *BasicAuthenticator) Scheme() auth.Scheme { return auth.SchemeBasic }

func (a *BasicAuthenticator) Authenticate(ctx context.Context, cred auth.Credential) (domain.Principal, error) {
	if cred.Scheme != auth.SchemeBasic {
		return domain.Principal{}, domain.ErrMalformedCredentials
	}

	user, err := a.users.FindByUserName(ctx, cred.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Principal{}, domain.ErrInvalidCredentials
		}
		return domain.Principal{}, fmt.Errorf("look up user: %w", err)
	}

	match, err := a.hasher.Verify(ctx, cred.Password, user.PasswordHash)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}

	return domain.Principal{Subject: user.UserName, UserID: user.ID}, nil
}

// BearerAuthenticator verifies signed bearer tokens. A token with a valid
// signature is still rejected with ErrUnauthorized when the account it
// references is gone or has been renamed since the token was issued.
type BearerAuthenticator struct {
	users ports.UserRepository
	codec *auth.TokenCodec
}

func NewBearerAuthenticator(users ports.UserRepository, codec *auth.TokenCodec) *BearerAuthenticator {
	return &BearerAuthenticator{users: users, codec: codec}
}

func (a *BearerAuthenticator) Scheme() auth.Scheme { return auth.SchemeBearer }

func (a *BearerAuthenticator) Authenticate(ctx context.Context, cred auth.Credential) (domain.Principal, error) {
	if cred.Scheme != auth.SchemeBearer {
		return domain.Principal{}, domain.ErrMalformedCredentials
	}

	principal, err := a.codec.Verify(cred.Token)
	if err != nil {
		return domain.Principal{}, err
	}

	user, err := a.users.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Principal{}, domain.ErrUnauthorized
		}
		return domain.Principal{}, fmt.Errorf("look up user: %w", err)
	}
	if user.UserName != principal.Subject {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	return domain.Principal{Subject: user.UserName, UserID: user.ID}, nil
}

// AuthService implements login: Basic verification followed by token issue.
type AuthService struct {
	basic *BasicAuthenticator
	codec *auth.TokenCodec
}

func NewAuthService(basic *BasicAuthenticator, codec *auth.TokenCodec) *AuthService {
	return &AuthService{basic: basic, codec: codec}
}

func (s *AuthService) Login(ctx context.Context, userName, password string) (string, error) {
	principal, err := s.basic.Authenticate(ctx, auth.Credential{
		Scheme:   auth.SchemeBasic,
		Username: userName,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	token, err := s.codec.Issue(principal.Subject, principal.UserID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
