package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/thingful/thingful-api/internal/core/auth"
	"github.com/thingful/thingful-api/internal/core/domain"
	"github.com/thingful/thingful-api/internal/core/ports"
	"github.com/thingful/thingful-api/internal/core/sanitize"
)

const passwordSpecials = "!@#$%^&"

// UserService implements account registration.
type UserService struct {
	users     ports.UserRepository
	hasher    *auth.Hasher
	sanitizer *sanitize.Sanitizer
	logger    zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher *auth.Hasher, sanitizer *sanitize.Sanitizer, logger zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, sanitizer: sanitizer, logger: logger}
}

// Register validates the password policy, checks username uniqueness and
// inserts the account with a bcrypt hash. The uniqueness check is
// read-then-write; the UNIQUE constraint on user_name backstops the race
// between two concurrent registrations.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*ports.UserView, error) {
	if msg := validatePassword(input.Password); msg != "" {
		return nil, domain.NewValidationError(msg)
	}

	_, err := s.users.FindByUserName(ctx, input.UserName)
	if err == nil {
		return nil, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := s.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		UserName:     input.UserName,
		FullName:     input.FullName,
		Nickname:     input.Nickname,
		PasswordHash: hash,
		DateCreated:  time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("user_name", created.UserName).Msg("user registered")

	view := serializeStoredUser(s.sanitizer, created)
	return &view, nil
}

// serializeStoredUser builds the sanitized public view of a stored account.
func serializeStoredUser(sanitizer *sanitize.Sanitizer, user *domain.User) ports.UserView {
	view := ports.UserView{
		ID:          user.ID,
		UserName:    sanitizer.Clean(user.UserName),
		FullName:    sanitizer.Clean(user.FullName),
		Nickname:    sanitizer.Clean(user.Nickname),
		DateCreated: user.DateCreated,
	}
	if user.DateModified != nil {
		view.DateModified = *user.DateModified
	}
	return view
}

// validatePassword returns the policy violation message for the given
// password, or "" when it passes. Messages are part of the external
// contract and returned verbatim.
func validatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be more than 8 characters"
	}
	if len(password) > 72 {
		return "Password must be less than 72 characters"
	}
	if strings.HasPrefix(password, " ") || strings.HasSuffix(password, " ") {
		return "Password must not start or end with a space"
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return "Password must contain at least 1 upper case, lower case, number and special character"
	}
	return ""
}
