package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/thingful/thingful-api/internal/core/domain"
	"github.com/thingful/thingful-api/internal/core/ports"
	"github.com/thingful/thingful-api/internal/core/sanitize"
)

func newUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, testHasher(), sanitize.New(), zerolog.Nop())
}

func TestUserService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	view, err := svc.Register(context.Background(), ports.RegisterUserInput{
		UserName: "alice",
		FullName: "Alice Example",
		Nickname: "al",
		Password: "Valid1Pass!",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if view.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if view.UserName != "alice" || view.FullName != "Alice Example" {
		t.Fatalf("unexpected view: %+v", view)
	}

	stored, err := repo.FindByUserName(context.Background(), "alice")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.PasswordHash == "Valid1Pass!" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	input := ports.RegisterUserInput{UserName: "alice", FullName: "Alice", Password: "Valid1Pass!"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_RegisterSanitizesFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	view, err := svc.Register(context.Background(), ports.RegisterUserInput{
		UserName: "bob",
		FullName: `Bob <script>alert("x")</script>`,
		Password: "Valid1Pass!",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if strings.Contains(view.FullName, "<script>") {
		t.Fatalf("script survived sanitization: %q", view.FullName)
	}
}

func TestUserService_PasswordPolicy(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"too short", "Ab1!", "Password must be more than 8 characters"},
		{"too long", strings.Repeat("Aa1!", 19), "Password must be less than 72 characters"},
		{"leading space", " Valid1Pass!", "Password must not start or end with a space"},
		{"trailing space", "Valid1Pass! ", "Password must not start or end with a space"},
		{"no upper case", "valid1pass!", "Password must contain at least 1 upper case, lower case, number and special character"},
		{"no lower case", "VALID1PASS!", "Password must contain at least 1 upper case, lower case, number and special character"},
		{"no digit", "ValidPass!", "Password must contain at least 1 upper case, lower case, number and special character"},
		{"no special", "Valid1Pass", "Password must contain at least 1 upper case, lower case, number and special character"},
	}

	repo := newStubUserRepo()
	svc := newUserService(repo)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), ports.RegisterUserInput{
				UserName: "policy-" + tc.name,
				FullName: "Policy Test",
				Password: tc.password,
			})
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Msg != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, ve.Msg)
			}
		})
	}
}

func TestUserService_PasswordPolicyAccepts(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	// Exactly 8 characters is accepted; the boundary is strictly below 8.
	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{
		UserName: "edge",
		FullName: "Edge",
		Password: "Aa1!Aa1!",
	}); err != nil {
		t.Fatalf("8-character password rejected: %v", err)
	}
}
