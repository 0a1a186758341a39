// Package auth contains the credential primitives: Authorization header
// parsing, bcrypt password hashing, and signed bearer token issue/verify.
package auth

import (
	"encoding/base64"
	"strings"

	"github.com/thingful/thingful-api/internal/core/domain"
)

// Scheme tags an extracted credential with the Authorization scheme it came from.
type Scheme string

const (
	SchemeBasic  Scheme = "Basic"
	SchemeBearer Scheme = "Bearer"
)

// Credential is the unverified identity claim extracted from an
// Authorization header. Username/Password are set for Basic credentials,
// Token for Bearer ones.
type Credential struct {
	Scheme   Scheme
	Username string
	Password string
	Token    string
}

// ExtractCredential parses a raw Authorization header value into a tagged
// Credential. It performs no verification and has no side effects.
func ExtractCredential(header string) (Credential, error) {
	if header == "" {
		return Credential{}, domain.ErrMissingCredentials
	}

	scheme, rest, ok := strings.Cut(header, " ")
	if !ok || rest == "" {
		return Credential{}, domain.ErrMalformedCredentials
	}

	switch {
	case strings.EqualFold(scheme, string(SchemeBasic)):
		return parseBasic(rest)
	case strings.EqualFold(scheme, string(SchemeBearer)):
		return Credential{Scheme: SchemeBearer, Token: rest}, nil
	default:
		return Credential{}, domain.ErrMalformedCredentials
	}
}

// parseBasic decodes a base64 "username:password" pair. The split happens on
// the first colon only, so passwords may themselves contain colons.
func parseBasic(token string) (Credential, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Credential{}, domain.ErrMalformedCredentials
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return Credential{}, domain.ErrMalformedCredentials
	}

	return Credential{Scheme: SchemeBasic, Username: username, Password: password}, nil
}
