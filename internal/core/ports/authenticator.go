package ports

import (
	"context"

	"github.com/thingful/thingful-api/internal/core/auth"
	"github.com/thingful/thingful-api/internal/core/domain"
)

// Authenticator resolves an extracted, unverified credential into a verified
// Principal. There is one implementation per credential scheme; route
// configuration decides which one guards an endpoint.
type Authenticator interface {
	Scheme() auth.Scheme
	Authenticate(ctx context.Context, cred auth.Credential) (domain.Principal, error)
}
