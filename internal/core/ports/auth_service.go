package ports

import "context"

// AuthService verifies tenant credentials.
type AuthService interface {
	// Login compares the submitted password against the stored credential
	// for domainID and returns the canonical domain id on success.
	Login(ctx context.Context, domainID, password string) (string, error)
}
