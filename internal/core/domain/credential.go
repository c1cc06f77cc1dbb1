package domain

import "errors"

var ErrDomainNotFound = errors.New("domain not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// DomainCredential is the stored login material for a tenant. The ID is the
// canonical (lower-cased) tenant identifier; PasswordHash is a precomputed
// keyed hash compared byte-for-byte against the hash of a submitted password.
type DomainCredential struct {
	ID           string `json:"id" bson:"_id"`
	PasswordHash string `json:"-" bson:"password"`
}
