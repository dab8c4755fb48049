// Package service defines interfaces for external collaborators the
// application depends on: the auth provider, the generative AI service, the
// media host, the event bus and the push sender.
package service

import "context"

// Identity is the provider-issued session identity. It is independent of the
// application role, which lives only in the document store.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// IdentityVerifier validates a provider ID token and returns the identity it
// asserts.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
