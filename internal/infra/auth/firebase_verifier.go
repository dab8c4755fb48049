// Package auth adapts the Firebase Auth provider to the domain's
// IdentityVerifier contract.
package auth

import (
	"context"

	"haven/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates an IdentityVerifier backed by the Firebase Auth
// admin client.
func NewFirebaseVerifier(client *firebaseauth.Client) service.IdentityVerifier {
	return &firebaseVerifier{client: client}
}

// VerifyIDToken validates the token signature and expiry and maps the claims
// the provider asserts onto the session identity. Role and admin flags are
// deliberately absent here; they live only in the document store.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid ID token")
	}

	identity := &service.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.PhotoURL = picture
	}

	return identity, nil
}
