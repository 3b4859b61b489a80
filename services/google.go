package services

import (
	"context"

	apperrors "crm/errors"

	"google.golang.org/api/idtoken"
)

type GoogleIdentity struct {
	Email string
	Name  string
}

// GoogleVerifier checks a Google ID token and returns who it belongs to.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (GoogleIdentity, error)
}

type idTokenVerifier struct {
	clientID string
}

// NewGoogleVerifier returns nil when no client id is configured.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	if clientID == "" {
		return nil
	}
	return &idTokenVerifier{clientID: clientID}
}

func (v *idTokenVerifier) Verify(ctx context.Context, idToken string) (GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, idToken, v.clientID)
	if err != nil {
		return GoogleIdentity{}, apperrors.Unauthorized("Invalid Google token")
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return GoogleIdentity{}, apperrors.Unauthorized("Google account email is not verified")
	}
	name, _ := payload.Claims["name"].(string)

	return GoogleIdentity{Email: email, Name: name}, nil
}
