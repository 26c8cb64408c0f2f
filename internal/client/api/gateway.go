// Package api contains the client for the DevTinder backend.
//
// The package provides:
//  1. A transport-agnostic contract (see the Gateway interface) covering
//     auth (login/signup) and profile/feed operations.
//  2. A concrete HTTP implementation (see HTTPGateway) that speaks the
//     backend's JSON REST API and maps failures to sentinel errors.
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized. Server-side rejections
// with a human-readable detail are *APIError values.
package api

import (
	"context"

	"github.com/Nidhi8595/DevTinder3/internal/client/models"
)

// Session is the payload of a successful login or signup: a bearer token and
// the authenticated user's record.
type Session struct {
	AccessToken string
	User        *models.User
}

// Gateway is the remote API surface consumed by the client. All methods
// honor context cancellation and timeouts.
type Gateway interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Signup(ctx context.Context, name, email, password string) (*Session, error)
	Profile(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, token string, p models.ProfileUpdate) (*models.User, error)
	Feed(ctx context.Context, token string) ([]*models.User, error)
	Connections(ctx context.Context, token string) ([]*models.User, error)
}
