package middlewares

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"oidcsync/internal/models"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

// SessionProvider is the session-slot surface consumed by the handlers and
// the refresh scheduler. It is a superset of refresh.Slots.
type SessionProvider interface {
	SetIdentity(ctx context.Context, identity *models.Identity)
	GetIdentity(ctx context.Context) (*models.Identity, bool)
	SetAuthenticated(ctx context.Context, authenticated bool)
	IsAuthenticated(ctx context.Context) bool

	SetAccessToken(ctx context.Context, token *oauth2.Token)
	GetAccessToken(ctx context.Context) (*oauth2.Token, bool)
	SetIDTokenClaims(ctx context.Context, claims *models.IDTokenClaims)
	GetIDTokenClaims(ctx context.Context) (*models.IDTokenClaims, bool)
	SetUserInfoEndpoint(ctx context.Context, endpoint string)
	GetUserInfoEndpoint(ctx context.Context) (string, bool)
	SetUserInfoExpiration(ctx context.Context, expiration time.Time)
	TakeUserInfoExpiration(ctx context.Context) (time.Time, bool)

	SetRedirectAfterLogin(ctx context.Context, redirectAfterLogin string)
	GetRedirectAfterLogin(ctx context.Context) string
	SetOauthState(ctx context.Context, state string)
	GetOauthState(ctx context.Context) string
	ClearOauthState(ctx context.Context)
	SetOauthNonce(ctx context.Context, nonce string)
	GetOauthNonce(ctx context.Context) string
	ClearOauthNonce(ctx context.Context)
	SetOauthCodeVerifier(ctx context.Context, verifier string)
	GetOauthCodeVerifier(ctx context.Context) string
	ClearOauthCodeVerifier(ctx context.Context)

	Logout(ctx context.Context) error

	LoadAndSave(next http.Handler) http.Handler
}
