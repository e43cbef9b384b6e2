package middlewares

import (
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"oidcsync/internal/models"
)

//go:generate mockgen -source=oidc_provider.go -destination=../mocks/oidc.go -package=mocks

// OIDCProvider owns the OpenID Connect handshake. The reconciliation engine
// only ever sees the validated claims it hands over.
type OIDCProvider interface {
	StartLogin(ctx *AppContext) (string, error)
	HandleCallback(ctx *AppContext) (*models.IDTokenClaims, *oauth2.Token, error)
	UserInfoEndpoint() string
	GetProvider() *oidc.Provider
	GetOAuth2Config() *oauth2.Config
}
