package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"oidcsync/internal/config"
	"oidcsync/internal/middlewares"
	"oidcsync/internal/models"
)

// NewRealOIDCProvider creates the real OIDC provider from discovery against
// the configured issuer.
func NewRealOIDCProvider(ctx context.Context, cfg config.OIDCConfig) (middlewares.OIDCProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       cfg.Scopes,
		RedirectURL:  cfg.RedirectURI,
	}

	return &RealOIDCProvider{
		provider:     provider,
		oauth2Config: oauth2Config,
	}, nil
}

type RealOIDCProvider struct {
	provider     *oidc.Provider
	oauth2Config *oauth2.Config
}

func (r *RealOIDCProvider) GetProvider() *oidc.Provider {
	return r.provider
}

func (r *RealOIDCProvider) GetOAuth2Config() *oauth2.Config {
	return r.oauth2Config
}

// UserInfoEndpoint returns the userinfo endpoint discovered from the issuer.
func (r *RealOIDCProvider) UserInfoEndpoint() string {
	return r.provider.UserInfoEndpoint()
}

func (r *RealOIDCProvider) generateRandString(bytes int) string {
	if bytes <= 0 {
		bytes = 32
	}

	b := make([]byte, bytes)
	_, _ = rand.Read(b)

	return base64.URLEncoding.EncodeToString(b)
}

func (r *RealOIDCProvider) generateCodeVerifier() (string, string) {
	b := make([]byte, 56)
	_, _ = rand.Read(b)

	codeVerifier := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b)
	hash := sha256.Sum256([]byte(codeVerifier))
	codeChallenge := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(hash[:])
	return codeVerifier, codeChallenge
}

func (r *RealOIDCProvider) StartLogin(ctx *middlewares.AppContext) (string, error) {
	state := r.generateRandString(32)
	nonce := r.generateRandString(32)
	codeVerifier, codeChallenge := r.generateCodeVerifier()

	ctx.SessionManager.SetOauthNonce(ctx, nonce)
	ctx.SessionManager.SetOauthState(ctx, state)
	ctx.SessionManager.SetOauthCodeVerifier(ctx, codeVerifier)

	authURL := r.oauth2Config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	return authURL, nil
}

// HandleCallback finishes the authorization-code exchange and returns the
// validated ID-token claims along with the access token used for the
// userinfo fetch.
func (r *RealOIDCProvider) HandleCallback(ctx *middlewares.AppContext) (*models.IDTokenClaims, *oauth2.Token, error) {
	if errorParam := ctx.Request.URL.Query().Get("error"); errorParam != "" {
		errorDescription := ctx.Request.URL.Query().Get("error_description")

		errorURL := fmt.Sprintf("/error?error=%s", url.QueryEscape(errorParam))
		if errorDescription != "" {
			errorURL += "&error_description=" + url.QueryEscape(errorDescription)
		}

		return nil, nil, &OIDCError{RedirectURL: errorURL, Message: errorParam}
	}

	storedState := ctx.SessionManager.GetOauthState(ctx)
	if storedState == "" {
		return nil, nil, &OIDCError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("No oauth state found in session"),
			Message:     "no oauth state found in session",
		}
	}

	receivedState := ctx.Request.URL.Query().Get("state")
	if receivedState != storedState {
		return nil, nil, &OIDCError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("Invalid state parameter"),
			Message:     "invalid state parameter",
		}
	}

	ctx.SessionManager.ClearOauthState(ctx)

	code := ctx.Request.URL.Query().Get("code")
	if code == "" {
		return nil, nil, &OIDCError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("No authorization code received"),
			Message:     "no authorization code received",
		}
	}

	verifierCode := ctx.SessionManager.GetOauthCodeVerifier(ctx)
	ctx.SessionManager.ClearOauthCodeVerifier(ctx)

	token, err := r.oauth2Config.Exchange(ctx.Request.Context(), code, oauth2.VerifierOption(verifierCode))
	if err != nil {
		return nil, nil, &OIDCError{
			RedirectURL: "/error?error=invalid_grant&error_description=" + url.QueryEscape("Failed to exchange code for token"),
			Message:     fmt.Sprintf("failed to exchange code for token: %v", err),
		}
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, nil, &OIDCError{
			RedirectURL: "/error?error=invalid_token&error_description=" + url.QueryEscape("No id_token found in oauth2 token"),
			Message:     "no id_token found in oauth2 token",
		}
	}

	verifier := r.provider.Verifier(&oidc.Config{ClientID: r.oauth2Config.ClientID})

	idToken, err := verifier.Verify(ctx.Request.Context(), rawIDToken)
	if err != nil {
		return nil, nil, &OIDCError{
			RedirectURL: "/error?error=invalid_token&error_description=" + url.QueryEscape("Failed to verify ID Token"),
			Message:     fmt.Sprintf("failed to verify ID Token: %v", err),
		}
	}

	claims, err := extractIDTokenClaims(idToken)
	if err != nil {
		return nil, nil, &OIDCError{
			RedirectURL: "/error?error=server_error&error_description=" + url.QueryEscape("Failed to extract claims from ID Token"),
			Message:     fmt.Sprintf("failed to extract claims from ID Token: %v", err),
		}
	}

	if claims.Nonce != ctx.SessionManager.GetOauthNonce(ctx) {
		return nil, nil, &OIDCError{
			RedirectURL: "/error?error=server_error&error_description=" + url.QueryEscape("Invalid Nonce"),
			Message:     "nonce in ID Token is invalid",
		}
	}

	ctx.SessionManager.ClearOauthNonce(ctx)

	return claims, token, nil
}

func extractIDTokenClaims(idToken *oidc.IDToken) (*models.IDTokenClaims, error) {
	var raw struct {
		Nonce string `json:"nonce"`
	}
	if err := idToken.Claims(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse id token claims: %w", err)
	}

	claims := &models.IDTokenClaims{
		Issuer:   idToken.Issuer,
		Subject:  idToken.Subject,
		Nonce:    raw.Nonce,
		Expiry:   idToken.Expiry.Unix(),
		IssuedAt: idToken.IssuedAt.Unix(),
	}

	if len(idToken.Audience) > 0 {
		claims.Audience = idToken.Audience[0]
	}

	return claims, nil
}
