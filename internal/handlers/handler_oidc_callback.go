package handlers

import (
	"errors"
	"net/http"

	"oidcsync/internal/auth"
	"oidcsync/internal/middlewares"
)

func GETCallbackHandler(ctx *middlewares.AppContext) {
	claims, token, err := ctx.OIDCProvider.HandleCallback(ctx)
	if err != nil {
		var oidcErr *auth.OIDCError
		if errors.As(err, &oidcErr) {
			ctx.Logger.Warn("OIDC callback error", "error", oidcErr.Message)
			ctx.Redirect(oidcErr.RedirectURL, http.StatusFound)
			return
		}

		ctx.Logger.Error("failed to handle OIDC callback", "error", err)
		ctx.Redirect("/callback?error=auth_failed", http.StatusFound)
		return
	}

	ctx.SessionManager.SetAccessToken(ctx, token)
	ctx.SessionManager.SetIDTokenClaims(ctx, claims)
	ctx.SessionManager.SetUserInfoEndpoint(ctx, ctx.OIDCProvider.UserInfoEndpoint())

	identity, err := ctx.Refresh.UpdateUserInfo(ctx, ctx.SessionManager, token)
	if err != nil {
		ctx.Logger.Error("failed to provision user from OIDC claims", "error", err, "issuer", claims.Issuer, "subject", claims.Subject)
		ctx.Redirect("/callback?error=provisioning_failed", http.StatusFound)
		return
	}

	ctx.SessionManager.SetIdentity(ctx, identity)
	ctx.SessionManager.SetAuthenticated(ctx, true)

	ctx.Logger.Info("user successfully authenticated",
		"subject", claims.Subject,
		"username", identity.Name,
	)

	redirectTo := ctx.SessionManager.GetRedirectAfterLogin(ctx)
	if redirectTo != "" {
		ctx.Redirect(redirectTo, http.StatusFound)
		return
	}

	ctx.Redirect("/auth/complete?status=success", http.StatusFound)
}
