package handlers

import (
	"net/http"

	"oidcsync/internal/middlewares"
)

func LogoutHandler(ctx *middlewares.AppContext) {
	identity, ok := ctx.SessionManager.GetIdentity(ctx)

	if err := ctx.SessionManager.Logout(ctx); err != nil {
		ctx.Logger.Error("failed to logout user", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to logout")
		return
	}

	if ok && identity != nil {
		ctx.Logger.Info("user logged out", "username", identity.Name)
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
