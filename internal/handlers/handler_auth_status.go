package handlers

import (
	"net/http"

	"oidcsync/internal/middlewares"
	"oidcsync/internal/models"
)

type AuthStatusResponse struct {
	Authenticated bool             `json:"authenticated"`
	Identity      *models.Identity `json:"identity,omitempty"`
}

func AuthStatusHandler(ctx *middlewares.AppContext) {
	response := AuthStatusResponse{
		Authenticated: false,
	}

	if !ctx.SessionManager.IsAuthenticated(ctx) {
		ctx.WriteJSON(http.StatusUnauthorized, response)
		return
	}

	if identity, ok := ctx.SessionManager.GetIdentity(ctx); ok {
		response.Authenticated = true
		response.Identity = identity
		ctx.WriteJSON(http.StatusOK, response)
		return
	}

	ctx.WriteJSON(http.StatusUnauthorized, response)
}
