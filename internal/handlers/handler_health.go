package handlers

import (
	"oidcsync/internal/middlewares"
)

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.SetJSONStatus(200, "OK")
}
