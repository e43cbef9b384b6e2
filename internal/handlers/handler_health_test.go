package handlers

import (
	"testing"

	"oidcsync/internal/middlewares"
	"oidcsync/internal/testutil"
)

func TestHandlerHealth(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/healthz")
	defer tc.Finish()

	tc.CallHandler(HandlerHealth)

	tc.AssertStatus(t, 200)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "status", "OK")
}

func TestHandlerError(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/error")
	defer tc.Finish()

	errorHandler := func(ctx *middlewares.AppContext) {
		ctx.SetJSONError(400, "Bad Request")
	}

	tc.CallHandler(errorHandler)

	tc.AssertStatus(t, 400)
	tc.AssertJSONField(t, "error", "Bad Request")
}
