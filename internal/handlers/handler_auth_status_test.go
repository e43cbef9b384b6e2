package handlers

import (
	"net/http"
	"testing"

	"oidcsync/internal/models"
	"oidcsync/internal/testutil"
)

func TestAuthStatusHandler_ShouldReturnUnauthorizedForAnonymousUser(t *testing.T) {
	tc := testutil.NewTestContext(t)
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "authenticated", false)
}

func TestAuthStatusHandler_ShouldReturnAuthorizedForKnownUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetIdentity(tc.AppContext).Return(&models.Identity{Name: "steve"}, true)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "authenticated", true)
	tc.AssertJSONObject(t, "identity", map[string]interface{}{
		"name": "steve",
	})
}

func TestAuthStatusHandler_ShouldReturnUnauthorizedOnMissingIdentity(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetIdentity(tc.AppContext).Return(nil, false)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "authenticated", false)
}
