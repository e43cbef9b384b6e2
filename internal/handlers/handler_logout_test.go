package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"oidcsync/internal/models"
	"oidcsync/internal/testutil"
)

func TestLogoutHandler_ShouldClearSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetIdentity(tc.AppContext).Return(&models.Identity{Name: "steve"}, true)
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(nil)

	tc.CallHandler(LogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "status", "OK")
	tc.AssertLogContains(t, slog.LevelInfo, "user logged out")
}

func TestLogoutHandler_ShouldSucceedWithoutIdentity(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetIdentity(tc.AppContext).Return(nil, false)
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(nil)

	tc.CallHandler(LogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "status", "OK")
	tc.AssertLogCount(t, slog.LevelInfo, 0)
}

func TestLogoutHandler_Should500OnLogoutFail(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetIdentity(tc.AppContext).Return(&models.Identity{Name: "steve"}, true)
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(errors.New("fail"))

	tc.CallHandler(LogoutHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "error", "Failed to logout")
	tc.AssertLogContains(t, slog.LevelError, "failed to logout user")
}
