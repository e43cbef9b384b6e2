package middlewares

import (
	"net/http"
)

// RefreshCheck drives the userinfo refresh cadence: every authenticated
// request runs the single-slot timer protocol, which queues a background
// refresh once the stored expiration has elapsed.
func RefreshCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx != nil && appCtx.Refresh != nil && appCtx.SessionManager.IsAuthenticated(appCtx) {
			appCtx.Refresh.CheckUpdateUserInfo(appCtx, appCtx.SessionManager)
		}

		next.ServeHTTP(w, r)
	})
}
