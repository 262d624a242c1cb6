package appmiddleware

import (
	"net/http"
	"triviaapi/auth"
	"triviaapi/utils"

	"github.com/rs/zerolog/hlog"
)

// RequireAdmin rejects requests without a valid admin token. With auth
// disabled (nil authenticator) every request passes.
func RequireAdmin(a *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := a.Authorize(r); err != nil {
				hlog.FromRequest(r).Warn().Err(err).Msg("admin authorization failed")
				utils.SendError(w, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
