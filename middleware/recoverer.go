package appmiddleware

import (
	"net/http"
	"runtime/debug"
	"triviaapi/utils"

	"github.com/rs/zerolog/hlog"
)

// Recoverer turns a handler panic into the 500 error envelope.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			hlog.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			utils.SendError(w, http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
