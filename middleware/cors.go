package appmiddleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var (
	allowedHeaders = []string{"Content-Type", "Authorization"}
	allowedMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
)

// APIHeaders advertises the accepted headers and methods on every /api response
// and answers OPTIONS itself. It must run after CORS so the full method list
// replaces the single method cors echoes on a preflight.
func APIHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CORS sets the origin headers for the given origins. Preflights are passed on
// to APIHeaders.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:     origins,
		AllowedMethods:     allowedMethods,
		AllowedHeaders:     allowedHeaders,
		ExposedHeaders:     []string{RequestIDHeader},
		MaxAge:             300,
		OptionsPassthrough: true,
	})
}
