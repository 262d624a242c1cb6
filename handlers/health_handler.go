package handlers

import (
	"context"
	"net/http"
	"time"
	"triviaapi/models"
	"triviaapi/utils"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports whether the database answers within two seconds.
func Health(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			logStoreError(r, err, "health check")
			utils.SendError(w, http.StatusInternalServerError)
			return
		}
		utils.SendSuccess(w, models.HealthResponse{Success: true, Status: "ok"})
	}
}
