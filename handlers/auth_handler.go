package handlers

import (
	"encoding/json"
	"net/http"
	"triviaapi/models"
	"triviaapi/utils"

	"github.com/rs/zerolog/hlog"
)

// POST /api/auth/token, only mounted when admin auth is configured.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest)
		return
	}

	var creds models.Credentials
	if err := json.Unmarshal(body, &creds); err != nil {
		utils.SendError(w, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(creds); err != nil {
		utils.SendError(w, http.StatusBadRequest)
		return
	}

	token, expiresAt, err := h.auth.IssueToken(creds.Password)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("admin token refused")
		utils.SendError(w, http.StatusUnauthorized)
		return
	}

	utils.SendSuccess(w, models.TokenResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	})
}
