package handler

import (
	"net/http"

	"darkparadise-rest-api/internal/service"
	"darkparadise-rest-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// ProfileHandler serves external profile lookups.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// NicknameResponse carries a resolved display name.
type NicknameResponse struct {
	Nickname string `json:"nickname"`
}

// SteamNickname handles GET /api/steam-nickname/{steam_id}
func (h *ProfileHandler) SteamNickname(w http.ResponseWriter, r *http.Request) {
	nickname, err := h.profileService.SteamNickname(r.Context(), chi.URLParam(r, "steam_id"))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, NicknameResponse{Nickname: nickname})
}
