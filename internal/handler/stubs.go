package handler

import (
	"net/http"

	"darkparadise-rest-api/pkg/apierror"
	"darkparadise-rest-api/pkg/response"
)

// DiscordAuth handles POST /api/auth/discord. Discord OAuth is not
// configured yet.
func DiscordAuth(w http.ResponseWriter, r *http.Request) {
	response.Error(w, apierror.NotImplemented("discord auth is not configured"))
}

// CreatePayment handles POST /api/payment/create. No payment provider is
// configured yet.
func CreatePayment(w http.ResponseWriter, r *http.Request) {
	response.Error(w, apierror.NotImplemented("payment provider is not configured"))
}
