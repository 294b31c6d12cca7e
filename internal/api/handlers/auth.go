package handlers

import (
	"net/http"

	"github.com/atopal/blog-backend/internal/api/httpx"
	"github.com/atopal/blog-backend/internal/models"
	"github.com/atopal/blog-backend/internal/services"
)

// AuthHandler serves login and token refresh for the user directory.
type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResp struct {
	User         *models.User `json:"user,omitempty"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := bind(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	u, access, refresh, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResp{User: &u, AccessToken: access, RefreshToken: refresh})
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if err := bind(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	access, refresh, err := h.users.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResp{AccessToken: access, RefreshToken: refresh})
}
