package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atopal/blog-backend/internal/api/httpx"
	"github.com/atopal/blog-backend/internal/middleware"
	"github.com/atopal/blog-backend/internal/models"
	"github.com/atopal/blog-backend/internal/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type registerReq struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"max=30"`
	LastName  string `json:"last_name" validate:"max=30"`
}

// Register is the one open write in the user directory. The created
// account is always non-staff and active; the password never appears in
// the response.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := bind(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	u, err := h.svc.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	users, err := h.svc.List(r.Context(), caller)
	if err != nil {
		writeErr(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	u, err := h.svc.Get(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

type updateUserReq struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=30"`
	LastName  *string `json:"last_name" validate:"omitempty,max=30"`
	IsStaff   *bool   `json:"is_staff"`
	IsActive  *bool   `json:"is_active"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	var req updateUserReq
	if err := bind(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	patch := models.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsStaff:   req.IsStaff,
		IsActive:  req.IsActive,
	}
	u, err := h.svc.Update(r.Context(), caller, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	if err := h.svc.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteNoContent(w)
}
