package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atopal/blog-backend/internal/api/httpx"
	"github.com/atopal/blog-backend/internal/middleware"
	"github.com/atopal/blog-backend/internal/models"
	"github.com/atopal/blog-backend/internal/services"
)

type CommentHandler struct {
	svc *services.CommentService
}

func NewCommentHandler(svc *services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// createCommentReq deliberately has no author or is_approved field;
// whatever the payload carries for those is ignored.
type createCommentReq struct {
	Post string `json:"post" validate:"required"`
	Body string `json:"body" validate:"required"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	var req createCommentReq
	if err := bind(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	c, err := h.svc.Create(r.Context(), caller, req.Post, req.Body)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	c, err := h.svc.Get(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

type updateCommentReq struct {
	Body       *string `json:"body" validate:"omitempty,min=1"`
	IsApproved *bool   `json:"is_approved"`
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	var req updateCommentReq
	if err := bind(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	patch := models.CommentPatch{Body: req.Body, IsApproved: req.IsApproved}
	c, err := h.svc.Update(r.Context(), caller, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	if err := h.svc.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteNoContent(w)
}
