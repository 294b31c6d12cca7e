package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atopal/blog-backend/internal/api/httpx"
	"github.com/atopal/blog-backend/internal/middleware"
	"github.com/atopal/blog-backend/internal/models"
	"github.com/atopal/blog-backend/internal/services"
)

type PostHandler struct {
	svc *services.PostService
}

func NewPostHandler(svc *services.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	posts, err := h.svc.List(r.Context(), caller)
	if err != nil {
		writeErr(w, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	httpx.WriteJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	p, err := h.svc.Get(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

type createPostReq struct {
	Title       string `json:"title" validate:"required,max=200"`
	Content     string `json:"content" validate:"required"`
	Excerpt     string `json:"excerpt" validate:"max=300"`
	IsPublished bool   `json:"is_published"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	var req createPostReq
	if err := bind(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	p, err := h.svc.Create(r.Context(), caller, req.Title, req.Content, req.Excerpt, req.IsPublished)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

type updatePostReq struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content     *string `json:"content" validate:"omitempty,min=1"`
	Excerpt     *string `json:"excerpt" validate:"omitempty,max=300"`
	IsPublished *bool   `json:"is_published"`
}

// Update serves PUT and PATCH alike: absent fields are left untouched.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	var req updatePostReq
	if err := bind(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	patch := models.PostPatch{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		IsPublished: req.IsPublished,
	}
	p, err := h.svc.Update(r.Context(), caller, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	if err := h.svc.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteNoContent(w)
}
