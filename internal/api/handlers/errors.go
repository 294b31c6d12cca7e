package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/atopal/blog-backend/internal/api/httpx"
	"github.com/atopal/blog-backend/internal/api/validate"
	"github.com/atopal/blog-backend/internal/authz"
	repo "github.com/atopal/blog-backend/internal/repository"
	"github.com/atopal/blog-backend/internal/services"
)

// writeErr maps the service-layer error taxonomy onto status codes:
// validation 400, unauthenticated 401, forbidden 403, missing-or-hidden
// 404, anything else 500.
func writeErr(w http.ResponseWriter, err error) {
	var verrs validate.Errs
	if errors.As(err, &verrs) {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "validation failed", verrs.Fields())
		return
	}

	var denial *authz.Denial
	if errors.As(err, &denial) {
		switch denial.Reason {
		case authz.ReasonForbidden:
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "you do not have permission to perform this action", nil)
		case authz.ReasonHidden:
			httpx.WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
		default:
			httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "authentication required", nil)
		}
		return
	}

	switch {
	case errors.Is(err, repo.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", nil)
	default:
		slog.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
