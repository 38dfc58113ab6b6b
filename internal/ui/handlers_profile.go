package ui

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/passvault/internal/errs"
)

// Profile renders a public profile page. No login required; an unknown
// username renders a not-found state rather than an error page.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromCtx(r.Context())
	username := chi.URLParam(r, "profileUsername")

	u, err := h.Directory.FindByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			renderHTML(w, http.StatusNotFound, profileNotFoundPage(principal, username))
			return
		}
		h.renderError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, profilePage(principal, u))
}
