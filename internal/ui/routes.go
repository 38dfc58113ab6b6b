package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes attaches all UI routes. Vault routes are gated behind
// RequireLogin; the index, auth pages and public profiles are not.
func MountRoutes(r chi.Router, h *Handler) {
	r.Use(h.WithSession)

	r.Get("/", h.Index)
	r.Get("/signup", h.SignupPage)
	r.Post("/signup", h.SignupSubmit)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)
	r.Get("/logout", h.Logout)

	r.Get("/profile/{profileUsername}", h.Profile)

	r.Group(func(r chi.Router) {
		r.Use(RequireLogin)
		r.Get("/vault", h.VaultList)
		r.Get("/create-password", h.CreateEntryPage)
		r.Post("/create-password", h.CreateEntrySubmit)
		r.Get("/password/{passwordID}", h.EntryDetail)
		r.Get("/password/{passwordID}/update", h.EditEntryPage)
		r.Post("/password/{passwordID}/update", h.EditEntrySubmit)
		r.Get("/password/{passwordID}/delete", h.ConfirmDeletePage)
		r.Get("/delpass/{passwordID}", h.DeleteEntry)
		r.Get("/delete-password/", h.DeadDeleteEntry)
		r.Post("/search", h.SearchSubmit)
		r.Get("/search/{searchQuery}", h.SearchResults)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.renderErrorPage(w, r, http.StatusNotFound, "page not found", nil)
	})
}
