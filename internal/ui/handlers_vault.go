package ui

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/avolkov/passvault/internal/errs"
	"github.com/avolkov/passvault/internal/model"
)

// entryIDFromPath parses the {passwordID} route parameter. A malformed ID
// behaves like a missing entry, not a server failure.
func entryIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "passwordID")
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad entry id %q", errs.ErrNotFound, raw)
	}
	return id, nil
}

func entryFieldsFromForm(r *http.Request) (model.EntryFields, error) {
	if err := r.ParseForm(); err != nil {
		return model.EntryFields{}, fmt.Errorf("%w: invalid form", errs.ErrValidation)
	}
	return model.EntryFields{
		Name:          r.Form.Get("name"),
		EntryUsername: r.Form.Get("username"),
		EntrySecret:   r.Form.Get("password"),
		Description:   r.Form.Get("description"),
		URL:           r.Form.Get("url"),
	}, nil
}

func (h *Handler) VaultList(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromCtx(r.Context())
	entries, err := h.Vault.List(r.Context(), principal.ID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, vaultPage(principal, entries))
}

func (h *Handler) CreateEntryPage(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromCtx(r.Context())
	renderHTML(w, http.StatusOK, createEntryPage(principal))
}

func (h *Handler) CreateEntrySubmit(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromCtx(r.Context())
	fields, err := entryFieldsFromForm(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	e, err := h.Vault.Create(r.Context(), principal.ID, fields)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/password/"+e.ID.String(), http.StatusSeeOther)
}

func (h *Handler) EntryDetail(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromCtx(r.Context())
	id, err := entryIDFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	e, err := h.Vault.Get(r.Context(), principal.ID, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, entryDetailPage(principal, *e))
}

func (h *Handler) EditEntryPage(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromCtx(r.Context())
	id, err := entryIDFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	e, err := h.Vault.Get(r.Context(), principal.ID, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, editEntryPage(principal, *e))
}

func (h *Handler) EditEntrySubmit(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromCtx(r.Context())
	id, err := entryIDFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	fields, err := entryFieldsFromForm(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err := h.Vault.Update(r.Context(), principal.ID, id, fields); err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/password/"+id.String(), http.StatusSeeOther)
}

func (h *Handler) ConfirmDeletePage(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromCtx(r.Context())
	id, err := entryIDFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	e, err := h.Vault.Get(r.Context(), principal.ID, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, confirmDeletePage(principal, *e))
}

func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromCtx(r.Context())
	id, err := entryIDFromPath(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err := h.Vault.Delete(r.Context(), principal.ID, id); err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/vault", http.StatusSeeOther)
}

// DeadDeleteEntry serves the legacy /delete-password/ path. The route never
// carries an entry ID, so there is nothing to delete; it only redirects.
// Kept so old links land on the vault instead of a 404.
func (h *Handler) DeadDeleteEntry(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/vault", http.StatusSeeOther)
}

func (h *Handler) SearchSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, fmt.Errorf("%w: invalid form", errs.ErrValidation))
		return
	}
	term := r.Form.Get("searchQuery")
	http.Redirect(w, r, "/search/"+url.PathEscape(term), http.StatusSeeOther)
}

func (h *Handler) SearchResults(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromCtx(r.Context())
	term := chi.URLParam(r, "searchQuery")
	if dec, err := url.PathUnescape(term); err == nil {
		term = dec
	}
	entries, err := h.Vault.Search(r.Context(), principal.ID, term)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, searchPage(principal, term, entries))
}
