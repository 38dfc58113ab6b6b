package ui

import (
	"errors"
	"net/http"

	"github.com/avolkov/passvault/internal/errs"
)

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromCtx(r.Context())
	renderHTML(w, http.StatusOK, indexPage(principal))
}

func (h *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := PrincipalFromCtx(r.Context()); ok {
		http.Redirect(w, r, "/vault", http.StatusSeeOther)
		return
	}
	renderHTML(w, http.StatusOK, signupPage(""))
}

func (h *Handler) SignupSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, signupPage("invalid form"))
		return
	}
	username := r.Form.Get("username")
	password := r.Form.Get("password")

	u, err := h.Auth.Register(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAlreadyExists):
			renderHTML(w, http.StatusConflict, signupPage("username is already taken"))
		case errors.Is(err, errs.ErrValidation):
			renderHTML(w, http.StatusBadRequest, signupPage("username and password are required"))
		default:
			h.renderError(w, r, err)
		}
		return
	}

	// Registration logs the new user in right away.
	token, err := h.Sessions.Issue(r.Context(), u.ID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/vault", http.StatusSeeOther)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := PrincipalFromCtx(r.Context()); ok {
		http.Redirect(w, r, "/vault", http.StatusSeeOther)
		return
	}
	renderHTML(w, http.StatusOK, loginPage(""))
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, loginPage("invalid form"))
		return
	}
	username := r.Form.Get("username")
	password := r.Form.Get("password")

	u, err := h.Auth.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthenticated) {
			renderHTML(w, http.StatusUnauthorized, loginPage("wrong username or password"))
			return
		}
		h.renderError(w, r, err)
		return
	}

	token, err := h.Sessions.Issue(r.Context(), u.ID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/vault", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		if err := h.Sessions.Revoke(r.Context(), c.Value); err != nil {
			h.renderError(w, r, err)
			return
		}
	}
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
