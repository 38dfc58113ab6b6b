package ui

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/avolkov/passvault/internal/errs"
)

// renderError is the single funnel for handler failures: it maps the error
// to a status, logs it, and renders the error page. Unauthenticated is the
// one exception — it redirects to the login page instead.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errs.ErrUnauthenticated) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	status := http.StatusInternalServerError
	msg := "something went wrong"
	switch {
	case errors.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
		msg = "not found"
	case errors.Is(err, errs.ErrValidation):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, errs.ErrAlreadyExists):
		status = http.StatusConflict
		msg = "already exists"
	}

	if status >= 500 {
		h.Log.Error("handler error", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		h.Log.Info("handler error", zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))
	}

	h.renderErrorPage(w, r, status, msg, err)
}

// renderErrorPage renders the error view. The underlying error detail is
// shown only outside production.
func (h *Handler) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	detail := ""
	if !h.Production && err != nil {
		detail = err.Error()
	}
	principal, _ := PrincipalFromCtx(r.Context())
	renderHTML(w, status, errorPage(principal, status, msg, detail))
}
