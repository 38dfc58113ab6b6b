// Package ui serves the server-rendered web interface: login, the vault
// pages, search and public profiles.
package ui

import (
	"net/http"

	"go.uber.org/zap"
	gomponents "maragu.dev/gomponents"

	"github.com/avolkov/passvault/internal/service"
	"github.com/avolkov/passvault/internal/session"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "vault_session"

// Handler wires services into HTTP handlers.
type Handler struct {
	Log        *zap.Logger
	Auth       service.AuthService
	Vault      service.VaultService
	Directory  service.DirectoryService
	Sessions   *session.Manager
	Production bool
}

// NewHandler constructs the UI handler with injected services.
func NewHandler(
	log *zap.Logger,
	auth service.AuthService,
	vault service.VaultService,
	directory service.DirectoryService,
	sessions *session.Manager,
	production bool,
) *Handler {
	return &Handler{
		Log:        log,
		Auth:       auth,
		Vault:      vault,
		Directory:  directory,
		Sessions:   sessions,
		Production: production,
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.Sessions.TTL().Seconds()),
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
