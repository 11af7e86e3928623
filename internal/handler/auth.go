package handler

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/chasingSublimity/Traveler/internal/auth"
	"github.com/chasingSublimity/Traveler/internal/domain"
)

// FlashCookie carries the reason of a rejected login back to the page the
// client is redirected to.
const FlashCookie = "traveler_flash"

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// Login handles POST /login with a JSON or form-encoded body.
// Success sets the session cookie and redirects to /trips; rejection sets a
// flash cookie with the reason and redirects to /.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	creds, err := readLogin(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	session, err := s.sessions.Login(r.Context(), creds.UserName, creds.Password)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthenticated) {
			writeError(w, r, err)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     FlashCookie,
			Value:    url.QueryEscape(auth.Reason(err)),
			Path:     "/",
			MaxAge:   60,
			HttpOnly: true,
			Secure:   s.cookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(s.sessions.TTL() / time.Second),
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/trips", http.StatusSeeOther)
}

// Logout handles POST /logout. It deletes the session named by the cookie,
// if any, and clears the cookie.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.SessionCookie); err == nil && c.Value != "" {
		if err := s.sessions.Logout(r.Context(), c.Value); err != nil {
			writeError(w, r, err)
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// readLogin reads credentials from a JSON body, or from a form body for any
// other content type.
func readLogin(r *http.Request) (loginRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body loginRequest
		if err := decodeJSON(r, &body); err != nil {
			return loginRequest{}, err
		}
		return body, nil
	}

	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return loginRequest{}, err
		}
		return loginRequest{}, badRequest("malformed form body")
	}
	return loginRequest{UserName: r.PostFormValue("userName"), Password: r.PostFormValue("password")}, nil
}
