package authapi

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/authn"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

func (s *Service) home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Bienvenue"})
}

func (s *Service) status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// register creates a user from the email and password form fields.
func (s *Service) register(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	pass := r.FormValue("password")

	user, err := s.auth.Register(r.Context(), email, pass)
	if err != nil {
		if errors.Is(err, authn.ErrAlreadyRegistered) {
			respondJSON(w, http.StatusBadRequest, map[string]string{"message": "email already registered"})
			return
		}
		s.log.ErrorContext(r.Context(), "registration failed", logger.Error(err), logger.Component("authapi"))
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"email":   user.Email,
		"message": "user created",
	})
}

// login validates the credentials and sets the session cookie.
func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	pass := r.FormValue("password")

	token, err := s.auth.Login(r.Context(), email, pass)
	if err != nil {
		if errors.Is(err, authn.ErrUnauthorized) {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		s.log.ErrorContext(r.Context(), "login failed", logger.Error(err), logger.Component("authapi"))
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, map[string]string{
		"email":   email,
		"message": "logged in",
	})
}

// logout destroys the caller's sessions and clears the cookie.
func (s *Service) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context(), s.sessionToken(r)); err != nil {
		respondError(w, http.StatusForbidden, "Forbidden")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// profile returns the email of the session's owner.
func (s *Service) profile(w http.ResponseWriter, r *http.Request) {
	user, err := s.auth.UserFromSession(r.Context(), s.sessionToken(r))
	if err != nil {
		respondError(w, http.StatusForbidden, "Forbidden")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"email": user.Email})
}

// requestPasswordReset issues a reset token for the given email. The token
// is returned in the response; delivery is the deployment's concern.
func (s *Service) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")

	token, err := s.auth.RequestPasswordReset(r.Context(), email)
	if err != nil {
		respondError(w, http.StatusForbidden, "Forbidden")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"email":       email,
		"reset_token": token,
	})
}

// updatePassword consumes a reset token and stores the new password.
func (s *Service) updatePassword(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	resetToken := r.FormValue("reset_token")
	newPass := r.FormValue("new_password")

	if err := s.auth.UpdatePassword(r.Context(), resetToken, newPass); err != nil {
		respondError(w, http.StatusForbidden, "Forbidden")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"email":   email,
		"message": "Password updated",
	})
}

// sessionToken reads the session cookie, returning "" when absent.
func (s *Service) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(s.cfg.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
