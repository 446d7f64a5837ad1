package server

import (
	"net/http"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const refreshTokenCookie = "refresh_token"

type authResponse struct {
	User        *model.User `json:"user,omitempty"`
	AccessToken string      `json:"accessToken"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (x *Server) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    token,
		Path:     "/auth",
		MaxAge:   int(x.cfg.refreshCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   !x.cfg.insecureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}

func (x *Server) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !x.cfg.insecureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}

func (x *Server) writeAuthResult(w http.ResponseWriter, result *model.AuthResult) {
	x.setRefreshCookie(w, result.Tokens.RefreshToken)
	writeJSON(w, http.StatusOK, &authResponse{
		User:        result.User,
		AccessToken: result.Tokens.AccessToken,
	})
}

func (x *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var input model.RegisterInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := x.uc.Register(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	x.writeAuthResult(w, result)
}

func (x *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var input model.LoginInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := x.uc.Login(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	x.writeAuthResult(w, result)
}

// handleRefresh takes the refresh token from the cookie, or from the JSON
// body when the cookie is absent
func (x *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	token, err := refreshTokenFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pair, err := x.uc.RefreshToken(r.Context(), token)
	if err != nil {
		writeTokenError(w, r, types.RefreshToken, err)
		return
	}

	x.setRefreshCookie(w, pair.RefreshToken)
	writeJSON(w, http.StatusOK, &authResponse{AccessToken: pair.AccessToken})
}

func refreshTokenFrom(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	var req refreshRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			return "", err
		}
	}
	if req.RefreshToken == "" {
		return "", goerr.Wrap(types.ErrUnauthorized, "refresh token is required")
	}
	return req.RefreshToken, nil
}

func (x *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	payload := tokenPayloadFrom(r.Context())
	if payload == nil {
		writeError(w, r, goerr.Wrap(types.ErrUnauthorized, "no token payload"))
		return
	}

	if err := x.uc.Logout(r.Context(), payload.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	x.clearRefreshCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

func (x *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	payload := tokenPayloadFrom(r.Context())
	if payload == nil {
		writeError(w, r, goerr.Wrap(types.ErrUnauthorized, "no token payload"))
		return
	}

	user, err := x.uc.Me(r.Context(), payload.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
