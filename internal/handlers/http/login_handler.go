// internal/handlers/http/login_handler.go
package http

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
	"weatherpro/internal/middleware"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // epoch seconds
	User      string `json:"user"`
	Role      string `json:"role"`
}

// AdminCredentials come from config; PassHash is a bcrypt hash.
type AdminCredentials struct {
	User      string
	PassHash  string
	JWTSecret string
}

func LoginHandler(creds AdminCredentials) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in loginReq
		if err := decodeJSON(r, &in); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		if creds.User == "" || creds.PassHash == "" || creds.JWTSecret == "" {
			http.Error(w, "admin not configured", http.StatusForbidden)
			return
		}
		if in.Username != creds.User {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(creds.PassHash), []byte(in.Password)) != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		token, exp, err := middleware.GenerateAdminToken(creds.JWTSecret, creds.User)
		if err != nil {
			http.Error(w, "token error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, loginResp{
			Token:     token,
			ExpiresAt: exp,
			User:      creds.User,
			Role:      "admin",
		})
	}
}
