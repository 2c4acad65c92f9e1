package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/billwiliams/fyyur/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminRealm = `Basic realm="fyyur admin", charset="UTF-8"`

// AdminAuth protects mutating routes with HTTP basic auth checked against a
// bcrypt hash. With no hash configured every request passes through.
func AdminAuth(config utils.AdminConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if config.PasswordHash == "" {
			return next
		}

		hash := []byte(config.PasswordHash)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", adminRealm)
				utils.ResponseUnauthorized(w, "Missing admin credentials")
				return
			}

			if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
				logger.Warn("Admin check: bad password",
					zap.String("user", user),
					zap.String("path", r.URL.Path))
				w.Header().Set("WWW-Authenticate", adminRealm)
				utils.ResponseUnauthorized(w, "Invalid admin credentials")
				return
			}

			if subtle.ConstantTimeCompare([]byte(user), []byte(config.User)) != 1 {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user", user),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetAdminContext(r.Context(), user)))
		})
	}
}

// HashPassword returns the bcrypt hash to place in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
