package middleware

import (
	"net/http"

	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

// RequireUser rejects requests that Auth left anonymous.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
