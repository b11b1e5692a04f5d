package middleware

import (
	"net/http"

	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/domain/user"
	"github.com/stafflow/hr-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := auth.ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if !actor.IsAdmin() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
