package access

import (
	"errors"
	"net/http"

	"celeris/internal/entities"
	"celeris/internal/service/access"
	"celeris/pkg/logger"
)

// RoleHeader несет роль вызывающего. Аутентификация живет во внешнем
// шлюзе, сюда заголовок приходит уже проверенным.
const RoleHeader = "X-Actor-Role"

func Middleware(log handlerLogger, checker Checker, capability entities.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleValue := r.Header.Get(RoleHeader)
			if roleValue == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			role := entities.Role(roleValue)

			err := checker.Check(role, capability)
			if err != nil {
				AccessDeniedTotal.WithLabelValues(roleValue, capability.String()).Inc()

				log.With(
					logger.NewField("role", roleValue),
					logger.NewField("capability", capability.String()),
					logger.NewField("path", r.URL.Path),
				).Warn("access denied")

				switch {
				case errors.Is(err, access.ErrUnknownRole):
					w.WriteHeader(http.StatusUnauthorized)
				default:
					w.WriteHeader(http.StatusForbidden)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
