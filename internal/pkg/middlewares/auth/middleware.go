package auth

import (
	"errors"
	"net/http"
	"strings"

	"food-delivery/internal/pkg/httpio"
	"food-delivery/internal/pkg/reqctx"
	authservice "food-delivery/internal/service/auth"
	"food-delivery/pkg/logger"
)

// Middleware кладет в контекст запроса пользователя из bearer-токена.
// Токен в ?token= принимается для websocket, где браузер не может задать заголовок.
func Middleware(log handlerLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				httpio.WriteError(w, log, http.StatusUnauthorized, httpio.ErrUnauthorized)
				return
			}

			actor, err := authenticator.Authenticate(r.Context(), raw)
			if err != nil {
				switch {
				case errors.Is(err, authservice.ErrInvalidToken):
					w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
					httpio.WriteError(w, log, http.StatusUnauthorized, authservice.ErrInvalidToken)
				case errors.Is(err, authservice.ErrAccountInactive):
					httpio.WriteError(w, log, http.StatusForbidden, err)
				default:
					log.Warn("authenticate request",
						logger.NewField("path", r.URL.Path),
						logger.NewField("error", err),
					)
					httpio.WriteError(w, log, http.StatusInternalServerError, err)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(reqctx.WithActor(r.Context(), actor)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}
