package request_meta

import (
	"net"
	"net/http"
	"strings"

	"food-delivery/internal/entities"
	"food-delivery/internal/pkg/reqctx"
)

const maxUserAgent = 500

// Middleware сохраняет IP и User-Agent клиента для журнала действий.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := entities.RequestMeta{
				IPAddress: clientIP(r),
				UserAgent: truncate(r.UserAgent(), maxUserAgent),
			}
			next.ServeHTTP(w, r.WithContext(reqctx.WithMeta(r.Context(), meta)))
		})
	}
}

// clientIP: первый адрес из X-Forwarded-For, затем X-Real-IP, затем адрес соединения.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip.String()
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
