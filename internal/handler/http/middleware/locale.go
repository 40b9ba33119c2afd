package middleware

import (
	"net/http"
	"strings"

	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/i18n"
)

// Locale resolves the request language and stores it on the context. The
// lang query parameter wins over Accept-Language so a shared report link
// keeps its language regardless of the browser opening it.
func Locale(defaultLocale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			locale := r.URL.Query().Get("lang")
			if locale == "" {
				header := r.Header.Get("Accept-Language")
				if len(header) >= 2 {
					locale = strings.ToLower(header[:2])
				}
			}
			if locale != "en" && locale != "ur" {
				locale = defaultLocale
			}
			next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), locale)))
		}
		return http.HandlerFunc(hfn)
	}
}
