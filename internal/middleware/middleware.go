package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"bloglist/internal/models"
	"bloglist/internal/service"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity кладёт личность запроса в контекст
func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom достаёт личность запроса из контекста
func IdentityFrom(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*models.Identity)
	return identity, ok
}

// writeError - локальная копия JSON-ответа с ошибкой, чтобы не
// тянуть пакет handler
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Identity навешивается на защищённые маршруты по одному: один и тот
// же путь открыт для GET и PUT, но закрыт для DELETE, поэтому общий
// список публичных путей здесь не работает.
func Identity(authService service.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, models.ErrMissingCredential.Error(), http.StatusUnauthorized)
				return
			}

			// Проверяем формат "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeError(w, models.ErrInvalidCredential.Error(), http.StatusUnauthorized)
				return
			}

			identity, err := authService.ResolveIdentity(r.Context(), parts[1])
			if err != nil {
				switch {
				case errors.Is(err, models.ErrInvalidCredential),
					errors.Is(err, models.ErrUnknownUser):
					writeError(w, err.Error(), http.StatusUnauthorized)
				default:
					writeError(w, err.Error(), http.StatusInternalServerError)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		}
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
