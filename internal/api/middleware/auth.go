package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dsmirn0v/AQS-BookingService/internal/api/handlers"
	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
)

const (
	msgMissingToken = "authorization required"
	msgInvalidToken = "invalid or expired token"
)

// principalKey ключ principal-а в context.Context
type principalKey struct{}

// claims структура claims токена, выпускаемого внешним auth-сервисом
// Сервис бронирований токены только проверяет и декодирует
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator проверяет bearer-токены и кладет principal в контекст
type Authenticator struct {
	secret []byte
}

// NewAuthenticator создает аутентификатор с HMAC секретом
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// PrincipalFromContext достает principal из контекста запроса
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// Require middleware, требующий валидный токен; без него возвращает 401
func (a *Authenticator) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := a.principalFromRequest(r)
		if err != nil {
			if err == errNoToken {
				handlers.RespondUnauthorized(w, msgMissingToken)
			} else {
				handlers.RespondUnauthorized(w, msgInvalidToken)
			}
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey{}, principal)))
	})
}

// Optional middleware, допускающий анонимные запросы: валидный токен кладет
// principal в контекст, отсутствие токена пропускает запрос как гостевой,
// некорректный токен - всё равно 401, чтобы не маскировать проблемы клиента
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := a.principalFromRequest(r)
		if err == errNoToken {
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey{}, principal)))
	})
}

var errNoToken = fmt.Errorf("no bearer token")

func (a *Authenticator) principalFromRequest(r *http.Request) (domain.Principal, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return domain.Principal{}, errNoToken
	}

	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return domain.Principal{}, fmt.Errorf("malformed authorization header")
	}

	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Principal{}, fmt.Errorf("parse token: %w", err)
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("invalid subject claim: %w", err)
	}

	role, ok := domain.ParseRole(c.Role)
	if !ok {
		return domain.Principal{}, fmt.Errorf("invalid role claim: %q", c.Role)
	}

	return domain.Principal{UserID: userID, Role: role}, nil
}
