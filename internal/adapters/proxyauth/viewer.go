// Package proxyauth reads the viewer supplied by an upstream authenticating proxy.
package proxyauth

import (
	"context"
	"net/http"
	"strings"

	"valk_landing/internal/domain"
)

const (
	DefaultUserHeader = "X-Forwarded-User"
	DefaultNameHeader = "X-Forwarded-Preferred-Username"
)

type Resolver struct {
	UserHeader string
	NameHeader string
}

func NewResolver(userHeader, nameHeader string) Resolver {
	if userHeader == "" {
		userHeader = DefaultUserHeader
	}
	if nameHeader == "" {
		nameHeader = DefaultNameHeader
	}
	return Resolver{UserHeader: userHeader, NameHeader: nameHeader}
}

// Viewer is authenticated iff the user header is set. The user record is
// present only when the proxy also sent a display name.
func (res Resolver) Viewer(r *http.Request) domain.Viewer {
	if strings.TrimSpace(r.Header.Get(res.UserHeader)) == "" {
		return domain.Viewer{}
	}
	v := domain.Viewer{Authenticated: true}
	if name := strings.TrimSpace(r.Header.Get(res.NameHeader)); name != "" {
		v.User = &domain.User{Name: name}
	}
	return v
}

type ctxKey struct{}

// Middleware puts the resolved viewer into the request context.
func (res Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ctxKey{}, res.Viewer(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the viewer set by Middleware, or an anonymous viewer.
func FromContext(ctx context.Context) domain.Viewer {
	v, _ := ctx.Value(ctxKey{}).(domain.Viewer)
	return v
}
