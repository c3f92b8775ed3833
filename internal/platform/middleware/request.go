// Package middleware provides the HTTP middleware for the presentation facade.
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"gmarm/pkg/requestcontext"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderActorID   = "X-Actor-ID"
)

// RequestContext stamps every request with an id, a fixed "now" and the
// operator identity forwarded by the shell, so all rules in one submission
// see the same instant.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now())
		if actor := strings.TrimSpace(r.Header.Get(HeaderActorID)); actor != "" {
			ctx = requestcontext.WithActorID(ctx, actor)
		}
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
