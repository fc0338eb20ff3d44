package handler

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"tracking_service/internal/ctxdata"
	"tracking_service/internal/logging"
	"tracking_service/internal/model"
)

const (
	userIdHeader   = "X-User-Id"
	userRoleHeader = "X-User-Role"
)

// NewActorMiddleware resolves the identity forwarded by the gateway into an
// Actor. Unknown, inactive or role-mismatched identities get 401.
func NewActorMiddleware(identity IdentityService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			rawId := r.Header.Get(userIdHeader)
			rawRole := r.Header.Get(userRoleHeader)
			if rawId == "" || rawRole == "" {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no identity headers", zap.String("path", r.URL.Path))
				}
				writeErrorJSON(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
				return
			}

			id, err := strconv.ParseInt(rawId, 10, 64)
			if err != nil {
				writeErrorJSON(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
				return
			}
			role, err := model.ParseRole(rawRole)
			if err != nil {
				writeErrorJSON(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
				return
			}

			actor, err := identity.ResolveActor(ctx, id, role)
			if err != nil {
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxdata.WithActor(ctx, actor)))
		})
	}
}
