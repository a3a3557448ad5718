package middleware

import (
	"net/http"
	"strings"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"
	"repairdesk/pkg"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// RequireAuth validates the Bearer token and stashes the resulting Actor on
// the request context. When allowedRoles is non-empty the actor's role must
// be one of them; everything else is 403.
func RequireAuth(auth usecase.IAuthUseCase, allowedRoles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWith(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header required", http.StatusUnauthorized))
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || strings.TrimSpace(token) == "" {
			abortWith(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Bearer token required", http.StatusUnauthorized))
			return
		}

		actor, err := auth.ActorFromToken(strings.TrimSpace(token))
		if err != nil {
			abortWith(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized))
			return
		}

		if len(allowedRoles) > 0 {
			allowed := false
			for _, role := range allowedRoles {
				if role == actor.Role {
					allowed = true
					break
				}
			}
			if !allowed {
				abortWith(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Access denied", http.StatusForbidden))
				return
			}
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the authenticated actor set by RequireAuth.
func ActorFromContext(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
