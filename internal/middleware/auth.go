package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bizplatform/pmcore/internal/config"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/bizplatform/pmcore/internal/modules/serializer"
	"github.com/bizplatform/pmcore/internal/pkg/authz"
	"github.com/bizplatform/pmcore/internal/pkg/utils/tokens"
)

type UserLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type ProjectLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
}

// UserAuth authenticates HS256 bearer tokens and sets the user in the context.
// It also sets the user_id attribute on the current span.
func UserAuth(cfg *config.Config, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		userID, err := tokens.Parse(raw, cfg.Auth.JwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		user, err := users.Get(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.SetAttributes(attribute.String("user_id", user.ID.String()))
		}

		c.Set("user", user)
		c.Next()
	}
}

// ProjectAccess loads the project named by the project_id path parameter and
// lets the request through only if the user holds capability on it.
func ProjectAccess(projects ProjectLookup, capability authz.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("project_id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, serializer.ParamErr("invalid project_id", err))
			return
		}

		project, err := projects.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, serializer.NotFound("project not found", nil))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		v, _ := c.Get("user")
		user, _ := v.(*model.User)
		if !authz.Authorize(user, capability, project) {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.Forbidden(""))
			return
		}

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.SetAttributes(attribute.String("project_id", project.ID.String()))
		}

		c.Set("project", project)
		c.Next()
	}
}
