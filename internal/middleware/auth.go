package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sitegenie/sitegenie/internal/modules/serializer"
	"github.com/sitegenie/sitegenie/internal/modules/service"
)

// UserAuth returns a middleware that authenticates requests using user bearer tokens.
// It resolves the token to a live session and sets "user" and "session" in the context.
// It also sets the user_id attribute on the current span for telemetry filtering.
func UserAuth(svc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		user, sess, err := svc.Authenticate(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(serializer.FromError(err))
			return
		}

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.SetAttributes(attribute.String("user_id", user.ID.String()))
		}

		c.Set("user", user)
		c.Set("session", sess)
		c.Next()
	}
}

// ProjectScope loads :project_id for the authenticated user and sets "project"
// in the context. Projects owned by someone else are reported as not found.
func ProjectScope(svc service.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("project_id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, serializer.ParamErr("invalid project_id", err))
			return
		}
		user, ok := currentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		project, err := svc.Get(c.Request.Context(), user.ID, projectID)
		if err != nil {
			c.AbortWithStatusJSON(serializer.FromError(err))
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
