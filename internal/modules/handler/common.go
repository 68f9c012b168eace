package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/serializer"
)

var (
	errNoUser    = errors.New("user not found in context")
	errNoProject = errors.New("project not found in context")
)

// mustUser returns the authenticated user or writes a 401.
func mustUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get("user")
	if u, isUser := v.(*model.User); ok && isUser && u != nil {
		return u, true
	}
	c.JSON(http.StatusUnauthorized, serializer.Err(http.StatusUnauthorized, "Unauthorized", errNoUser))
	return nil, false
}

// mustProject returns the project scoped by the router or writes a 400.
func mustProject(c *gin.Context) (*model.Project, bool) {
	v, ok := c.Get("project")
	if p, isProject := v.(*model.Project); ok && isProject && p != nil {
		return p, true
	}
	c.JSON(http.StatusBadRequest, serializer.ParamErr("", errNoProject))
	return nil, false
}

// uuidParam parses a path parameter or writes a 400.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid "+name, err))
		return uuid.Nil, false
	}
	return id, true
}
