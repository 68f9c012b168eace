package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sitegenie/sitegenie/internal/modules/model"
)

func currentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	u, ok := v.(*model.User)
	return u, ok && u != nil
}
