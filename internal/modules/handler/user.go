package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/serializer"
	"github.com/sitegenie/sitegenie/internal/modules/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

type RegisterReq struct {
	Email    string `json:"email" binding:"required" example:"owner@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery"`
	Name     string `json:"name" example:"Ada Lovelace"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required" example:"owner@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery"`
}

// Register godoc
//
//	@Summary		Register
//	@Description	Create an account and return a bearer token
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.RegisterReq	true	"Register payload"
//	@Success		201		{object}	serializer.Response{data=service.AuthOutput}
//	@Failure		409		{object}	serializer.Response
//	@Router			/users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	req := RegisterReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Code: http.StatusCreated, Data: out})
}

// Login godoc
//
//	@Summary		Login
//	@Description	Exchange email and password for a bearer token
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.LoginReq	true	"Login payload"
//	@Success		200		{object}	serializer.Response{data=service.AuthOutput}
//	@Failure		401		{object}	serializer.Response
//	@Router			/users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Login(c.Request.Context(), service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: out})
}

// Me godoc
//
//	@Summary	Current user
//	@Tags		user
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.User}
//	@Router		/users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: user})
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	Revoke the session behind the bearer token
//	@Tags			user
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	sess, ok := c.MustGet("session").(*model.Session)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}
	if err := h.svc.Logout(c.Request.Context(), sess.ID); err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Msg: "logged out"})
}
