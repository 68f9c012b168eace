package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitegenie/sitegenie/internal/modules/serializer"
	"github.com/sitegenie/sitegenie/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	Name            string                 `json:"name" binding:"required" example:"Acme Coffee"`
	Description     string                 `json:"description" example:"Marketing site for the roastery"`
	DefaultLanguage string                 `json:"default_language" example:"en"`
	Design          map[string]interface{} `json:"design"`
}

type UpdateProjectReq struct {
	Name            *string `json:"name" example:"Acme Coffee"`
	Description     *string `json:"description"`
	Status          *string `json:"status" enums:"draft,published,archived"`
	DefaultLanguage *string `json:"default_language" example:"en"`
}

type ListProjectsReq struct {
	Limit    int    `form:"limit,default=20" json:"limit" binding:"required,min=1,max=200" example:"20"`
	Cursor   string `form:"cursor" json:"cursor"`
	TimeDesc bool   `form:"time_desc,default=false" json:"time_desc" example:"false"`
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a new website project owned by the caller
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"CreateProject payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	user, ok := mustUser(c)
	if !ok {
		return
	}

	project, err := h.svc.Create(c.Request.Context(), service.CreateProjectInput{
		UserID:          user.ID,
		Name:            req.Name,
		Description:     req.Description,
		DefaultLanguage: req.DefaultLanguage,
		Design:          req.Design,
	})
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Code: http.StatusCreated, Data: project})
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List the caller's projects with cursor pagination
//	@Tags			project
//	@Produce		json
//	@Param			limit		query	integer	false	"Limit of projects to return, default 20. Max 200."
//	@Param			cursor		query	string	false	"Cursor from the previous response"
//	@Param			time_desc	query	boolean	false	"Order by created_at descending"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ListProjectsOutput}
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	req := ListProjectsReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	user, ok := mustUser(c)
	if !ok {
		return
	}

	out, err := h.svc.List(c.Request.Context(), service.ListProjectsInput{
		UserID:   user.ID,
		Limit:    req.Limit,
		Cursor:   req.Cursor,
		TimeDesc: req.TimeDesc,
	})
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: out})
}

// GetProject godoc
//
//	@Summary	Get project
//	@Tags		project
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Project}
//	@Failure	404	{object}	serializer.Response
//	@Router		/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: project})
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Update name, description, status or default language. Omitted fields are unchanged.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string						true	"Project ID"	format(uuid)
//	@Param			payload		body	handler.UpdateProjectReq	true	"UpdateProject payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	req := UpdateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	project, ok := mustProject(c)
	if !ok {
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), project, service.UpdateProjectInput{
		Name:            req.Name,
		Description:     req.Description,
		Status:          req.Status,
		DefaultLanguage: req.DefaultLanguage,
	})
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: updated})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete a project with its pages, uploads, generations and deployments
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	project, ok := mustProject(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), user.ID, project.ID); err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Msg: "deleted"})
}

// GetDesign godoc
//
//	@Summary	Get design settings
//	@Tags		project
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=map[string]interface{}}
//	@Router		/projects/{project_id}/design [get]
func (h *ProjectHandler) GetDesign(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	design := map[string]interface{}(project.Design)
	if design == nil {
		design = map[string]interface{}{}
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: design})
}

// UpdateDesign godoc
//
//	@Summary		Replace design settings
//	@Description	Replace the free-form design document (colors, fonts, layout)
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	format(uuid)
//	@Param			payload		body	map[string]interface{}	true	"Design document"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/projects/{project_id}/design [put]
func (h *ProjectHandler) UpdateDesign(c *gin.Context) {
	var design map[string]interface{}
	if err := c.ShouldBindJSON(&design); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	project, ok := mustProject(c)
	if !ok {
		return
	}

	updated, err := h.svc.UpdateDesign(c.Request.Context(), project, design)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: updated})
}
