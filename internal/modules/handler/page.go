package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/serializer"
	"github.com/sitegenie/sitegenie/internal/modules/service"
)

type PageHandler struct {
	svc service.PageService
}

func NewPageHandler(s service.PageService) *PageHandler {
	return &PageHandler{svc: s}
}

type CreatePageReq struct {
	Title        string `json:"title" binding:"required" example:"Our Services"`
	URLSlug      string `json:"url_slug" binding:"required" example:"our-services"`
	Content      string `json:"content" example:"<p>What we do</p>"`
	IsPillarPage bool   `json:"is_pillar_page" example:"true"`
	ParentPageID string `json:"parent_page_id" format:"uuid"`
}

type UpdatePageReq struct {
	Title        *string `json:"title"`
	URLSlug      *string `json:"url_slug"`
	Content      *string `json:"content"`
	IsPillarPage *bool   `json:"is_pillar_page"`
	ParentPageID *string `json:"parent_page_id" format:"uuid"`
	// ClearParent turns the page into a root page.
	ClearParent bool `json:"clear_parent"`
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// CreatePage godoc
//
//	@Summary		Create page
//	@Description	Create a page; url_slug is normalised and must be unique within the project
//	@Tags			page
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	format(uuid)
//	@Param			payload		body	handler.CreatePageReq	true	"CreatePage payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Page}
//	@Failure		409	{object}	serializer.Response
//	@Router			/projects/{project_id}/pages [post]
func (h *PageHandler) CreatePage(c *gin.Context) {
	req := CreatePageReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	project, ok := mustProject(c)
	if !ok {
		return
	}
	parentID, err := parseOptionalUUID(req.ParentPageID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid parent_page_id", err))
		return
	}

	page, err := h.svc.Create(c.Request.Context(), service.CreatePageInput{
		ProjectID:    project.ID,
		Title:        req.Title,
		URLSlug:      req.URLSlug,
		Content:      req.Content,
		IsPillarPage: req.IsPillarPage,
		ParentPageID: parentID,
	})
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Code: http.StatusCreated, Data: page})
}

// ListPages godoc
//
//	@Summary	List pages
//	@Tags		page
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Page}
//	@Router		/projects/{project_id}/pages [get]
func (h *PageHandler) ListPages(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	pages, err := h.svc.List(c.Request.Context(), project.ID)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: pages})
}

// GetPageTree godoc
//
//	@Summary		Page hierarchy
//	@Description	Pages nested under their parents
//	@Tags			page
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.PageNode}
//	@Router			/projects/{project_id}/pages/tree [get]
func (h *PageHandler) GetPageTree(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	tree, err := h.svc.Tree(c.Request.Context(), project.ID)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: tree})
}

// GetPage godoc
//
//	@Summary	Get page
//	@Tags		page
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Param		page_id		path	string	true	"Page ID"		format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Page}
//	@Router		/projects/{project_id}/pages/{page_id} [get]
func (h *PageHandler) GetPage(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	pageID, ok := uuidParam(c, "page_id")
	if !ok {
		return
	}

	page, err := h.svc.Get(c.Request.Context(), project.ID, pageID)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: page})
}

// UpdatePage godoc
//
//	@Summary		Update page
//	@Description	Update page fields. Omitted fields are unchanged.
//	@Tags			page
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	format(uuid)
//	@Param			page_id		path	string					true	"Page ID"		format(uuid)
//	@Param			payload		body	handler.UpdatePageReq	true	"UpdatePage payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Page}
//	@Router			/projects/{project_id}/pages/{page_id} [put]
func (h *PageHandler) UpdatePage(c *gin.Context) {
	req := UpdatePageReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	project, ok := mustProject(c)
	if !ok {
		return
	}
	pageID, ok := uuidParam(c, "page_id")
	if !ok {
		return
	}

	in := service.UpdatePageInput{
		ProjectID:    project.ID,
		PageID:       pageID,
		Title:        req.Title,
		URLSlug:      req.URLSlug,
		Content:      req.Content,
		IsPillarPage: req.IsPillarPage,
		ClearParent:  req.ClearParent,
	}
	if req.ParentPageID != nil {
		parentID, err := parseOptionalUUID(*req.ParentPageID)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid parent_page_id", err))
			return
		}
		in.ParentPageID = parentID
	}

	page, err := h.svc.Update(c.Request.Context(), in)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: page})
}

// DeletePage godoc
//
//	@Summary		Delete page
//	@Description	Delete a page; its children become root pages
//	@Tags			page
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	format(uuid)
//	@Param			page_id		path	string	true	"Page ID"		format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/pages/{page_id} [delete]
func (h *PageHandler) DeletePage(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	pageID, ok := uuidParam(c, "page_id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), project.ID, pageID); err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Msg: "deleted"})
}
