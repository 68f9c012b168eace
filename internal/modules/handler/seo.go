package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitegenie/sitegenie/internal/modules/serializer"
	"github.com/sitegenie/sitegenie/internal/modules/service"
)

type SEOHandler struct {
	svc service.SEOService
}

func NewSEOHandler(s service.SEOService) *SEOHandler {
	return &SEOHandler{svc: s}
}

type UpsertSEOReq struct {
	MetaTitle         string   `json:"meta_title" example:"Acme Coffee | Fresh roasted beans"`
	MetaDescription   string   `json:"meta_description" example:"Small batch coffee roasted daily."`
	FocusKeyword      string   `json:"focus_keyword" example:"coffee beans"`
	SecondaryKeywords []string `json:"secondary_keywords" example:"espresso,roastery"`
}

// UpsertSEO godoc
//
//	@Summary		Set SEO metadata
//	@Description	Create or replace the SEO metadata of a page. The last write wins.
//	@Tags			seo
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	format(uuid)
//	@Param			page_id		path	string					true	"Page ID"		format(uuid)
//	@Param			payload		body	handler.UpsertSEOReq	true	"SEO payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.SEOMetadata}
//	@Router			/projects/{project_id}/pages/{page_id}/seo [put]
func (h *SEOHandler) UpsertSEO(c *gin.Context) {
	req := UpsertSEOReq{}
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

	m, err := h.svc.Upsert(c.Request.Context(), service.UpsertSEOInput{
		ProjectID:         project.ID,
		PageID:            pageID,
		MetaTitle:         req.MetaTitle,
		MetaDescription:   req.MetaDescription,
		FocusKeyword:      req.FocusKeyword,
		SecondaryKeywords: req.SecondaryKeywords,
	})
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: m})
}

// GetSEO godoc
//
//	@Summary	Get SEO metadata
//	@Tags		seo
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Param		page_id		path	string	true	"Page ID"		format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.SEOMetadata}
//	@Failure	404	{object}	serializer.Response
//	@Router		/projects/{project_id}/pages/{page_id}/seo [get]
func (h *SEOHandler) GetSEO(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	pageID, ok := uuidParam(c, "page_id")
	if !ok {
		return
	}

	m, err := h.svc.Get(c.Request.Context(), project.ID, pageID)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: m})
}
