package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitegenie/sitegenie/internal/modules/serializer"
	"github.com/sitegenie/sitegenie/internal/modules/service"
)

type GenerationHandler struct {
	svc service.GenerationService
}

func NewGenerationHandler(s service.GenerationService) *GenerationHandler {
	return &GenerationHandler{svc: s}
}

type GenerateReq struct {
	Prompt string `json:"prompt" binding:"required" example:"Write an introduction for our espresso bar"`
}

// Generate godoc
//
//	@Summary		Generate page content
//	@Description	Ask the content provider for page content and store it on the page
//	@Tags			generation
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	format(uuid)
//	@Param			page_id		path	string				true	"Page ID"		format(uuid)
//	@Param			payload		body	handler.GenerateReq	true	"Generate payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.GenerateOutput}
//	@Failure		502	{object}	serializer.Response
//	@Router			/projects/{project_id}/pages/{page_id}/generate [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	req := GenerateReq{}
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

	out, err := h.svc.Generate(c.Request.Context(), service.GenerateInput{
		ProjectID: project.ID,
		PageID:    pageID,
		Prompt:    req.Prompt,
	})
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: out})
}

// GetGeneration godoc
//
//	@Summary	Get generation
//	@Tags		generation
//	@Produce	json
//	@Param		project_id		path	string	true	"Project ID"	format(uuid)
//	@Param		generation_id	path	string	true	"Generation ID"	format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.AIContentGeneration}
//	@Router		/projects/{project_id}/generations/{generation_id} [get]
func (h *GenerationHandler) GetGeneration(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "generation_id")
	if !ok {
		return
	}

	g, err := h.svc.Get(c.Request.Context(), project.ID, id)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: g})
}
