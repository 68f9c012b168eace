package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitegenie/sitegenie/internal/modules/serializer"
	"github.com/sitegenie/sitegenie/internal/modules/service"
)

type AnalyticsHandler struct {
	svc service.AnalyticsService
}

func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: s}
}

// GetAnalytics godoc
//
//	@Summary		Project analytics
//	@Description	Page counts, SEO coverage, AI usage, upload and deployment totals
//	@Tags			analytics
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.AnalyticsSummary}
//	@Router			/projects/{project_id}/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	out, err := h.svc.Summary(c.Request.Context(), project.ID)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: out})
}
