package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/serializer"
	"github.com/sitegenie/sitegenie/internal/modules/service"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"go.uber.org/zap"
)

// maxPollErrors bounds consecutive failed status polls before the stream is closed.
const maxPollErrors = 5

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ExportHandler struct {
	svc          service.ExportService
	log          *zap.Logger
	pollInterval time.Duration
}

func NewExportHandler(s service.ExportService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{svc: s, log: log, pollInterval: time.Second}
}

type ExportAccepted struct {
	ExportID uuid.UUID       `json:"export_id"`
	Status   model.JobStatus `json:"status" example:"pending"`
}

func (h *ExportHandler) start(c *gin.Context, kind string) {
	project, ok := mustProject(c)
	if !ok {
		return
	}

	d, err := h.svc.Start(c.Request.Context(), project, kind)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	// the build has not started yet from the caller's point of view
	c.JSON(http.StatusAccepted, serializer.Response{
		Code: http.StatusAccepted,
		Data: ExportAccepted{ExportID: d.ID, Status: model.JobStatusPending},
	})
}

// StartExport godoc
//
//	@Summary		Export site
//	@Description	Build a static site archive in the background
//	@Tags			export
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		202	{object}	serializer.Response{data=handler.ExportAccepted}
//	@Router			/projects/{project_id}/export [post]
func (h *ExportHandler) StartExport(c *gin.Context) {
	h.start(c, model.DeploymentKindExport)
}

// StartPublish godoc
//
//	@Summary		Publish site
//	@Description	Build the site and mark the project as published once done
//	@Tags			export
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		202	{object}	serializer.Response{data=handler.ExportAccepted}
//	@Router			/projects/{project_id}/publish [post]
func (h *ExportHandler) StartPublish(c *gin.Context) {
	h.start(c, model.DeploymentKindPublish)
}

// ListExports godoc
//
//	@Summary	List exports
//	@Tags		export
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.DeploymentLog}
//	@Router		/projects/{project_id}/export [get]
func (h *ExportHandler) ListExports(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	logs, err := h.svc.List(c.Request.Context(), project.ID)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: logs})
}

// GetExportStatus godoc
//
//	@Summary		Export status
//	@Description	Poll an export or publish run
//	@Tags			export
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	format(uuid)
//	@Param			export_id	path	string	true	"Export ID"		format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ExportStatus}
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/export/{export_id} [get]
func (h *ExportHandler) GetExportStatus(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	exportID, ok := uuidParam(c, "export_id")
	if !ok {
		return
	}

	st, err := h.svc.Status(c.Request.Context(), project.ID, exportID)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: st})
}

// DownloadExport godoc
//
//	@Summary		Download export
//	@Description	Stream the site archive of a completed run
//	@Tags			export
//	@Produce		application/zip
//	@Param			project_id	path	string	true	"Project ID"	format(uuid)
//	@Param			export_id	path	string	true	"Export ID"		format(uuid)
//	@Security		BearerAuth
//	@Success		200	{file}		binary
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/export/{export_id}/download [get]
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	exportID, ok := uuidParam(c, "export_id")
	if !ok {
		return
	}

	a, err := h.svc.Open(c.Request.Context(), project.ID, exportID)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	defer a.Body.Close()

	c.DataFromReader(http.StatusOK, a.Size, "application/zip", a.Body, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, a.FileName),
	})
}

// StreamExportStatus godoc
//
//	@Summary		Export status stream
//	@Description	WebSocket that pushes the export status every second until the run finishes
//	@Tags			export
//	@Param			project_id	path	string	true	"Project ID"	format(uuid)
//	@Param			export_id	path	string	true	"Export ID"		format(uuid)
//	@Security		BearerAuth
//	@Success		101
//	@Router			/projects/{project_id}/export/{export_id}/ws [get]
func (h *ExportHandler) StreamExportStatus(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	exportID, ok := uuidParam(c, "export_id")
	if !ok {
		return
	}

	// unknown exports are rejected before the upgrade
	st, err := h.svc.Status(c.Request.Context(), project.ID, exportID)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Sugar().Warnw("websocket upgrade", "export_id", exportID, "err", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()
	fresh, failures := true, 0
	for {
		if fresh {
			if err := conn.WriteJSON(serializer.Response{Code: http.StatusOK, Data: st}); err != nil {
				return
			}
		}
		if st.Status.IsTerminal() {
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(st.Status)))
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		next, err := h.svc.Status(ctx, project.ID, exportID)
		switch {
		case apperr.IsKind(err, apperr.KindNotFound):
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "export not found"))
			return
		case err != nil:
			h.log.Sugar().Warnw("poll export status", "export_id", exportID, "err", err)
			failures++
			if failures >= maxPollErrors {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "export status unavailable"))
				return
			}
			fresh = false
			continue
		}
		st, fresh, failures = next, true, 0
	}
}
