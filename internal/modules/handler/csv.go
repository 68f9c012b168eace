package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/serializer"
	"github.com/sitegenie/sitegenie/internal/modules/service"
)

type CSVHandler struct {
	svc service.CSVService
}

func NewCSVHandler(s service.CSVService) *CSVHandler {
	return &CSVHandler{svc: s}
}

type CSVAccepted struct {
	UploadID uuid.UUID       `json:"upload_id"`
	Status   model.JobStatus `json:"status" example:"pending"`
}

// UploadCSV godoc
//
//	@Summary		Upload pages CSV
//	@Description	Store a CSV of page definitions and ingest it in the background. Poll the upload for the result.
//	@Tags			csv
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			project_id	path		string	true	"Project ID"	format(uuid)
//	@Param			file		formData	file	true	"CSV file"
//	@Security		BearerAuth
//	@Success		202	{object}	serializer.Response{data=handler.CSVAccepted}
//	@Router			/projects/{project_id}/csv [post]
func (h *CSVHandler) UploadCSV(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	project, ok := mustProject(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("file is required", err))
		return
	}

	u, err := h.svc.Start(c.Request.Context(), service.StartCSVInput{
		UserID:    user.ID,
		ProjectID: project.ID,
		File:      fh,
	})
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusAccepted, serializer.Response{
		Code: http.StatusAccepted,
		Data: CSVAccepted{UploadID: u.ID, Status: u.Status},
	})
}

// PreviewCSV godoc
//
//	@Summary		Preview pages CSV
//	@Description	Parse and validate a CSV without saving anything
//	@Tags			csv
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			project_id	path		string	true	"Project ID"	format(uuid)
//	@Param			file		formData	file	true	"CSV file"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.CSVPreviewOutput}
//	@Router			/projects/{project_id}/csv/preview [post]
func (h *CSVHandler) PreviewCSV(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("file is required", err))
		return
	}

	out, err := h.svc.Preview(c.Request.Context(), project.ID, fh)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: out})
}

// GetCSVUpload godoc
//
//	@Summary	Get CSV upload
//	@Tags		csv
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Param		upload_id	path	string	true	"Upload ID"		format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.CSVUpload}
//	@Failure	404	{object}	serializer.Response
//	@Router		/projects/{project_id}/csv/{upload_id} [get]
func (h *CSVHandler) GetCSVUpload(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	uploadID, ok := uuidParam(c, "upload_id")
	if !ok {
		return
	}

	u, err := h.svc.Get(c.Request.Context(), project.ID, uploadID)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: u})
}

// ListCSVUploads godoc
//
//	@Summary	List CSV uploads
//	@Tags		csv
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.CSVUpload}
//	@Router		/projects/{project_id}/csv [get]
func (h *CSVHandler) ListCSVUploads(c *gin.Context) {
	project, ok := mustProject(c)
	if !ok {
		return
	}
	uploads, err := h.svc.List(c.Request.Context(), project.ID)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Data: uploads})
}
