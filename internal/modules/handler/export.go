package handler

import (
	"fmt"
	"net/http"

	"github.com/bizplatform/pmcore/internal/modules/serializer"
	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	svc service.ExportService
}

func NewExportHandler(s service.ExportService) *ExportHandler {
	return &ExportHandler{svc: s}
}

// DownloadExport godoc
//
//	@Summary		Download metrics workbook
//	@Description	Stream an xlsx workbook with summary, EVM, trend and burndown sheets
//	@Tags			export
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			locale		query	string	false	"Locale for localized names"
//	@Security		BearerAuth
//	@Success		200	{file}	file
//	@Router			/projects/{project_id}/export [get]
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}
	req := MetricsReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	exp, err := h.svc.Workbook(c.Request.Context(), project.ID, req.locale(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exp.Filename))
	c.Data(http.StatusOK, exp.ContentType, exp.Data)
}

// UploadExport godoc
//
//	@Summary		Upload metrics workbook
//	@Description	Store the xlsx workbook in object storage and return a presigned download URL
//	@Tags			export
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			locale		query	string	false	"Locale for localized names"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=service.UploadedExport}
//	@Router			/projects/{project_id}/export [post]
func (h *ExportHandler) UploadExport(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}
	req := MetricsReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Upload(c.Request.Context(), project.ID, req.locale(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}
