package handler

import (
	"net/http"

	"github.com/bizplatform/pmcore/internal/modules/serializer"
	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type MetricsHandler struct {
	analytics service.AnalyticsService
	snapshots service.SnapshotService
	alerts    service.AlertService
}

func NewMetricsHandler(a service.AnalyticsService, s service.SnapshotService, alerts service.AlertService) *MetricsHandler {
	return &MetricsHandler{analytics: a, snapshots: s, alerts: alerts}
}

type MetricsReq struct {
	Locale string `form:"locale" json:"locale" example:"de"`
}

// locale prefers the query parameter, then the caller's profile.
func (req MetricsReq) locale(c *gin.Context) string {
	if req.Locale != "" {
		return req.Locale
	}
	if u, ok := currentUser(c); ok {
		return u.Locale
	}
	return ""
}

// GetMetrics godoc
//
//	@Summary		Get project metrics
//	@Description	Compute health, EVM, velocity and forecast for the project as of today. predicted_completion_date is null when no forecast can be made.
//	@Tags			metrics
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			locale		query	string	false	"Locale for localized names"	example:"de"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=analytics.Metrics}
//	@Router			/projects/{project_id}/metrics [get]
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}
	req := MetricsReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	m, err := h.analytics.ComputeAll(c.Request.Context(), project.ID, req.locale(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: m})
}

// GetBurndown godoc
//
//	@Summary		Get burndown
//	@Description	Ideal and actual remaining tasks per day between the project's start and end dates. Days without a snapshot are null.
//	@Tags			metrics
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=analytics.Burndown}
//	@Router			/projects/{project_id}/burndown [get]
func (h *MetricsHandler) GetBurndown(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}

	b, err := h.analytics.Burndown(c.Request.Context(), project.ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: b})
}

type CreateSnapshotReq struct {
	Date string `json:"date" example:"2025-02-14"`
}

// CreateSnapshot godoc
//
//	@Summary		Create snapshot
//	@Description	Record the project's metrics for a day (today by default). A second snapshot on the same day replaces the first.
//	@Tags			metrics
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string						true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.CreateSnapshotReq	false	"Snapshot date"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ProjectMetricsSnapshot}
//	@Router			/projects/{project_id}/snapshots [post]
func (h *MetricsHandler) CreateSnapshot(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}

	req := CreateSnapshotReq{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
			return
		}
	}
	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		respondErr(c, err)
		return
	}

	snap, err := h.snapshots.Create(c.Request.Context(), project.ID, date, service.TriggerAPI)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: snap})
}

type ListSnapshotsReq struct {
	Days int `form:"days,default=30" json:"days" binding:"min=1,max=366" example:"30"`
}

// ListSnapshots godoc
//
//	@Summary		Get metrics trend
//	@Description	Snapshots of the last N days, oldest first
//	@Tags			metrics
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			days		query	integer	false	"Window in days, default 30. Max 366."
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ProjectMetricsSnapshot}
//	@Router			/projects/{project_id}/snapshots [get]
func (h *MetricsHandler) ListSnapshots(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}
	req := ListSnapshotsReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	trend, err := h.snapshots.Trend(c.Request.Context(), project.ID, req.Days)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: trend})
}

// EvaluateAlerts godoc
//
//	@Summary		Evaluate alerts
//	@Description	Publish budget, health and forecast alerts for the project that have not fired today
//	@Tags			metrics
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]service.Alert}
//	@Router			/projects/{project_id}/alerts [post]
func (h *MetricsHandler) EvaluateAlerts(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}

	alerts, err := h.alerts.Evaluate(c.Request.Context(), project.ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: alerts})
}

// GetPortfolio godoc
//
//	@Summary		Get portfolio
//	@Description	Roll up health, budget and completion across the caller's projects
//	@Tags			metrics
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=analytics.Portfolio}
//	@Router			/portfolio [get]
func (h *MetricsHandler) GetPortfolio(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	p, err := h.analytics.Portfolio(c.Request.Context(), user)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: p})
}
