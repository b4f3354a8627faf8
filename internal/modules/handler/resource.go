package handler

import (
	"net/http"

	"github.com/bizplatform/pmcore/internal/modules/serializer"
	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/bizplatform/pmcore/internal/pkg/authz"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ResourceHandler struct {
	svc service.ResourceService
}

func NewResourceHandler(s service.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: s}
}

type CreateResourceReq struct {
	UserID                 *uuid.UUID      `json:"user_id" swaggertype:"string" format:"uuid"`
	Name                   string          `json:"name" binding:"required" example:"Ana Lima"`
	WorkingHoursPerDay     float64         `json:"working_hours_per_day" example:"8"`
	AvailabilityPercentage float64         `json:"availability_percentage" example:"100"`
	HourlyRate             decimal.Decimal `json:"hourly_rate" swaggertype:"string" example:"85.00"`
}

// CreateResource godoc
//
//	@Summary		Create resource
//	@Tags			resource
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateResourceReq	true	"CreateResource payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Resource}
//	@Router			/resources [post]
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	if _, ok := requireCapability(c, authz.ManageResources); !ok {
		return
	}

	req := CreateResourceReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	r, err := h.svc.Create(c.Request.Context(), service.CreateResourceInput{
		UserID:                 req.UserID,
		Name:                   req.Name,
		WorkingHoursPerDay:     req.WorkingHoursPerDay,
		AvailabilityPercentage: req.AvailabilityPercentage,
		HourlyRate:             req.HourlyRate,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: r})
}

type CreateAssignmentReq struct {
	ProjectID uuid.UUID  `json:"project_id" binding:"required" swaggertype:"string" format:"uuid"`
	TaskID    *uuid.UUID `json:"task_id" swaggertype:"string" format:"uuid"`
	StartDate string     `json:"start_date" binding:"required" example:"2025-02-10"`
	EndDate   string     `json:"end_date" binding:"required" example:"2025-02-14"`
	Hours     float64    `json:"hours" example:"20"`
}

// CreateAssignment godoc
//
//	@Summary		Assign resource
//	@Description	Book hours of a resource on a project; hours are spread evenly over the days of the range
//	@Tags			resource
//	@Accept			json
//	@Produce		json
//	@Param			resource_id	path	string						true	"Resource ID"	Format(uuid)
//	@Param			payload		body	handler.CreateAssignmentReq	true	"Assignment"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ResourceAssignment}
//	@Router			/resources/{resource_id}/assignments [post]
func (h *ResourceHandler) CreateAssignment(c *gin.Context) {
	if _, ok := requireCapability(c, authz.ManageResources); !ok {
		return
	}
	resourceID, ok := pathUUID(c, "resource_id")
	if !ok {
		return
	}

	req := CreateAssignmentReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		respondErr(c, err)
		return
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		respondErr(c, err)
		return
	}

	a, err := h.svc.Assign(c.Request.Context(), resourceID, service.CreateAssignmentInput{
		ProjectID: req.ProjectID,
		TaskID:    req.TaskID,
		StartDate: start,
		EndDate:   end,
		Hours:     req.Hours,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: a})
}

type RangeReq struct {
	Start string `form:"start" json:"start" binding:"required" example:"2025-02-01"`
	End   string `form:"end" json:"end" binding:"required" example:"2025-02-28"`
}

// GetUtilization godoc
//
//	@Summary		Get resource utilization
//	@Description	Assigned versus available hours of one resource within [start, end]
//	@Tags			resource
//	@Produce		json
//	@Param			resource_id	path	string	true	"Resource ID"	Format(uuid)
//	@Param			start		query	string	true	"First day (YYYY-MM-DD)"
//	@Param			end			query	string	true	"Last day (YYYY-MM-DD)"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=analytics.Utilization}
//	@Router			/resources/{resource_id}/utilization [get]
func (h *ResourceHandler) GetUtilization(c *gin.Context) {
	if _, ok := requireCapability(c, authz.ViewResources); !ok {
		return
	}
	resourceID, ok := pathUUID(c, "resource_id")
	if !ok {
		return
	}
	req := RangeReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	start, err := parseDate("start", req.Start)
	if err != nil {
		respondErr(c, err)
		return
	}
	end, err := parseDate("end", req.End)
	if err != nil {
		respondErr(c, err)
		return
	}

	u, err := h.svc.Utilization(c.Request.Context(), resourceID, start, end)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: u})
}

// GetCapacity godoc
//
//	@Summary		Get capacity report
//	@Description	Utilization and capacity class of every resource within [start, end]
//	@Tags			resource
//	@Produce		json
//	@Param			start	query	string	true	"First day (YYYY-MM-DD)"
//	@Param			end		query	string	true	"Last day (YYYY-MM-DD)"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]analytics.Utilization}
//	@Router			/resources/capacity [get]
func (h *ResourceHandler) GetCapacity(c *gin.Context) {
	if _, ok := requireCapability(c, authz.ViewResources); !ok {
		return
	}
	req := RangeReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	start, err := parseDate("start", req.Start)
	if err != nil {
		respondErr(c, err)
		return
	}
	end, err := parseDate("end", req.End)
	if err != nil {
		respondErr(c, err)
		return
	}

	out, err := h.svc.Capacity(c.Request.Context(), start, end)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
