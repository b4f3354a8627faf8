package handler

import (
	"net/http"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/serializer"
	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/bizplatform/pmcore/internal/pkg/authz"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	Code      string            `json:"code" example:"WEB-2025"`
	Name      string            `json:"name" binding:"required" example:"Website relaunch"`
	NameI18n  map[string]string `json:"name_i18n"`
	StartDate string            `json:"start_date" binding:"required" example:"2025-01-06"`
	EndDate   string            `json:"end_date" binding:"required" example:"2025-03-28"`
	Budget    decimal.Decimal   `json:"budget" swaggertype:"string" example:"25000.00"`
	Status    string            `json:"status" example:"active"`
	MemberIDs []string          `json:"member_ids"`
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a new project owned by the caller
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"CreateProject payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	user, ok := requireCapability(c, authz.CreateProject)
	if !ok {
		return
	}

	req := CreateProjectReq{}
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
	members, err := parseUUIDs("member_ids", req.MemberIDs)
	if err != nil {
		respondErr(c, err)
		return
	}

	project, err := h.svc.Create(c.Request.Context(), service.CreateProjectInput{
		Code:      req.Code,
		Name:      req.Name,
		NameI18n:  req.NameI18n,
		StartDate: start,
		EndDate:   end,
		Budget:    req.Budget,
		Status:    model.ProjectStatus(req.Status),
		OwnerID:   user.ID,
		MemberIDs: members,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: project})
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List the projects the caller owns or is a team member of
//	@Tags			project
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Project}
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	projects, err := h.svc.ListForUser(c.Request.Context(), user)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: projects})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: project})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete a project with its tasks, costs and snapshots
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{}
//	@Router			/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), project.ID); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}

type CreateCostReq struct {
	Category    string          `json:"category" binding:"required" example:"labor"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"1200.50"`
	Date        string          `json:"date" binding:"required" example:"2025-02-14"`
	Description string          `json:"description"`
}

// AddCost godoc
//
//	@Summary		Record cost
//	@Description	Append an entry to the project's cost ledger
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.CreateCostReq	true	"Cost entry"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ProjectCost}
//	@Router			/projects/{project_id}/costs [post]
func (h *ProjectHandler) AddCost(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}

	req := CreateCostReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		respondErr(c, err)
		return
	}

	cost, err := h.svc.AddCost(c.Request.Context(), project.ID, service.CreateCostInput{
		Category:    model.CostCategory(req.Category),
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: cost})
}
