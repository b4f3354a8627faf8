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

type TemplateHandler struct {
	svc service.TemplateService
}

func NewTemplateHandler(s service.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: s}
}

type TemplateTaskReq struct {
	SequenceNumber int               `json:"sequence_number" example:"0"`
	Title          string            `json:"title" binding:"required" example:"Kick-off"`
	TitleI18n      map[string]string `json:"title_i18n"`
	Description    string            `json:"description"`
	EstimatedHours float64           `json:"estimated_hours" example:"4"`
	AssigneeRole   string            `json:"assignee_role" example:"project_manager"`
	Priority       string            `json:"priority" example:"high"`
}

type TemplateDependencyReq struct {
	TaskSequence      int    `json:"task_sequence" example:"1"`
	DependsOnSequence int    `json:"depends_on_sequence" example:"0"`
	Type              string `json:"type" example:"finish_to_start"`
	LagDays           int    `json:"lag_days" example:"0"`
}

type CreateTemplateReq struct {
	Name                string                  `json:"name" binding:"required" example:"Website launch"`
	NameI18n            map[string]string       `json:"name_i18n"`
	CodePrefix          string                  `json:"code_prefix" example:"WEB"`
	Description         string                  `json:"description"`
	DefaultDurationDays int                     `json:"default_duration_days" example:"60"`
	EstimatedBudget     decimal.Decimal         `json:"estimated_budget" swaggertype:"string" example:"40000"`
	Tasks               []TemplateTaskReq       `json:"tasks" binding:"dive"`
	Dependencies        []TemplateDependencyReq `json:"dependencies"`
}

// CreateTemplate godoc
//
//	@Summary		Create template
//	@Description	Store a reusable project template. Dependencies refer to tasks by sequence number and must not form a cycle.
//	@Tags			template
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateTemplateReq	true	"CreateTemplate payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ProjectTemplate}
//	@Router			/templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	user, ok := requireCapability(c, authz.ManageTemplates)
	if !ok {
		return
	}

	req := CreateTemplateReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	in := service.CreateTemplateInput{
		Name:                req.Name,
		NameI18n:            req.NameI18n,
		CodePrefix:          req.CodePrefix,
		Description:         req.Description,
		DefaultDurationDays: req.DefaultDurationDays,
		EstimatedBudget:     req.EstimatedBudget,
		CreatedByID:         user.ID,
	}
	for _, t := range req.Tasks {
		in.Tasks = append(in.Tasks, service.TemplateTaskInput{
			SequenceNumber: t.SequenceNumber,
			Title:          t.Title,
			TitleI18n:      t.TitleI18n,
			Description:    t.Description,
			EstimatedHours: t.EstimatedHours,
			AssigneeRole:   t.AssigneeRole,
			Priority:       model.TaskPriority(t.Priority),
		})
	}
	for _, d := range req.Dependencies {
		in.Dependencies = append(in.Dependencies, service.TemplateDependencyInput{
			TaskSequence:      d.TaskSequence,
			DependsOnSequence: d.DependsOnSequence,
			Type:              model.DependencyType(d.Type),
			LagDays:           d.LagDays,
		})
	}

	t, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: t})
}

// GetTemplate godoc
//
//	@Summary		Get template
//	@Tags			template
//	@Produce		json
//	@Param			template_id	path	string	true	"Template ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ProjectTemplate}
//	@Router			/templates/{template_id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	if _, ok := requireCapability(c, authz.InstantiateTemplate); !ok {
		return
	}
	id, ok := pathUUID(c, "template_id")
	if !ok {
		return
	}

	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: t})
}

type InstantiateTemplateReq struct {
	Name      string   `json:"name" example:"Website launch Q3"`
	Code      string   `json:"code" example:"WEB-Q3"`
	StartDate string   `json:"start_date" binding:"required" example:"2025-07-01"`
	MemberIDs []string `json:"member_ids"`
}

// InstantiateTemplate godoc
//
//	@Summary		Instantiate template
//	@Description	Create a project with every task and dependency of the template, owned by the caller. Nothing is written when any step fails.
//	@Tags			template
//	@Accept			json
//	@Produce		json
//	@Param			template_id	path	string							true	"Template ID"	Format(uuid)
//	@Param			payload		body	handler.InstantiateTemplateReq	true	"Instantiate payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Failure		422	{object}	serializer.Response
//	@Router			/templates/{template_id}/instantiate [post]
func (h *TemplateHandler) InstantiateTemplate(c *gin.Context) {
	user, ok := requireCapability(c, authz.InstantiateTemplate)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "template_id")
	if !ok {
		return
	}

	req := InstantiateTemplateReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		respondErr(c, err)
		return
	}
	members, err := parseUUIDs("member_ids", req.MemberIDs)
	if err != nil {
		respondErr(c, err)
		return
	}

	p, err := h.svc.Instantiate(c.Request.Context(), id, service.InstantiateInput{
		Name:      req.Name,
		Code:      req.Code,
		StartDate: start,
		OwnerID:   user.ID,
		MemberIDs: members,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}
