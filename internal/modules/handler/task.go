package handler

import (
	"net/http"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/serializer"
	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

type CreateTaskReq struct {
	Title          string            `json:"title" binding:"required" example:"Wireframes"`
	TitleI18n      map[string]string `json:"title_i18n"`
	Priority       string            `json:"priority" example:"high"`
	EstimatedHours float64           `json:"estimated_hours" example:"16"`
	StartDate      string            `json:"start_date" example:"2025-01-06"`
	DueDate        string            `json:"due_date" example:"2025-01-08"`
	AssigneeID     *uuid.UUID        `json:"assignee_id" swaggertype:"string" format:"uuid"`
}

// CreateTask godoc
//
//	@Summary		Create task
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.CreateTaskReq	true	"CreateTask payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Task}
//	@Router			/projects/{project_id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}

	req := CreateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	start, err := parseOptionalDate("start_date", req.StartDate)
	if err != nil {
		respondErr(c, err)
		return
	}
	due, err := parseOptionalDate("due_date", req.DueDate)
	if err != nil {
		respondErr(c, err)
		return
	}

	task, err := h.svc.Create(c.Request.Context(), project.ID, service.CreateTaskInput{
		Title:          req.Title,
		TitleI18n:      req.TitleI18n,
		Priority:       model.TaskPriority(req.Priority),
		EstimatedHours: req.EstimatedHours,
		StartDate:      start,
		DueDate:        due,
		AssigneeID:     req.AssigneeID,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: task})
}

type UpdateTaskStatusReq struct {
	Status      string   `json:"status" binding:"required" example:"done"`
	ActualHours *float64 `json:"actual_hours" example:"14.5"`
}

// UpdateTaskStatus godoc
//
//	@Summary		Update task status
//	@Description	Move a task to a new status. Entering done records the completion time.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string						true	"Project ID"	Format(uuid)
//	@Param			task_id		path	string						true	"Task ID"		Format(uuid)
//	@Param			payload		body	handler.UpdateTaskStatusReq	true	"UpdateTaskStatus payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Task}
//	@Router			/projects/{project_id}/tasks/{task_id}/status [put]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "task_id")
	if !ok {
		return
	}

	req := UpdateTaskStatusReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	task, err := h.svc.UpdateStatus(c.Request.Context(), project.ID, taskID, service.UpdateTaskStatusInput{
		Status:      model.TaskStatus(req.Status),
		ActualHours: req.ActualHours,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: task})
}

type CreateDependencyReq struct {
	TaskID      uuid.UUID `json:"task_id" binding:"required" swaggertype:"string" format:"uuid"`
	DependsOnID uuid.UUID `json:"depends_on_id" binding:"required" swaggertype:"string" format:"uuid"`
	Type        string    `json:"type" example:"finish_to_start"`
	LagDays     int       `json:"lag_days" example:"0"`
}

// AddDependency godoc
//
//	@Summary		Add task dependency
//	@Description	Make task_id depend on depends_on_id. Edges that would close a cycle are rejected.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string						true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.CreateDependencyReq	true	"Dependency"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.TaskDependency}
//	@Router			/projects/{project_id}/dependencies [post]
func (h *TaskHandler) AddDependency(c *gin.Context) {
	project, ok := currentProject(c)
	if !ok {
		return
	}

	req := CreateDependencyReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	dep, err := h.svc.AddDependency(c.Request.Context(), project.ID, service.CreateDependencyInput{
		TaskID:      req.TaskID,
		DependsOnID: req.DependsOnID,
		Type:        model.DependencyType(req.Type),
		LagDays:     req.LagDays,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: dep})
}
