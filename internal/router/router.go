package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/bizplatform/pmcore/docs"
	"github.com/bizplatform/pmcore/internal/config"
	"github.com/bizplatform/pmcore/internal/middleware"
	"github.com/bizplatform/pmcore/internal/modules/handler"
	"github.com/bizplatform/pmcore/internal/modules/serializer"
	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/bizplatform/pmcore/internal/pkg/authz"
)

type RouterDeps struct {
	Config          *config.Config
	Log             *zap.Logger
	Users           service.UserService
	Projects        service.ProjectService
	ProjectHandler  *handler.ProjectHandler
	TaskHandler     *handler.TaskHandler
	MetricsHandler  *handler.MetricsHandler
	ExportHandler   *handler.ExportHandler
	TemplateHandler *handler.TemplateHandler
	ResourceHandler *handler.ResourceHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	access := func(capability authz.Capability) gin.HandlerFunc {
		return middleware.ProjectAccess(d.Projects, capability)
	}

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.UserAuth(d.Config, d.Users))

		v1.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		v1.GET("/portfolio", d.MetricsHandler.GetPortfolio)

		projects := v1.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", d.ProjectHandler.CreateProject)

			project := projects.Group("/:project_id")
			{
				project.GET("", access(authz.ViewProject), d.ProjectHandler.GetProject)
				project.DELETE("", access(authz.DeleteProject), d.ProjectHandler.DeleteProject)

				project.POST("/tasks", access(authz.EditProject), d.TaskHandler.CreateTask)
				project.PUT("/tasks/:task_id/status", access(authz.EditProject), d.TaskHandler.UpdateTaskStatus)
				project.POST("/dependencies", access(authz.EditProject), d.TaskHandler.AddDependency)

				project.POST("/costs", access(authz.ManageCosts), d.ProjectHandler.AddCost)

				project.GET("/metrics", access(authz.ViewAnalytics), d.MetricsHandler.GetMetrics)
				project.GET("/burndown", access(authz.ViewAnalytics), d.MetricsHandler.GetBurndown)
				project.GET("/snapshots", access(authz.ViewAnalytics), d.MetricsHandler.ListSnapshots)
				project.POST("/snapshots", access(authz.CreateSnapshot), d.MetricsHandler.CreateSnapshot)
				project.POST("/alerts", access(authz.CreateSnapshot), d.MetricsHandler.EvaluateAlerts)

				project.GET("/export", access(authz.ExportMetrics), d.ExportHandler.DownloadExport)
				project.POST("/export", access(authz.ExportMetrics), d.ExportHandler.UploadExport)
			}
		}

		templates := v1.Group("/templates")
		{
			templates.POST("", d.TemplateHandler.CreateTemplate)
			templates.GET("/:template_id", d.TemplateHandler.GetTemplate)
			templates.POST("/:template_id/instantiate", d.TemplateHandler.InstantiateTemplate)
		}

		resources := v1.Group("/resources")
		{
			resources.POST("", d.ResourceHandler.CreateResource)
			resources.GET("/capacity", d.ResourceHandler.GetCapacity)
			resources.POST("/:resource_id/assignments", d.ResourceHandler.CreateAssignment)
			resources.GET("/:resource_id/utilization", d.ResourceHandler.GetUtilization)
		}
	}
	return r
}
