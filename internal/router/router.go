package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/sitegenie/sitegenie/docs"
	"github.com/sitegenie/sitegenie/internal/config"
	"github.com/sitegenie/sitegenie/internal/middleware"
	"github.com/sitegenie/sitegenie/internal/modules/handler"
	"github.com/sitegenie/sitegenie/internal/modules/serializer"
	"github.com/sitegenie/sitegenie/internal/modules/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config            *config.Config
	Log               *zap.Logger
	UserSvc           service.UserService
	ProjectSvc        service.ProjectService
	UserHandler       *handler.UserHandler
	ProjectHandler    *handler.ProjectHandler
	PageHandler       *handler.PageHandler
	SEOHandler        *handler.SEOHandler
	GenerationHandler *handler.GenerationHandler
	CSVHandler        *handler.CSVHandler
	ExportHandler     *handler.ExportHandler
	AnalyticsHandler  *handler.AnalyticsHandler
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
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Code: http.StatusOK, Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", d.UserHandler.Register)
			users.POST("/login", d.UserHandler.Login)

			authed := users.Group("", middleware.UserAuth(d.UserSvc))
			authed.GET("/me", d.UserHandler.Me)
			authed.POST("/logout", d.UserHandler.Logout)
		}

		projects := api.Group("/projects", middleware.UserAuth(d.UserSvc))
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", d.ProjectHandler.CreateProject)

			project := projects.Group("/:project_id", middleware.ProjectScope(d.ProjectSvc))
			{
				project.GET("", d.ProjectHandler.GetProject)
				project.PUT("", d.ProjectHandler.UpdateProject)
				project.DELETE("", d.ProjectHandler.DeleteProject)

				project.GET("/design", d.ProjectHandler.GetDesign)
				project.PUT("/design", d.ProjectHandler.UpdateDesign)

				pages := project.Group("/pages")
				{
					pages.GET("", d.PageHandler.ListPages)
					pages.POST("", d.PageHandler.CreatePage)
					pages.GET("/tree", d.PageHandler.GetPageTree)
					pages.GET("/:page_id", d.PageHandler.GetPage)
					pages.PUT("/:page_id", d.PageHandler.UpdatePage)
					pages.DELETE("/:page_id", d.PageHandler.DeletePage)

					pages.GET("/:page_id/seo", d.SEOHandler.GetSEO)
					pages.PUT("/:page_id/seo", d.SEOHandler.UpsertSEO)

					pages.POST("/:page_id/generate", d.GenerationHandler.Generate)
				}
				project.GET("/generations/:generation_id", d.GenerationHandler.GetGeneration)

				csv := project.Group("/csv")
				{
					csv.POST("", d.CSVHandler.UploadCSV)
					csv.GET("", d.CSVHandler.ListCSVUploads)
					csv.POST("/preview", d.CSVHandler.PreviewCSV)
					csv.GET("/:upload_id", d.CSVHandler.GetCSVUpload)
				}

				export := project.Group("/export")
				{
					export.POST("", d.ExportHandler.StartExport)
					export.GET("", d.ExportHandler.ListExports)
					export.GET("/:export_id", d.ExportHandler.GetExportStatus)
					export.GET("/:export_id/download", d.ExportHandler.DownloadExport)
					export.GET("/:export_id/ws", d.ExportHandler.StreamExportStatus)
				}
				project.POST("/publish", d.ExportHandler.StartPublish)

				project.GET("/analytics", d.AnalyticsHandler.GetAnalytics)
			}
		}
	}
	return r
}
