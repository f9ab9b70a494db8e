package web

import (
	// 外部依赖
	"context"
	"fmt"

	cors "github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	// 内部引用
	config "github.com/srinivas-tce/labgigs/internal/config"
	common "github.com/srinivas-tce/labgigs/pkg/common"
	auth "github.com/srinivas-tce/labgigs/pkg/middleware/auth"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	equipmentView "github.com/srinivas-tce/labgigs/pkg/web/views/equipment"
	gigView "github.com/srinivas-tce/labgigs/pkg/web/views/gig"
	health "github.com/srinivas-tce/labgigs/pkg/web/views/health"
	login "github.com/srinivas-tce/labgigs/pkg/web/views/login"
	notificationView "github.com/srinivas-tce/labgigs/pkg/web/views/notification"
	proposalView "github.com/srinivas-tce/labgigs/pkg/web/views/proposal"
)

func NewRouter(ctx context.Context, g *gin.Engine) {
	installMiddleware(g)
	installURL(ctx, g)
}

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	server := config.Global().Server
	g.Use(cors.Default())
	g.Use(otelgin.Middleware(fmt.Sprintf("%s-%s", server.Platform, server.Service)))
	g.Use(logger.LogWithWriter())
}

func installURL(_ context.Context, g *gin.Engine) {
	api := g.Group("/api")
	api.GET("/health", health.Health)
	api.GET("/health/live", health.Live)
	api.GET("/health/ready", health.Ready)

	// Auth routes
	{
		l := login.NewHandle()
		authGroup := api.Group("/auth")
		authGroup.POST("/login", l.Login)

		v1 := api.Group("/v1", auth.AuthWeb())
		v1.GET("/profile", l.Profile)
	}

	v1 := api.Group("/v1", auth.AuthWeb())

	// 任务发布与审批走实验室管理侧角色
	facilitator := []common.Role{common.Facilitator, common.FacilityManager}

	{
		h := gigView.NewHandle()
		gigRouter := v1.Group("/gig", auth.RequireRole(facilitator...))
		gigRouter.POST("/create", h.Create)
		gigRouter.GET("/list", h.List)
		gigRouter.GET("/info/:gig_uuid", h.Info)
		gigRouter.POST("/update", h.Update)
	}

	{
		h := proposalView.NewHandle()
		proposalRouter := v1.Group("/proposal")
		proposalRouter.POST("/submit", auth.RequireRole(common.Student), h.Submit)
		proposalRouter.GET("/list", auth.RequireRole(common.Student), h.List)
		proposalRouter.POST("/review", auth.RequireRole(facilitator...), h.Review)
	}

	{
		h := equipmentView.NewHandle()
		equipmentRouter := v1.Group("/equipment")
		equipmentRouter.POST("/create", auth.RequireRole(facilitator...), h.Create)
		equipmentRouter.GET("/list", auth.RequireRole(facilitator...), h.List)
		equipmentRouter.POST("/request", auth.RequireRole(common.Student), h.Request)
		equipmentRouter.GET("/request/list", auth.RequireRole(facilitator...), h.ListRequests)
		equipmentRouter.POST("/decide", auth.RequireRole(facilitator...), h.Decide)
	}

	{
		h := notificationView.NewHandle()
		notifyRouter := v1.Group("/notification")
		notifyRouter.GET("/list", h.List)
		notifyRouter.POST("/read", h.MarkRead)
	}
}
