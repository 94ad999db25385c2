package router

import (
	"github.com/0xj4an-Work/landing-latam/internal/config"
	"github.com/0xj4an-Work/landing-latam/internal/handler"
	"github.com/0xj4an-Work/landing-latam/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "buildathon-service",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		teamHandler := handler.NewTeamHandler(db)
		v1.POST("/register", teamHandler.Register)
		v1.GET("/teams", teamHandler.GetTeams)
		v1.DELETE("/teams", teamHandler.DeleteTeam)
		v1.GET("/registrations", teamHandler.GetRegistrations)

		submissionHandler := handler.NewSubmissionHandler(db)
		v1.POST("/submit", submissionHandler.Submit)

		projectHandler := handler.NewProjectHandler(db)
		v1.GET("/projects", projectHandler.GetProjects)
		v1.POST("/projects", projectHandler.CreateProject)
		v1.DELETE("/projects", projectHandler.DeleteProject)

		milestoneHandler := handler.NewMilestoneHandler(db)
		v1.GET("/milestones", milestoneHandler.GetMilestones)
		v1.POST("/milestones", milestoneHandler.SubmitMilestone)
	}

	// 管理后台，凭证未配置时默认关闭
	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.Admin))
	{
		adminHandler := handler.NewAdminHandler(db, cfg.Admin)
		admin.POST("/session", adminHandler.CreateSession)
		admin.GET("/teams", adminHandler.GetTeams)
		admin.GET("/export-emails", adminHandler.ExportEmails)
		admin.POST("/export-emails", adminHandler.ExportEmails)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
