package main

import (
	"github.com/0xj4an-Work/landing-latam/internal/config"
	"github.com/0xj4an-Work/landing-latam/internal/database"
	"github.com/0xj4an-Work/landing-latam/internal/logger"
	"github.com/0xj4an-Work/landing-latam/internal/router"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if err := logger.Init(cfg.Log); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, cfg)

	if !cfg.Admin.Configured() {
		logger.Warn("Admin credentials not configured, /admin is closed")
	}

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
