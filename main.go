// @title Institute Reporting API
// @version 1.0
// @description 院校管理系统的统计报表与简历技能匹配服务。

// @contact.name API支持
// @contact.email support@institute.local

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"institute_backend/internal/app"
	"institute_backend/internal/config"
	"institute_backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	// 本地开发时从 .env 读取密钥，生产环境直接使用系统环境变量
	if err := godotenv.Load(); err == nil {
		log.Println(".env file loaded")
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg, *configDir)
	defer logger.Log.Sync()

	if *migrateOnly {
		logger.Log.Info("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
