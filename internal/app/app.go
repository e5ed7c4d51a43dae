package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"institute_backend/internal/config"
	"institute_backend/internal/controller"
	"institute_backend/internal/middleware"
	"institute_backend/internal/repository"
	"institute_backend/internal/resume"
	"institute_backend/internal/service"
	"institute_backend/pkg/configwatcher"
	"institute_backend/pkg/database"
	"institute_backend/pkg/logger"
	"institute_backend/pkg/monitoring"
	"institute_backend/pkg/security"
	"institute_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
	stopWatchers    context.CancelFunc
}

type repositories struct {
	report *repository.ReportRepository
}

type services struct {
	storage *service.StorageService
	report  *service.ReportService
	resume  *service.ResumeService
}

type controllers struct {
	health *controller.HealthController
	report *controller.ReportController
	resume *controller.ResumeController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		report: repository.NewReportRepository(db),
	}
}

func loadVocabulary(path string) *resume.Vocabulary {
	if path == "" {
		return resume.DefaultVocabulary()
	}
	v, err := resume.LoadVocabulary(path)
	if err != nil {
		logger.L().Warn("Failed to load skill vocabulary, using built-in list",
			zap.String("path", path), zap.Error(err))
		return resume.DefaultVocabulary()
	}
	return v
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	var tagger resume.Tagger
	if cfg.NLP.Endpoint != "" {
		tagger = resume.NewHTTPTagger(cfg.NLP.Endpoint, cfg.NLP.Timeout)
		logger.Log.Info("NLP tagger enabled", zap.String("endpoint", cfg.NLP.Endpoint))
	}

	return &services{
		storage: storage,
		report:  service.NewReportService(repos.report),
		resume:  service.NewResumeService(cfg.Resume, loadVocabulary(cfg.Resume.VocabularyFile), tagger, storage),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		health: controller.NewHealthController(db, s.resume.Vocabulary),
		report: controller.NewReportController(s.report),
		resume: controller.NewResumeController(s.resume),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startWatchers 监听配置文件与技能词表的变化
func (a *App) startWatchers(configDir string) {
	ctx, cancel := context.WithCancel(context.Background())
	a.stopWatchers = cancel

	a.RegisterConfigCallback(func(newCfg *config.Config) {
		a.services.resume.ApplyConfig(newCfg.Resume)
		logger.Log.Info("Resume limits reloaded",
			zap.Duration("extract_timeout", newCfg.Resume.ExtractTimeout),
			zap.Int64("max_upload_mb", newCfg.Resume.MaxUploadMB),
		)
	})

	if err := configwatcher.WatchConfig(ctx, configDir, func(newCfg *config.Config) {
		for _, cb := range a.configCallbacks {
			cb(newCfg)
		}
	}); err != nil {
		logger.Log.Warn("Config hot reload disabled", zap.Error(err))
	}

	if path := a.Config.Resume.VocabularyFile; path != "" {
		if err := configwatcher.WatchFile(ctx, path, func() {
			_ = a.services.resume.ReloadVocabulary(path)
		}); err != nil {
			logger.Log.Warn("Vocabulary hot reload disabled", zap.String("path", path), zap.Error(err))
		}
	}
}

func NewApp(cfg *config.Config, configDir string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// release 模式下默认不迁移，除非显式指定 --migrate
	if cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}
	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg)
	controllers := app.initControllers(app.services, db)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("institute-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)
	app.startWatchers(configDir)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	if a.stopWatchers != nil {
		a.stopWatchers()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
