package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"quotes-api/config"
	"quotes-api/middleware"
	"quotes-api/routes"
	"quotes-api/services"
	"quotes-api/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	initLogger(cfg)
	defer zap.L().Sync()

	store, err := storage.Open(cfg.StoreDriver, cfg.DataDir)
	if err != nil {
		zap.S().Fatalw("failed to open store", "driver", cfg.StoreDriver, "error", err)
	}
	defer store.Close()
	zap.S().Infow("store opened", "driver", cfg.StoreDriver, "dir", cfg.DataDir)

	catalog := services.NewCatalogService(store)
	budgets := services.NewBudgetService(store)
	calculations := services.NewConsumptionService(store)
	dashboard := services.NewDashboardService(budgets)
	export := services.NewExportService(catalog, budgets)
	backups := services.NewBackupService(store, cfg.BackupDir)

	reports, err := services.NewReportService()
	if err != nil {
		zap.S().Fatalw("failed to load report templates", "error", err)
	}

	sched := cron.New()
	if _, err := sched.AddFunc(cfg.BackupSchedule, func() {
		path, err := backups.Run()
		if err != nil {
			zap.S().Errorw("scheduled backup failed", "error", err)
			return
		}
		zap.S().Infow("scheduled backup written", "file", path)
	}); err != nil {
		zap.S().Fatalw("invalid backup schedule", "schedule", cfg.BackupSchedule, "error", err)
	}
	sched.Start()
	defer sched.Stop()

	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := router.Group("/api/v1")
	{
		routes.SetupProductRoutes(v1, catalog, export)
		routes.SetupBudgetRoutes(v1, budgets, catalog, reports, export)
		routes.SetupConsumptionRoutes(v1, calculations, catalog, reports)
		routes.SetupDashboardRoutes(v1, dashboard)
		routes.SetupBackupRoutes(v1, backups)
	}
	routes.SetupHealthRoute(router)

	zap.S().Infow("server starting", "addr", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		zap.S().Fatalw("server stopped", "error", err)
	}
}

// initLogger builds the global zap logger. Production mode logs JSON;
// setting LOG_FILE tees output into a rotated file.
func initLogger(cfg *config.Config) {
	zapConfig := zap.NewDevelopmentConfig()
	if cfg.LogMode == "production" {
		zapConfig = zap.NewProductionConfig()
	}

	var logger *zap.Logger
	if cfg.LogFile != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(fileLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}
