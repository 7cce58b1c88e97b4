package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/config"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/services/svprediction"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/infra/model/catboost"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/logger"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/metrics"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/server/handlers/health"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/server/handlers/prediction"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/server/routers"
)

// App 应用依赖集合
type App struct {
	Config   *config.Config
	Logger   logger.Logger
	Model    *catboost.Model
	Handler  http.Handler
	Draining *atomic.Bool
}

// loadConfig 加载并校验配置
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// InitializeApp 初始化应用：日志、模型、服务、路由
// 模型加载失败直接返回错误，服务不会启动
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger failed: %w", err)
	}
	cleanup := func() { _ = log.Sync() }

	model, err := catboost.Load(cfg.Model.Path)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("load model failed: %w", err)
	}

	if cfg.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else if cfg.App.Env == "test" {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	draining := atomic.NewBool(false)
	predictionService := svprediction.NewPredictionService(model, m)
	engine := routers.SetupRoutes(
		prediction.NewPredictionHandler(predictionService, log),
		health.NewHealthHandler(cfg.App.Name, cfg.Model.Path, draining),
		log,
		m,
	)

	return &App{
		Config:   cfg,
		Logger:   log,
		Model:    model,
		Handler:  routers.NewHTTPHandler(engine),
		Draining: draining,
	}, cleanup, nil
}
