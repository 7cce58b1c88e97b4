package prediction

import (
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/services/svprediction"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/logger"
)

// WelcomeMessage 首页文本
const WelcomeMessage = "Welcome to the Air Quality Prediction API"

// PredictionHandler 预测 HTTP 处理器
type PredictionHandler struct {
	predictionService *svprediction.PredictionService
	log               logger.Logger
}

// NewPredictionHandler 创建预测处理器实例
func NewPredictionHandler(predictionService *svprediction.PredictionService, log logger.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		log:               log,
	}
}
