package response

import "github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/entity/etprediction"

// PredictionResponse 预测成功响应
type PredictionResponse struct {
	Prediction string `json:"prediction" example:"Good"`
}

// ErrorResponse 错误响应，所有失败场景使用同一结构
type ErrorResponse struct {
	Error string `json:"error" example:"co: missing field"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"air-quality-api"`
	Model   string `json:"model" example:"model/best_catboost_model.json"`
}

// FromLabel 从领域对象转换为响应 DTO
func FromLabel(label etprediction.Label) *PredictionResponse {
	return &PredictionResponse{Prediction: label.String()}
}
