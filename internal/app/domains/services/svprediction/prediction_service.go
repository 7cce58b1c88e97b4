package svprediction

import (
	"context"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/entity/etfeature"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/entity/etprediction"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/repo/rpmodel"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/errorx"
)

// Recorder 预测结果统计（可选）
type Recorder interface {
	ObservePrediction(label etprediction.Label)
	ObserveError(kind string)
}

// PredictionService 预测服务，负责特征到标签的业务编排
type PredictionService struct {
	classifier rpmodel.Classifier
	recorder   Recorder
}

// NewPredictionService 创建预测服务实例，recorder 可以为 nil
func NewPredictionService(classifier rpmodel.Classifier, recorder Recorder) *PredictionService {
	return &PredictionService{
		classifier: classifier,
		recorder:   recorder,
	}
}

// Predict 单行预测
// 1. 调用模型（单行 batch）
// 2. 取第一个结果
// 3. 映射为 Good / Poor
func (s *PredictionService) Predict(ctx context.Context, row etfeature.FeatureRow) (etprediction.Label, error) {
	outputs, err := s.classifier.Predict(ctx, []etfeature.FeatureRow{row})
	if err != nil {
		return "", errorx.NewModelError(err)
	}
	if len(outputs) == 0 {
		return "", errorx.NewModelError(errorx.ErrEmptyPrediction)
	}

	label := etprediction.FromModelOutput(outputs[0])
	if s.recorder != nil {
		s.recorder.ObservePrediction(label)
	}
	return label, nil
}

// RecordError 记录请求失败（参数错误或模型错误）
func (s *PredictionService) RecordError(err error) {
	if s.recorder != nil && err != nil {
		s.recorder.ObserveError(errorx.Kind(err))
	}
}
