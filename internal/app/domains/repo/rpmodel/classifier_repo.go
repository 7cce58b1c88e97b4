package rpmodel

import (
	"context"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/entity/etfeature"
)

// Classifier 预训练二分类模型接口（只定义，不实现）
// 实现在 infra/model 层，启动时加载一次，之后只读
type Classifier interface {
	// Predict 对每一行特征返回一个数值标签，结果与输入顺序一致
	Predict(ctx context.Context, rows []etfeature.FeatureRow) ([]float64, error)
}

// ClassifierFunc 函数适配器
type ClassifierFunc func(ctx context.Context, rows []etfeature.FeatureRow) ([]float64, error)

func (f ClassifierFunc) Predict(ctx context.Context, rows []etfeature.FeatureRow) ([]float64, error) {
	return f(ctx, rows)
}
