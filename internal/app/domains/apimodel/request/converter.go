package request

import "github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/entity/etfeature"

// ToReading 将 Request DTO 转换为领域对象
func (r *PredictionRequest) ToReading() etfeature.Reading {
	return etfeature.Reading{
		Temperature: r.Temperature,
		CO:          r.CO,
		NO2:         r.NO2,
		Humidity:    r.Humidity,
		PopDensity:  r.PopDensity,
	}
}

// ToFeatureRow 计算模型特征
func (r *PredictionRequest) ToFeatureRow() etfeature.FeatureRow {
	return etfeature.NewFeatureRow(r.ToReading())
}

// ParseFeatureRow 解析请求体并直接生成特征行
func ParseFeatureRow(body []byte) (etfeature.FeatureRow, error) {
	req, err := ParsePredictionRequest(body)
	if err != nil {
		return etfeature.FeatureRow{}, err
	}
	return req.ToFeatureRow(), nil
}
