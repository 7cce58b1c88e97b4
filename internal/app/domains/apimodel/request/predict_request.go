package request

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/errorx"
)

// 请求字段名，按校验顺序排列
const (
	FieldTemperature = "temperature"
	FieldCO          = "co"
	FieldNO2         = "no2"
	FieldHumidity    = "humidity"
	FieldPopDensity  = "pop_density"
)

var requiredFields = []string{FieldTemperature, FieldCO, FieldNO2, FieldHumidity, FieldPopDensity}

// PredictionRequest 预测请求（DTO）
// 字段可以是 JSON 数字、布尔值或数字字符串
type PredictionRequest struct {
	Temperature float64 `json:"temperature" example:"25.0"`
	CO          float64 `json:"co" example:"0.5"`
	NO2         float64 `json:"no2" example:"0.02"`
	Humidity    float64 `json:"humidity" example:"60.0"`
	PopDensity  float64 `json:"pop_density" example:"1000.0"`
}

// ParsePredictionRequest 解析请求体，不依赖 Content-Type
// 所有错误均为 *errorx.ValidationError
func ParsePredictionRequest(body []byte) (*PredictionRequest, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errorx.NewValidationError("", fmt.Errorf("%w: %v", errorx.ErrMalformedBody, err))
	}
	if raw == nil {
		return nil, errorx.NewValidationError("", fmt.Errorf("%w: expected a JSON object", errorx.ErrMalformedBody))
	}

	values := make(map[string]float64, len(requiredFields))
	for _, field := range requiredFields {
		v, ok := raw[field]
		if !ok {
			return nil, errorx.NewValidationError(field, errorx.ErrMissingField)
		}
		f, err := toFloat(v)
		if err != nil {
			return nil, errorx.NewValidationError(field, err)
		}
		values[field] = f
	}

	return &PredictionRequest{
		Temperature: values[FieldTemperature],
		CO:          values[FieldCO],
		NO2:         values[FieldNO2],
		Humidity:    values[FieldHumidity],
		PopDensity:  values[FieldPopDensity],
	}, nil
}

// toFloat 宽松的数值转换：数字、布尔值、数字字符串（含 nan/inf）
func toFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: got null", errorx.ErrInvalidNumber)
	case string:
		s := strings.TrimSpace(val)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !isRangeError(err) {
			return 0, fmt.Errorf("%w: %q", errorx.ErrInvalidNumber, val)
		}
		return f, nil
	case map[string]interface{}, []interface{}:
		return 0, fmt.Errorf("%w: got %T", errorx.ErrInvalidNumber, v)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errorx.ErrInvalidNumber, err)
	}
	return f, nil
}

// isRangeError 超出 float64 范围的字符串按 ±Inf 处理
func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
