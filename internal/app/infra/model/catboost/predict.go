package catboost

import (
	"context"
	"fmt"
	"math"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/entity/etfeature"
)

// Predict 每行返回一个类别标签（默认 0 或 1）
func (m *Model) Predict(_ context.Context, rows []etfeature.FeatureRow) ([]float64, error) {
	if err := m.checkColumns(etfeature.Columns()); err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(rows))
	for _, row := range rows {
		raw := m.RawScore(row.Values())
		if raw > 0 {
			out = append(out, m.labels[1])
		} else {
			out = append(out, m.labels[0])
		}
	}
	return out, nil
}

// checkColumns 列名需与模型记录的特征名逐位一致
func (m *Model) checkColumns(columns []string) error {
	if len(columns) < m.numFeatures {
		return fmt.Errorf("feature row has %d columns, model expects %d", len(columns), m.numFeatures)
	}
	for i, name := range m.featureNames {
		if columns[i] != name {
			return fmt.Errorf("feature name mismatch at position %d: got %q, model expects %q", i, columns[i], name)
		}
	}
	return nil
}

// RawScore 计算原始分数 scale*sum(leaf)+bias，调用方保证 values 长度足够
func (m *Model) RawScore(values []float64) float64 {
	var sum float64
	for _, t := range m.trees {
		idx := 0
		for depth, s := range t.splits {
			v := values[s.feature]
			var bit bool
			if math.IsNaN(v) {
				bit = s.nanAsTrue
			} else {
				bit = v > s.border
			}
			if bit {
				idx |= 1 << depth
			}
		}
		sum += t.leaves[idx]
	}
	return m.scale*sum + m.bias
}
