package catboost

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

var (
	ErrNoTrees          = errors.New("model has no oblivious trees")
	ErrInvalidLeafCount = errors.New("leaf count does not match tree depth")
	ErrUnknownFeature   = errors.New("split references unknown float feature")
)

// 导出格式参考 CatBoost save_model(format="json")
type jsonModel struct {
	ModelInfo struct {
		ClassParams *struct {
			ClassToLabel []float64 `json:"class_to_label"`
		} `json:"class_params"`
	} `json:"model_info"`
	FeaturesInfo struct {
		FloatFeatures []jsonFloatFeature `json:"float_features"`
	} `json:"features_info"`
	ObliviousTrees []jsonTree        `json:"oblivious_trees"`
	ScaleAndBias   []json.RawMessage `json:"scale_and_bias"`
}

type jsonFloatFeature struct {
	FeatureIndex      int       `json:"feature_index"`
	FeatureID         string    `json:"feature_id"`
	Borders           []float64 `json:"borders"`
	NanValueTreatment string    `json:"nan_value_treatment"`
}

type jsonTree struct {
	LeafValues []float64   `json:"leaf_values"`
	Splits     []jsonSplit `json:"splits"`
}

type jsonSplit struct {
	FloatFeatureIndex int     `json:"float_feature_index"`
	Border            float64 `json:"border"`
}

type split struct {
	feature   int
	border    float64
	nanAsTrue bool
}

type tree struct {
	splits []split
	leaves []float64
}

// Model 已加载的 CatBoost 二分类模型，加载后只读，可并发调用 Predict
type Model struct {
	path         string
	featureNames []string
	numFeatures  int
	trees        []tree
	scale        float64
	bias         float64
	labels       [2]float64
}

// Load 从文件加载模型
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact failed: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse model artifact %s failed: %w", path, err)
	}
	m.path = path
	return m, nil
}

// Parse 解析 JSON 格式的模型
func Parse(data []byte) (*Model, error) {
	var raw jsonModel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw.ObliviousTrees) == 0 {
		return nil, ErrNoTrees
	}

	features := raw.FeaturesInfo.FloatFeatures
	sort.Slice(features, func(i, j int) bool { return features[i].FeatureIndex < features[j].FeatureIndex })

	byIndex := make(map[int]jsonFloatFeature, len(features))
	numFeatures := 0
	named := len(features) > 0
	for _, f := range features {
		byIndex[f.FeatureIndex] = f
		if f.FeatureIndex+1 > numFeatures {
			numFeatures = f.FeatureIndex + 1
		}
		if f.FeatureID == "" {
			named = false
		}
	}

	m := &Model{
		numFeatures: numFeatures,
		scale:       1,
		labels:      [2]float64{0, 1},
	}
	if named && len(features) == numFeatures {
		m.featureNames = make([]string, numFeatures)
		for _, f := range features {
			m.featureNames[f.FeatureIndex] = f.FeatureID
		}
	}

	for i, jt := range raw.ObliviousTrees {
		if len(jt.LeafValues) != 1<<len(jt.Splits) {
			return nil, fmt.Errorf("tree %d: %w: depth=%d leaves=%d", i, ErrInvalidLeafCount, len(jt.Splits), len(jt.LeafValues))
		}
		t := tree{
			splits: make([]split, 0, len(jt.Splits)),
			leaves: jt.LeafValues,
		}
		for _, js := range jt.Splits {
			f, ok := byIndex[js.FloatFeatureIndex]
			if !ok {
				return nil, fmt.Errorf("tree %d: %w: %d", i, ErrUnknownFeature, js.FloatFeatureIndex)
			}
			t.splits = append(t.splits, split{
				feature:   js.FloatFeatureIndex,
				border:    js.Border,
				nanAsTrue: f.NanValueTreatment == "AsTrue" || f.NanValueTreatment == "Max",
			})
		}
		m.trees = append(m.trees, t)
	}

	if err := m.parseScaleAndBias(raw.ScaleAndBias); err != nil {
		return nil, err
	}

	if cp := raw.ModelInfo.ClassParams; cp != nil && len(cp.ClassToLabel) > 0 {
		if len(cp.ClassToLabel) != 2 {
			return nil, fmt.Errorf("expected 2 classes, got %d", len(cp.ClassToLabel))
		}
		m.labels = [2]float64{cp.ClassToLabel[0], cp.ClassToLabel[1]}
	}

	return m, nil
}

// scale_and_bias 形如 [scale, [bias]]
func (m *Model) parseScaleAndBias(raw []json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw[0], &m.scale); err != nil {
		return fmt.Errorf("invalid scale: %w", err)
	}
	if len(raw) < 2 {
		return nil
	}
	var bias []float64
	if err := json.Unmarshal(raw[1], &bias); err != nil {
		return fmt.Errorf("invalid bias: %w", err)
	}
	if len(bias) > 0 {
		m.bias = bias[0]
	}
	return nil
}

// Path 模型文件路径
func (m *Model) Path() string {
	return m.path
}

// FeatureNames 模型记录的特征列名，未记录时返回 nil
func (m *Model) FeatureNames() []string {
	if m.featureNames == nil {
		return nil
	}
	out := make([]string, len(m.featureNames))
	copy(out, m.featureNames)
	return out
}

// NumTrees 树的数量
func (m *Model) NumTrees() int {
	return len(m.trees)
}
