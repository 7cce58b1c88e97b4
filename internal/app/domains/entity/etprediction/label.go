package etprediction

// Label 空气质量标签
type Label string

const (
	LabelGood Label = "Good"
	LabelPoor Label = "Poor"
)

// goodClass 模型输出中代表空气质量良好的类别
const goodClass = 1.0

// FromModelOutput 将模型输出映射为标签
// 严格等于 1.0 才是 Good，其余（包括 NaN、2.0、概率值）一律为 Poor
func FromModelOutput(v float64) Label {
	if v == goodClass {
		return LabelGood
	}
	return LabelPoor
}

func (l Label) String() string {
	return string(l)
}
