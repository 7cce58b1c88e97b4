package etfeature

// 模型输入列名，顺序与训练时的 DataFrame 保持一致
const (
	ColumnCO               = "CO"
	ColumnTemperatureCO    = "Temperature CO"
	ColumnNO2CO            = "NO2 CO"
	ColumnHumidityCO       = "Humidity CO"
	ColumnCOPopulationDens = "CO Population_Density"
)

var columns = []string{
	ColumnCO,
	ColumnTemperatureCO,
	ColumnNO2CO,
	ColumnHumidityCO,
	ColumnCOPopulationDens,
}

// Columns 返回模型期望的列名（按位置对齐）
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// Reading 一组传感器读数（值对象）
type Reading struct {
	Temperature float64
	CO          float64
	NO2         float64
	Humidity    float64
	PopDensity  float64
}

// FeatureRow 单行模型特征（值对象）
type FeatureRow struct {
	CO                  float64
	TemperatureCO       float64
	NO2CO               float64
	HumidityCO          float64
	COPopulationDensity float64
}

// NewFeatureRow 由传感器读数计算交互特征
func NewFeatureRow(r Reading) FeatureRow {
	return FeatureRow{
		CO:                  r.CO,
		TemperatureCO:       r.Temperature * r.CO,
		NO2CO:               r.NO2 * r.CO,
		HumidityCO:          r.Humidity * r.CO,
		COPopulationDensity: r.CO * r.PopDensity,
	}
}

// Values 按 Columns() 的顺序返回特征值
func (f FeatureRow) Values() []float64 {
	return []float64{
		f.CO,
		f.TemperatureCO,
		f.NO2CO,
		f.HumidityCO,
		f.COPopulationDensity,
	}
}

// Map 列名到特征值的映射，用于日志和 CLI 输出
func (f FeatureRow) Map() map[string]float64 {
	values := f.Values()
	out := make(map[string]float64, len(columns))
	for i, name := range columns {
		out[name] = values[i]
	}
	return out
}
