package request

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/entity/etfeature"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/errorx"
)

const validBody = `{"temperature": 25.0, "co": 0.5, "no2": 0.02, "humidity": 60.0, "pop_density": 1000.0}`

func TestParsePredictionRequest(t *testing.T) {
	req, err := ParsePredictionRequest([]byte(validBody))
	require.NoError(t, err)

	assert.Equal(t, &PredictionRequest{
		Temperature: 25.0,
		CO:          0.5,
		NO2:         0.02,
		Humidity:    60.0,
		PopDensity:  1000.0,
	}, req)
}

func TestParseFeatureRow(t *testing.T) {
	row, err := ParseFeatureRow([]byte(validBody))
	require.NoError(t, err)

	assert.Equal(t, 0.5, row.CO)
	assert.Equal(t, 12.5, row.TemperatureCO)
	assert.InDelta(t, 0.01, row.NO2CO, 1e-12)
	assert.Equal(t, 30.0, row.HumidityCO)
	assert.Equal(t, 500.0, row.COPopulationDensity)
}

func TestParseCoercesLenientValues(t *testing.T) {
	body := `{"temperature": "25", "co": " 0.5 ", "no2": true, "humidity": false, "pop_density": "1e3", "extra": "ignored"}`

	req, err := ParsePredictionRequest([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, 25.0, req.Temperature)
	assert.Equal(t, 0.5, req.CO)
	assert.Equal(t, 1.0, req.NO2)
	assert.Equal(t, 0.0, req.Humidity)
	assert.Equal(t, 1000.0, req.PopDensity)
}

func TestParseSpecialFloatStrings(t *testing.T) {
	body := `{"temperature": "nan", "co": "inf", "no2": "-Infinity", "humidity": "1e400", "pop_density": 1}`

	req, err := ParsePredictionRequest([]byte(body))
	require.NoError(t, err)

	assert.True(t, math.IsNaN(req.Temperature))
	assert.True(t, math.IsInf(req.CO, 1))
	assert.True(t, math.IsInf(req.NO2, -1))
	assert.True(t, math.IsInf(req.Humidity, 1))
}

func TestParseMissingField(t *testing.T) {
	for _, field := range []string{FieldTemperature, FieldCO, FieldNO2, FieldHumidity, FieldPopDensity} {
		t.Run(field, func(t *testing.T) {
			fields := map[string]string{
				FieldTemperature: "25",
				FieldCO:          "0.5",
				FieldNO2:         "0.02",
				FieldHumidity:    "60",
				FieldPopDensity:  "1000",
			}
			delete(fields, field)

			body := "{"
			first := true
			for k, v := range fields {
				if !first {
					body += ","
				}
				first = false
				body += `"` + k + `":` + v
			}
			body += "}"

			_, err := ParsePredictionRequest([]byte(body))
			require.Error(t, err)
			assert.ErrorIs(t, err, errorx.ErrMissingField)

			var ve *errorx.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, field, ve.Field)
		})
	}
}

func TestParseInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"text", `{"temperature": "hot", "co": 1, "no2": 1, "humidity": 1, "pop_density": 1}`, FieldTemperature},
		{"empty string", `{"temperature": 1, "co": "", "no2": 1, "humidity": 1, "pop_density": 1}`, FieldCO},
		{"null", `{"temperature": 1, "co": 1, "no2": null, "humidity": 1, "pop_density": 1}`, FieldNO2},
		{"object", `{"temperature": 1, "co": 1, "no2": 1, "humidity": {"v": 1}, "pop_density": 1}`, FieldHumidity},
		{"array", `{"temperature": 1, "co": 1, "no2": 1, "humidity": 1, "pop_density": [1]}`, FieldPopDensity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePredictionRequest([]byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, errorx.ErrInvalidNumber)

			var ve *errorx.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestParseReportsFirstFailingField(t *testing.T) {
	_, err := ParsePredictionRequest([]byte(`{"co": "x"}`))

	var ve *errorx.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, FieldTemperature, ve.Field)
}

func TestParseMalformedBody(t *testing.T) {
	for _, body := range []string{``, `{`, `not json`, `[1, 2]`, `42`, `null`} {
		_, err := ParsePredictionRequest([]byte(body))
		require.Error(t, err, "body %q", body)
		assert.ErrorIs(t, err, errorx.ErrMalformedBody, "body %q", body)
		assert.True(t, errorx.IsValidation(err))
	}
}

func TestToReading(t *testing.T) {
	req := &PredictionRequest{Temperature: 1, CO: 2, NO2: 3, Humidity: 4, PopDensity: 5}
	assert.Equal(t, etfeature.Reading{Temperature: 1, CO: 2, NO2: 3, Humidity: 4, PopDensity: 5}, req.ToReading())
}
