package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/entity/etfeature"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/services/svprediction"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/infra/model/catboost"
)

type predictOptions struct {
	reading   etfeature.Reading
	modelPath string
}

func newPredictCommand() *cobra.Command {
	opts := &predictOptions{}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "离线执行一次预测，不启动 HTTP 服务",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.modelPath == "" {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				opts.modelPath = cfg.Model.Path
			}
			model, err := catboost.Load(opts.modelPath)
			if err != nil {
				return fmt.Errorf("load model failed: %w", err)
			}
			return runPredict(cmd, cmd.OutOrStdout(), svprediction.NewPredictionService(model, nil), opts.reading)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.reading.Temperature, "temperature", 0, "温度")
	flags.Float64Var(&opts.reading.CO, "co", 0, "CO 浓度")
	flags.Float64Var(&opts.reading.NO2, "no2", 0, "NO2 浓度")
	flags.Float64Var(&opts.reading.Humidity, "humidity", 0, "湿度")
	flags.Float64Var(&opts.reading.PopDensity, "pop-density", 0, "人口密度")
	flags.StringVar(&opts.modelPath, "model", "", "模型文件路径（默认读取配置中的 model.path）")
	for _, name := range []string{"temperature", "co", "no2", "humidity", "pop-density"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runPredict(cmd *cobra.Command, w io.Writer, svc *svprediction.PredictionService, reading etfeature.Reading) error {
	row := etfeature.NewFeatureRow(reading)

	values := row.Values()
	for i, name := range etfeature.Columns() {
		fmt.Fprintf(w, "%-24s %g\n", name, values[i])
	}

	label, err := svc.Predict(cmd.Context(), row)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-24s %s\n", "prediction", label)
	return nil
}
