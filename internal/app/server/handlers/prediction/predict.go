package prediction

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/apimodel/request"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/apimodel/response"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/errorx"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/ginx"
)

// Predict 空气质量预测接口
// POST /predict
// 请求体按 JSON 解析，忽略 Content-Type；任何失败都返回 500 和 {"error": ...}
func (h *PredictionHandler) Predict(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, errorx.NewValidationError("", fmt.Errorf("%w: %v", errorx.ErrMalformedBody, err)))
		return
	}

	row, err := request.ParseFeatureRow(body)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.log.Debugf(ctx, "feature row: %v", row.Map())

	label, err := h.predictionService.Predict(ctx, row)
	if err != nil {
		h.fail(c, err)
		return
	}

	ginx.Success(c, response.FromLabel(label))
}

func (h *PredictionHandler) fail(c *gin.Context, err error) {
	h.log.Errorf(c.Request.Context(), "predict failed: %v", err)
	h.predictionService.RecordError(err)
	ginx.InternalError(c, err.Error())
}
