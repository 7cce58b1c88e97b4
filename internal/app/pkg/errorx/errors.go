package errorx

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField    = errors.New("missing field")
	ErrInvalidNumber   = errors.New("value is not a number")
	ErrMalformedBody   = errors.New("malformed request body")
	ErrEmptyPrediction = errors.New("model returned no prediction")
)

// ValidationError 请求参数错误（客户端错误）
type ValidationError struct {
	Field string
	Err   error
}

// Error 实现 error 接口
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError 创建参数错误
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// ModelError 模型推理错误（服务端错误）
type ModelError struct {
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model prediction failed: %v", e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError 包装模型返回的错误
func NewModelError(err error) *ModelError {
	return &ModelError{Err: err}
}

// IsValidation 判断是否为参数错误
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsModel 判断是否为模型错误
func IsModel(err error) bool {
	var me *ModelError
	return errors.As(err, &me)
}

// Kind 返回错误分类，用于指标标签
func Kind(err error) string {
	switch {
	case IsValidation(err):
		return "validation"
	case IsModel(err):
		return "model"
	default:
		return "internal"
	}
}
