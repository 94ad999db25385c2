package logic

import (
	"errors"
	"fmt"
)

// 处理层需要区分状态码的已知错误
var (
	ErrTeamNotFound         = errors.New("Team not found")
	ErrProjectNotFound      = errors.New("Project not found")
	ErrDuplicateEmail       = errors.New("One of the member emails is already registered")
	ErrInvalidMilestoneType = errors.New("Invalid milestone type")
)

// ValidationError 请求数据校验错误，处理层映射为400
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// NewValidationError 创建校验错误
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidationError 是否为校验错误
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
