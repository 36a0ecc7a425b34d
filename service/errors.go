package service

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode string

const (
	ErrCodeMissingField       ErrorCode = "MISSING_FIELD"
	ErrCodeInvalidField       ErrorCode = "INVALID_FIELD"
	ErrCodeDateOrderViolation ErrorCode = "DATE_ORDER_VIOLATION"
)

const (
	MessageMissingField       = "모든 항목을 입력해주세요."
	MessageDateOrderViolation = "가입자 생일 이전에 청약통장 가입은 어려워요. 다시 확인해주세요."
	MessageShareUnavailable   = "카카오톡 공유 기능을 불러올 수 없습니다."
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrShareUnavailable = errors.New("share unavailable")
)

// ValidationError rejects a score form before any scoring happens.
type ValidationError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Fields  []string  `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Code, strings.Join(e.Fields, ","), e.Message)
}

func newMissingFieldError(fields []string) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeMissingField,
		Message: MessageMissingField,
		Fields:  fields,
	}
}

func newInvalidFieldError(field, message string) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeInvalidField,
		Message: message,
		Fields:  []string{field},
	}
}

func newDateOrderError() *ValidationError {
	return &ValidationError{
		Code:    ErrCodeDateOrderViolation,
		Message: MessageDateOrderViolation,
		Fields:  []string{"birthDate", "subscriptionDate"},
	}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
