// Package errors defines the domain error vocabulary. Every error carries an
// HTTP status, a stable machine code, and a user-facing message, so the
// response layer can render any of them without switching on concrete types.
package errors

import (
	"net/http"

	"dreamtree/internal/errors"
)

// AppError is the contract between domain failures and the HTTP layer.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError implements AppError for the predefined errors below.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage attaches call-site context while keeping the base error
// reachable for errors.As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

var (
	// Connection flow errors.
	ErrInvalidInput          = NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "輸入資料無效", "")
	ErrInvalidOrExpiredState = NewBaseError(http.StatusBadRequest, "INVALID_OR_EXPIRED_STATE", "授權狀態無效或已過期，請重新發起連結", "")
	ErrAuthorizationDenied   = NewBaseError(http.StatusUnauthorized, "AUTHORIZATION_DENIED", "授權請求遭到拒絕", "")
	ErrTokenExchangeFailed   = NewBaseError(http.StatusBadGateway, "TOKEN_EXCHANGE_FAILED", "向個人資料伺服器交換權杖失敗", "")
	ErrMalformedToken        = NewBaseError(http.StatusBadGateway, "MALFORMED_TOKEN", "伺服器回傳的存取權杖格式異常", "")

	// Connection state errors.
	ErrNotConnected        = NewBaseError(http.StatusBadRequest, "NOT_CONNECTED", "尚未連結 AT Protocol 帳號", "")
	ErrUpstreamUnavailable = NewBaseError(http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "上游服務暫時無法使用，請稍後再試", "")

	// Authentication errors.
	ErrUnauthorized = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "未通過身分驗證", "")
	ErrTokenInvalid = NewBaseError(http.StatusUnauthorized, "TOKEN_INVALID", "無效或已過期的存取權杖", "")

	// Validation errors.
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "輸入資料驗證失敗", "")

	// Transaction errors.
	ErrTransactionFailed = NewBaseError(http.StatusInternalServerError, "TRANSACTION_FAILED", "資料庫交易失敗", "")

	// General errors.
	ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "系統內部錯誤", "")
	ErrForbidden     = NewBaseError(http.StatusForbidden, "FORBIDDEN", "存取被拒絕", "")
	ErrNotFound      = NewBaseError(http.StatusNotFound, "NOT_FOUND", "找不到該資源", "")
	ErrConflict      = NewBaseError(http.StatusConflict, "CONFLICT", "資源衝突", "")
)

// DatabaseExecuteError wraps a driver error as an AppError. The driver error
// stays reachable through Unwrap; clients only ever see the generic message.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
