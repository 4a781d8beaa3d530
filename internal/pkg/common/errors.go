package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithErr 複製預定義錯誤並附上原始錯誤
func (e *CustomError) WithErr(err error) *CustomError {
	return NewError(e.Code, e.Message, e.Status, err)
}

// Response 轉為 API 錯誤響應，withDetails 為 true 時附上原始錯誤
func (e *CustomError) Response(withDetails bool) ErrorResponse {
	resp := ErrorResponse{Code: e.Code, Message: e.Message}
	if withDetails && e.Err != nil {
		resp.Details = e.Err.Error()
	}
	return resp
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// AsCustomError 取出錯誤鏈中的 CustomError，找不到時包成 ErrInternalError
func AsCustomError(err error) *CustomError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce
	}
	return ErrInternalError.WithErr(err)
}

// 預定義錯誤代碼
const (
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeRequestTimeout  = "REQUEST_TIMEOUT"   // 408
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	ErrCodeInternalError       = "INTERNAL_ERROR"        // 500
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"  // 502
	ErrCodeUpstreamBadResponse = "UPSTREAM_BAD_RESPONSE" // 502
	ErrCodeGatewayTimeout      = "GATEWAY_TIMEOUT"       // 504
)

// 預定義錯誤
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "資源不存在", http.StatusNotFound, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "請求超時", http.StatusRequestTimeout, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)

	ErrInternalError       = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)
	ErrUpstreamUnavailable = NewError(ErrCodeUpstreamUnavailable, "食譜服務暫時不可用", http.StatusBadGateway, nil)
	ErrUpstreamBadResponse = NewError(ErrCodeUpstreamBadResponse, "食譜服務回應格式錯誤", http.StatusBadGateway, nil)
	ErrGatewayTimeout      = NewError(ErrCodeGatewayTimeout, "網關超時", http.StatusGatewayTimeout, nil)
)
