package mealdb

import (
	"errors"
	"fmt"
)

// Kind 錯誤類型
type Kind string

const (
	KindInvalidArgument Kind = "INVALID_ARGUMENT" // 發出請求前的參數錯誤
	KindTransport       Kind = "TRANSPORT_ERROR"  // 非 200 狀態碼或網路層失敗
	KindDecode          Kind = "DECODE_ERROR"     // 回應 JSON 結構不符
	KindEmptyResult     Kind = "EMPTY_RESULT"     // 回應正常但查無資料
	KindCancelled       Kind = "CANCELLED"        // 呼叫端取消或逾時
)

// Error 上游食譜 API 的錯誤
type Error struct {
	Kind       Kind
	Op         string // 發生錯誤的操作，例如 "FetchDetail"
	StatusCode int    // HTTP 狀態碼，網路層失敗時為 0
	Payload    string // 出錯的回應片段（已截斷）
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("mealdb %s: %s", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 讓 errors.Is(err, &Error{Kind: k}) 只比對 Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Err == nil
}

// 供 errors.Is 比對的哨兵錯誤
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrTransport       = &Error{Kind: KindTransport}
	ErrDecode          = &Error{Kind: KindDecode}
	ErrEmptyResult     = &Error{Kind: KindEmptyResult}
	ErrCancelled       = &Error{Kind: KindCancelled}
)

// KindOf 取出錯誤類型，不是 *Error 時回傳空字串
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
