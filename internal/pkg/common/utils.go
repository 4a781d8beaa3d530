package common

import (
	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// StringValue 取出字串指標的值，nil 回傳空字串
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
