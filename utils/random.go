package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateRandomToken 生成 URL 安全的随机令牌
func GenerateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// GenerateRandomString 生成指定长度的随机字符串，用于默认密码
func GenerateRandomString(length int) (string, error) {
	token, err := GenerateRandomToken(length)
	if err != nil {
		return "", err
	}
	// base64 编码后长度不小于原始字节数，且填充只出现在末尾
	return token[:length], nil
}
