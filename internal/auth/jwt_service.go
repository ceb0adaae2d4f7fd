package auth

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/anoixa/photo-album/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mitchellh/mapstructure"
)

const (
	// TokenTypeAccess 访问令牌类型
	TokenTypeAccess = "access"

	minSecretLength  = 32
	defaultExpiresIn = 24 * time.Hour
)

// ErrInvalidToken 令牌无效或已过期
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims JWT 令牌声明
type TokenClaims struct {
	Username string `mapstructure:"username"`
	UserID   uint   `mapstructure:"user_id"`
	Type     string `mapstructure:"type"`
	Exp      int64  `mapstructure:"exp"`
	Iat      int64  `mapstructure:"iat"`
}

// TokenConfig 保存 JWT 配置
type TokenConfig struct {
	Secret    []byte
	ExpiresIn time.Duration
}

// JWTService JWT Token 服务
type JWTService struct {
	config TokenConfig
	mutex  sync.RWMutex
}

// NewJWTService 创建新的 JWT 服务
// secret 为空时生成随机密钥，重启后旧令牌全部失效
func NewJWTService(secret string, expiresIn time.Duration) (*JWTService, error) {
	if secret == "" {
		generated, err := utils.GenerateRandomToken(48)
		if err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		secret = generated
		log.Println("[JWT] jwt_secret is empty, using a random secret for this process")
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("JWT secret must be at least %d characters long, got %d", minSecretLength, len(secret))
	}
	if expiresIn <= 0 {
		expiresIn = defaultExpiresIn
	}

	svc := &JWTService{}
	svc.SetConfig(TokenConfig{Secret: []byte(secret), ExpiresIn: expiresIn})
	utils.LogIfDevf("[JWT] Config loaded - Access: %v", expiresIn)
	return svc, nil
}

// GetConfig 获取当前 JWT 配置（只读）
func (s *JWTService) GetConfig() TokenConfig {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return TokenConfig{
		Secret:    append([]byte{}, s.config.Secret...),
		ExpiresIn: s.config.ExpiresIn,
	}
}

// SetConfig 设置 JWT 配置
func (s *JWTService) SetConfig(config TokenConfig) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.config = config
}

// GenerateAccessToken 生成访问令牌
func (s *JWTService) GenerateAccessToken(username string, userID uint) (string, time.Time, error) {
	config := s.GetConfig()

	if len(config.Secret) == 0 {
		return "", time.Time{}, errors.New("JWT secret is not initialized")
	}

	now := time.Now()
	expiry := now.Add(config.ExpiresIn)
	claims := jwt.MapClaims{
		"username": username,
		"user_id":  userID,
		"type":     TokenTypeAccess,
		"exp":      expiry.Unix(),
		"iat":      now.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return token, expiry, nil
}

// ParseToken 解析和验证 JWT 令牌
func (s *JWTService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	config := s.GetConfig()

	if len(config.Secret) == 0 {
		return nil, errors.New("JWT secret is not initialized")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return config.Secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractClaims 从令牌中提取声明
func (s *JWTService) ExtractClaims(tokenString string) (*TokenClaims, error) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	var out TokenClaims
	if err := mapstructure.Decode(map[string]interface{}(claims), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &out, nil
}

// ValidateAccessToken 校验访问令牌并返回声明
func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	claims, err := s.ExtractClaims(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != TokenTypeAccess || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
