package services

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bloglist/internal/config"
	"bloglist/internal/storage"
)

// TokenService 负责签发与校验 HS256 JWT 访问令牌。
type TokenService struct{ cfg config.Config }

func NewTokenService(cfg config.Config) *TokenService { return &TokenService{cfg: cfg} }

// Identity 为令牌校验成功后得到的身份信息。
type Identity struct {
	UserID   uint64
	Username string
}

// Issue 为账号签发访问令牌，携带 uid 与 username 声明。
func (s *TokenService) Issue(u *storage.User) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.Token.TTL)
	claims := jwt.MapClaims{
		"sub":      u.Username,
		"uid":      u.ID,
		"username": u.Username,
		"iat":      now.Unix(),
		"exp":      exp.Unix(),
		"jti":      uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Token.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify 校验令牌签名与有效期，并提取身份声明。
// 签名算法必须为 HMAC；缺少 uid 声明视为无效令牌。
func (s *TokenService) Verify(tokenStr string) (*Identity, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.Token.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	// JSON 数字解码为 float64
	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	return &Identity{UserID: uint64(uid), Username: username}, nil
}
