package jwt

import (
	"time"

	"sober-october-system/config"

	jwtlib "github.com/golang-jwt/jwt"
)

// Claims JWT 负载，UserID 为用户 UUID，RoleID 0 普通用户 1 管理员
type Claims struct {
	UserID string `json:"sub"`
	RoleID int    `json:"role_id"`
	jwtlib.StandardClaims
}

// CreateToken 签发 HS256 访问令牌
func CreateToken(userID string, roleID int) string {
	cfg := config.Get().JWT
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RoleID: roleID,
		StandardClaims: jwtlib.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(cfg.AccessExpire) * time.Second).Unix(),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		// HS256 + []byte 密钥下不会失败
		panic(err)
	}
	return signed
}

// ParseToken 解析并校验令牌，valid 为 false 时 payload 不可用
func ParseToken(tokenString string) (payload *Claims, valid bool) {
	cfg := config.Get().JWT
	token, err := jwtlib.ParseWithClaims(tokenString, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, jwtlib.ErrSignatureInvalid
		}
		return []byte(cfg.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}
