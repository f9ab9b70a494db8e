package auth

import (
	// 外部依赖
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	// 内部引用
	config "github.com/srinivas-tce/labgigs/internal/config"
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
)

type Claims struct {
	UserUUID uuid.UUID   `json:"user_uuid"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     common.Role `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken 为用户签发访问令牌，返回令牌与有效期（秒）
func IssueToken(user *model.User) (string, int64, error) {
	conf := config.Global().Auth
	expire := time.Duration(conf.TokenExpire) * time.Hour

	claims := &Claims{
		UserUUID: user.UUID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UUID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(conf.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return token, int64(expire.Seconds()), nil
}

// ParseToken 校验签名与有效期
func ParseToken(tokenStr string) (*Claims, error) {
	conf := config.Global().Auth
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, code.InvalidToken
		}
		return []byte(conf.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, code.InvalidToken
	}
	return claims, nil
}
