package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const tokenExpiration = time.Hour * 24

type JWTManager struct {
	TokenName string
	secret    string
	logger    *zap.Logger
}

type userClaims struct {
	jwt.RegisteredClaims
	UserLogin string `json:"user_login"`
	UserRole  string `json:"user_role"`
}

func InitJWTManager(tokenName string, secret string, logger *zap.Logger) *JWTManager {
	return &JWTManager{
		TokenName: tokenName,
		secret:    secret,
		logger:    logger,
	}
}

func (j *JWTManager) BuildJWTString(login string, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, userClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExpiration)),
		},
		UserLogin: login,
		UserRole:  role,
	})

	tokenString, err := token.SignedString([]byte(j.secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (j *JWTManager) GetUserClaims(tokenString string) (login string, role string, err error) {
	claims := &userClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.secret), nil
	})
	if err != nil {
		return "", "", err
	}

	if !token.Valid {
		return "", "", fmt.Errorf("token is not valid")
	}

	return claims.UserLogin, claims.UserRole, nil
}
