package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de serviço. UserID é o usuário dono das credenciais na plataforma.
type Claims struct {
	UserID     string `json:"user_id"`
	UserRoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}
