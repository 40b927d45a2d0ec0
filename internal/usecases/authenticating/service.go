package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	RoleAdmin   = 1
	RoleService = 2
	RoleClient  = 3
)

// Authenticator valida e emite os tokens de serviço que protegem a API
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	IssueToken(userID string, roleID int, ttl time.Duration) (string, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

func (s *Service) IssueToken(userID string, roleID int, ttl time.Duration) (string, error) {
	if roleID < RoleAdmin || roleID > RoleClient {
		return "", NewAuthError(ErrInvalidRequest, "", fmt.Sprintf("role %d desconhecido", roleID))
	}
	if roleID == RoleClient && userID == "" {
		return "", NewAuthError(ErrMissingRequiredData, "", "token de cliente precisa de user_id")
	}

	now := time.Now()
	claims := domain.Claims{
		UserID:     userID,
		UserRoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, "", err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, "", err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// CanActFor diz se o portador do token pode operar sobre os dados do usuário informado.
// Clientes só podem agir sobre si mesmos.
func CanActFor(claims *domain.Claims, userID string) bool {
	if claims == nil {
		return false
	}
	if claims.UserRoleID == RoleClient {
		return claims.UserID != "" && claims.UserID == userID
	}
	return claims.UserRoleID == RoleAdmin || claims.UserRoleID == RoleService
}
