package jwt

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Claims struct {
	UserID             *int64  `json:"user_id,omitempty"`
	Username           *string `json:"username,omitempty"`
	Email              *string `json:"email,omitempty"`
	Role               *string `json:"role,omitempty"`
	Pole               *string `json:"pole,omitempty"`
	RefreshTokenBase64 *string `json:"refresh_token,omitempty"`
	jwt.RegisteredClaims
}

type Jwt interface {
	GetExpirationTime() int64
	ParseToken(token string) (*jwt.Token, error)
	ValidateToken(token string) (*Claims, error)
	GenerateAccessToken(
		userID *int64,
		username *string,
		email *string,
		role *string,
		pole *string,
	) (*AccessToken, error)
	GenerateRefreshToken(
		userID *int64,
		username *string,
		email *string,
		role *string,
		pole *string,
	) (*RefreshToken, error)
	GenerateAccessTokenWithExpiration(claims *Claims) (string, error)
	GetClaims(c echo.Context) (*Claims, error)
}
