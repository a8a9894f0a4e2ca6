package jwt

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"backend/gestion-platform/app/internal/config"
)

const (
	TokenTypeBearer = "Bearer"
)

var (
	ErrMissingAuthorization = errors.New("missing authorization header")
	ErrInvalidToken         = errors.New("invalid token")
)

type DefaultJwt struct {
	config config.JwtConfig
}

func NewJwt(jwtConfig config.JwtConfig) Jwt {
	return &DefaultJwt{
		config: jwtConfig,
	}
}

func (m *DefaultJwt) GetExpirationTime() int64 {
	return int64(m.config.AccessExpiration.Seconds())
}

func (m *DefaultJwt) ParseToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.SecretKey), nil
	})
}

func (m *DefaultJwt) ValidateToken(token string) (*Claims, error) {
	t, err := m.ParseToken(token)
	if err != nil {
		return nil, err
	}

	if !t.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := t.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

func (m *DefaultJwt) GenerateAccessToken(
	userID *int64,
	username *string,
	email *string,
	role *string,
	pole *string,
) (*AccessToken, error) {
	claims := m.newClaims(userID, username, email, role, pole, m.config.AccessExpiration)
	token, err := m.GenerateAccessTokenWithExpiration(claims)
	if err != nil {
		return nil, err
	}
	return &AccessToken{
		Token:     token,
		ExpiredAt: claims.ExpiresAt.Time,
	}, nil
}

func (m *DefaultJwt) GenerateRefreshToken(
	userID *int64,
	username *string,
	email *string,
	role *string,
	pole *string,
) (*RefreshToken, error) {
	tokenBase64, err := GenerateRandomBase64(32)
	if err != nil {
		return nil, err
	}
	claims := m.newClaims(userID, username, email, role, pole, m.config.RefreshExpiration)
	claims.RefreshTokenBase64 = &tokenBase64

	token, err := m.GenerateAccessTokenWithExpiration(claims)
	if err != nil {
		return nil, err
	}
	return &RefreshToken{
		Token:       token,
		TokenBase64: tokenBase64,
		ExpiredAt:   claims.ExpiresAt.Time,
	}, nil
}

func (m *DefaultJwt) newClaims(
	userID *int64,
	username *string,
	email *string,
	role *string,
	pole *string,
	ttl time.Duration,
) *Claims {
	now := time.Now()
	return &Claims{
		UserID:   userID,
		Username: username,
		Email:    email,
		Role:     role,
		Pole:     pole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
}

func (m *DefaultJwt) GenerateAccessTokenWithExpiration(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.SecretKey))
}

func GenerateRandomBase64(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func (m *DefaultJwt) GetClaims(c echo.Context) (*Claims, error) {
	authorizationHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.TrimSpace(authorizationHeader) == "" {
		return nil, ErrMissingAuthorization
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, TokenTypeBearer+" "))

	claims, err := m.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	// Refresh tokens carry the same claims and must not be accepted as access tokens.
	if claims.RefreshTokenBase64 != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
