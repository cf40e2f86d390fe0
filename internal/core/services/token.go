package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"tradechat/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

var ErrExpiredToken = errors.New("token has expired")

// accessClaims mirrors the access token issued by the marketplace login.
type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	return &TokenService{
		secretKey: []byte(secret),
		issuer:    issuer,
		ttl:       ttl,
	}
}

func (s *TokenService) GenerateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// VerifyToken parses and validates the JWT string
func (s *TokenService) VerifyToken(tokenStr string) (*domain.TokenClaims, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Email == "" {
		return nil, errors.New("email not found in token")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("subject is not a user id: %w", err)
	}
	return &domain.TokenClaims{UserID: userID, Email: claims.Email}, nil
}
