package contracts

//go:generate mockgen -source=token.go -destination=mock/token.go -package=mock

import "tradechat/internal/core/domain"

type TokenVerifier interface {
	// VerifyToken validates signature and expiry of a raw (prefix-less) token.
	VerifyToken(token string) (*domain.TokenClaims, error)
}
