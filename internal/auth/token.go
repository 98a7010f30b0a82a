package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// TokenManager handles issuing and validating JWT bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager. The secret comes from injected
// configuration, never from source.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the JWT payload. Subject distinguishes shopper tokens
// from the admin token; the two are never interchangeable.
type Claims struct {
	SubjectID int64              `json:"sub_id"`
	Subject   domain.SubjectType `json:"subject"`
	Email     string             `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// GenerateShopperToken signs a token scoped to a shopper identity.
func (tm *TokenManager) GenerateShopperToken(userID int64, email string) (string, time.Time, error) {
	return tm.generate(userID, domain.SubjectTypeShopper, email)
}

// GenerateAdminToken signs a token scoped to the admin principal.
func (tm *TokenManager) GenerateAdminToken(adminID int64) (string, time.Time, error) {
	return tm.generate(adminID, domain.SubjectTypeAdmin, "")
}

func (tm *TokenManager) generate(subjectID int64, subject domain.SubjectType, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		SubjectID: subjectID,
		Subject:   subject,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates and returns claims. Malformed encoding, bad
// signature and expiry all surface as errors; callers collapse them into
// one external rejection.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
