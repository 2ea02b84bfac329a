package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// JWTManager issues and verifies HS256 tokens signed with a shared secret.
// Tokens are stateless: there is no server-side record of issued tokens, so
// a token stays valid until its expiry regardless of logout.
type JWTManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// CustomClaims carries the user's email, which is the identity key for every
// other collection. Access and refresh tokens are told apart by audience.
type CustomClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewJWTManager(secret string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken signs a short-lived token for the given email.
func (j *JWTManager) GenerateAccessToken(email string) (string, time.Time, error) {
	return j.generate(email, "access", j.accessTTL)
}

// GenerateRefreshToken signs a long-lived token for the given email.
func (j *JWTManager) GenerateRefreshToken(email string) (string, time.Time, error) {
	return j.generate(email, "refresh", j.refreshTTL)
}

func (j *JWTManager) generate(email, audience string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := &CustomClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			Audience:  jwt.ClaimStrings{audience},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	return signed, exp, err
}

// VerifyToken checks signature and expiry and returns the claims.
func (j *JWTManager) VerifyToken(tokenStr string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return j.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// ParseAccess verifies tokenStr as an access token and returns the email.
func (j *JWTManager) ParseAccess(tokenStr string) (string, error) {
	claims, err := j.VerifyToken(tokenStr)
	if err != nil {
		return "", err
	}
	if !containsAudience(claims.Audience, "access") {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}

// ParseRefresh verifies tokenStr as a refresh token and returns the email.
func (j *JWTManager) ParseRefresh(tokenStr string) (string, error) {
	claims, err := j.VerifyToken(tokenStr)
	if err != nil {
		return "", err
	}
	if !containsAudience(claims.Audience, "refresh") {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}
