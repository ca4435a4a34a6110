package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

type JwtCustomClaim struct {
	UserId int    `json:"userId"`
	Kind   string `json:"kind"`
	jwt.StandardClaims
}

// TokenIssuer signs and validates access and refresh credentials.
// Each kind has its own secret so a refresh token is never accepted as access.
type TokenIssuer struct {
	accessSecret    []byte
	refreshSecret   []byte
	accessLifetime  time.Duration
	refreshLifetime time.Duration
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessLifetime, refreshLifetime time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:    []byte(accessSecret),
		refreshSecret:   []byte(refreshSecret),
		accessLifetime:  accessLifetime,
		refreshLifetime: refreshLifetime,
	}
}

func (t *TokenIssuer) AccessLifetime() time.Duration  { return t.accessLifetime }
func (t *TokenIssuer) RefreshLifetime() time.Duration { return t.refreshLifetime }

func (t *TokenIssuer) GenerateAccess(userId int) (string, error) {
	return t.generate(userId, tokenKindAccess, t.accessSecret, t.accessLifetime)
}

func (t *TokenIssuer) GenerateRefresh(userId int) (string, error) {
	return t.generate(userId, tokenKindRefresh, t.refreshSecret, t.refreshLifetime)
}

func (t *TokenIssuer) ValidateAccess(token string) (*JwtCustomClaim, error) {
	return t.validate(token, tokenKindAccess, t.accessSecret)
}

func (t *TokenIssuer) ValidateRefresh(token string) (*JwtCustomClaim, error) {
	return t.validate(token, tokenKindRefresh, t.refreshSecret)
}

func (t *TokenIssuer) generate(userId int, kind string, secret []byte, lifetime time.Duration) (string, error) {
	if userId <= 0 {
		return "", errors.New("invalid user id")
	}
	now := time.Now()
	claims := &JwtCustomClaim{
		UserId: userId,
		Kind:   kind,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(lifetime).Unix(),
			IssuedAt:  now.Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (t *TokenIssuer) validate(token string, kind string, secret []byte) (*JwtCustomClaim, error) {
	parsed, err := jwt.ParseWithClaims(token, &JwtCustomClaim{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*JwtCustomClaim)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ExpiresAt == 0 || claims.IssuedAt == 0 {
		return nil, errors.New("token had no 'exp' or 'iat' payload")
	}
	if claims.Kind != kind {
		return nil, fmt.Errorf("expected %s token", kind)
	}
	return claims, nil
}

// BearerToken strips an optional "Bearer " prefix.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
