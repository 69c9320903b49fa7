package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

type TokenType string

const TokenTypeDownload TokenType = "download"

// DownloadClaims grant read access to one stored report.
type DownloadClaims struct {
	Key      string    `json:"key"`
	Filename string    `json:"filename,omitempty"`
	Type     TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateDownloadToken(key, filename string, expiresIn time.Duration) (string, error)
	ValidateToken(tokenString string) (*DownloadClaims, error)
}

type tokenManager struct {
	secret []byte
	now    func() time.Time
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (m *tokenManager) GenerateDownloadToken(key, filename string, expiresIn time.Duration) (string, error) {
	now := m.now()
	claims := DownloadClaims{
		Key:      key,
		Filename: filename,
		Type:     TokenTypeDownload,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   key,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "trustrent-reports",
			Audience:  jwt.ClaimStrings{"report-download"},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*DownloadClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &DownloadClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithAudience("report-download"))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*DownloadClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != TokenTypeDownload {
		return nil, ErrWrongTokenType
	}
	if claims.Key == "" {
		claims.Key = claims.Subject
	}
	return claims, nil
}
