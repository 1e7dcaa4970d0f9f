package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity a signed token proves.
type Claims struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	LanguageID int    `json:"languageId"`
	StatusID   int    `json:"statusId"`
	jwt.RegisteredClaims
}

// ResetClaims is the claim set of a password-reset token.
type ResetClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access and password-reset tokens.
// Reset tokens are signed with a separate secret.
type TokenManager struct {
	secret      []byte
	resetSecret []byte
	expiry      time.Duration
}

func NewTokenManager(secret, resetSecret string) *TokenManager {
	return &TokenManager{
		secret:      []byte(secret),
		resetSecret: []byte(resetSecret),
		expiry:      time.Hour,
	}
}

func (m *TokenManager) Generate(id int, email, username string, languageID, statusID int) (string, error) {
	claims := &Claims{
		ID:         id,
		Email:      email,
		Username:   username,
		LanguageID: languageID,
		StatusID:   statusID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateResetToken creates a password-reset token valid for 1 hour.
func (m *TokenManager) GenerateResetToken(email string) (string, error) {
	claims := &ResetClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.resetSecret)
}

func (m *TokenManager) ParseResetToken(tokenString string) (*ResetClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResetClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.resetSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ResetClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
