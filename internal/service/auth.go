package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded identity carried by a bearer token.
type Claims struct {
	Email string
}

// AuthService issues and verifies stateless HS256 bearer tokens. Every
// request is verified independently; no session state is kept.
type AuthService struct {
	secret []byte
	expiry time.Duration
}

func NewAuthService(secret string, expiry time.Duration) *AuthService {
	return &AuthService{secret: []byte(secret), expiry: expiry}
}

func (s *AuthService) IssueToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(s.expiry).Unix(),
		"iat":   time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken returns the claims for a valid token and ErrInvalidToken
// for anything unverifiable: bad signature, wrong method, expired.
func (s *AuthService) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}
	return &Claims{Email: email}, nil
}
