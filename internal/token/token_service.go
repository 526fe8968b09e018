package token

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/apperror"
)

const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken covers malformed, tampered and expired tokens alike.
// Callers must treat any verification failure as unauthenticated; the
// distinction is deliberately not surfaced.
var ErrInvalidToken = apperror.New(
	apperror.CodeUnauthorized,
	"Invalid or expired token",
	http.StatusUnauthorized,
)

type Claims struct {
	UserID    string
	Email     string
	Role      string
	CompanyID string
}

//go:generate mockgen -destination=mock/token_service_mock.go -package=mock . Service
type Service interface {
	Issue(userID, email, role, companyID string) (string, error)
	Verify(tokenString string) (Claims, error)
}

type service struct {
	secret []byte
	now    func() time.Time
}

func NewService(secret string) Service {
	return &service{secret: []byte(secret), now: time.Now}
}

// NewServiceWithClock lets tests control expiry.
func NewServiceWithClock(secret string, now func() time.Time) Service {
	return &service{secret: []byte(secret), now: now}
}

func (s *service) Issue(userID, email, role, companyID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"email":      email,
		"role":       role,
		"company_id": companyID,
		"iat":        s.now().Unix(),
		"exp":        s.now().Add(TokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

func (s *service) Verify(tokenString string) (Claims, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	userID, _ := mapClaims["user_id"].(string)
	if userID == "" {
		return Claims{}, ErrInvalidToken
	}

	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	companyID, _ := mapClaims["company_id"].(string)

	return Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		CompanyID: companyID,
	}, nil
}
