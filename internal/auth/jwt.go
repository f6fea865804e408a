package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/qiaoohe/Sleep-Planet/internal"
)

// JWTProvider signs and verifies HS256 tokens carrying the user's identity
// in the claims, so verification needs no storage round trip.
type JWTProvider struct {
	secret []byte
	ttl    time.Duration
	logger internal.Logger
}

func NewJWTProvider(secret string, ttl time.Duration, logger internal.Logger) *JWTProvider {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &JWTProvider{secret: []byte(secret), ttl: ttl, logger: logger}
}

func (p *JWTProvider) IssueToken(user *internal.User) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"color": user.AvatarColor,
		"exp":   time.Now().Add(p.ttl).Unix(),
	}).SignedString(p.secret)
}

func (p *JWTProvider) Verify(ctx context.Context, token string) (*internal.User, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		p.logger.Warnf("invalid token: %v", err)
		return nil, errors.New("invalid token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	uid, _ := claims["uid"].(string)
	if uid == "" {
		return nil, errors.New("invalid token claims")
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	color, _ := claims["color"].(string)
	return &internal.User{ID: uid, Name: name, Email: email, AvatarColor: color}, nil
}

var _ Provider = (*JWTProvider)(nil)
