package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ensure JWTManager implements Verifier
var _ Verifier = (*JWTManager)(nil)

// JWTManager validates HS256 tokens issued by the identity provider.
// It can also mint tokens with the same secret for development and tests.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
	issuer        string
}

// Claims represents the JWT claims the identity provider puts in a token.
// UserID falls back to the registered subject when absent.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTManager creates a new JWT manager with the given secret and token duration.
// secretKey should be a strong random string (e.g., 32 bytes).
// tokenDuration is how long minted tokens remain valid (e.g., 24 hours).
func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// WithIssuer requires tokens to carry the given "iss" claim and stamps it on minted tokens.
func (m *JWTManager) WithIssuer(issuer string) *JWTManager {
	m.issuer = issuer
	return m
}

// Generate mints a token for the given identity using the default duration.
func (m *JWTManager) Generate(id Identity) (string, error) {
	return m.GenerateWithTTL(id, m.tokenDuration)
}

// GenerateWithTTL mints a token for the given identity valid for ttl.
func (m *JWTManager) GenerateWithTTL(id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: id.UserID,
		Email:  id.Email,
		Name:   id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and validates a JWT token, returning the claims if valid.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			// Verify the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		opts...,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	return claims, nil
}

// Verify validates the token and returns the caller identity.
func (m *JWTManager) Verify(tokenString string) (*Identity, error) {
	claims, err := m.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return &Identity{UserID: claims.UserID, Email: claims.Email, Name: claims.Name}, nil
}
