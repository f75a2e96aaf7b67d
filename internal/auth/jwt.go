package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// ErrInvalidToken is returned for every rejected access token.
var ErrInvalidToken = fmt.Errorf("invalid access token: %w", domain.ErrUnauthorized)

// accessClaims are the claims the session layer puts in an access token.
// A missing role claim means COMMUNITY.
type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// TokenVerifier checks HS256 access tokens minted by the session layer.
// This service never issues tokens to clients; it only reads the identity.
type TokenVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenVerifier accepts tokens signed with secret by issuer. leeway
// tolerates clock skew between this service and the session layer.
func NewTokenVerifier(secret, issuer string, leeway time.Duration) *TokenVerifier {
	return &TokenVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(leeway),
		),
	}
}

// ValidateAccessToken returns the caller's id and role. Any failure wraps
// ErrInvalidToken.
func (v *TokenVerifier) ValidateAccessToken(raw string) (uuid.UUID, domain.UserRole, error) {
	if raw == "" {
		return uuid.Nil, "", fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	var claims accessClaims
	if _, err := v.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		return uuid.Nil, "", errors.Join(ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: subject %q is not a UUID", ErrInvalidToken, claims.Subject)
	}

	role := domain.UserRole(claims.Role)
	if role == "" {
		role = domain.UserRoleCommunity
	}
	if !role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return userID, role, nil
}

// IssueAccessToken signs a token the way the session layer does. The CLI
// and integration tests use it to act as a given user.
func IssueAccessToken(secret, issuer string, userID uuid.UUID, role domain.UserRole, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: string(role),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
