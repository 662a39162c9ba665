package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/homestock-server/internal/model"
)

// Claims represents JWT claims carrying the user ID and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID  `json:"user_id"`
	Role   model.Role `json:"role"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key and token lifetime.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
}

var _ model.TokenManager = (*JWT)(nil)

// Generate creates a session token for the user.
func (j *JWT) Generate(userID uuid.UUID, role model.Role) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse verifies the signature and expiry of tokenString.
// It returns model.ErrTokenExpired for well-signed expired tokens and
// model.ErrUnauthorized for everything else that fails verification.
func (j *JWT) Parse(tokenString string) (model.Claims, error) {
	if tokenString == "" {
		return model.Claims{}, model.ErrUnauthorized
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
		// Non-canonical base64 endings must not decode to the same signature.
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || j.expiredUnverified(tokenString) {
			return model.Claims{}, fmt.Errorf("%w: %v", model.ErrTokenExpired, err)
		}
		return model.Claims{}, fmt.Errorf("%w: %v", model.ErrUnauthorized, err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return model.Claims{}, model.ErrUnauthorized
	}

	out := model.Claims{
		UserID: claims.UserID,
		Role:   claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// expiredUnverified reports whether the token's exp claim has passed,
// without checking the signature. Expiry takes precedence over signature
// errors so that an expired token is always reported as expired.
func (j *JWT) expiredUnverified(tokenString string) bool {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !j.now().Before(claims.ExpiresAt.Time)
}
