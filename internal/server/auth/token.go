// Package auth implements credential verification and the signed-token codec:
// bcrypt password hashing and HS256 JWTs carrying the identity and role
// snapshot taken at login time.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akarpenko/warehouse-api/internal/server/models"
)

// Decode failure kinds, matched with errors.Is. Decode reports the first
// violation in this order: malformed, signature, issuer, audience, expiry.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenInvalidIssuer    = errors.New("token issuer invalid")
	ErrTokenInvalidAudience  = errors.New("token audience invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// Claims are the identity facts embedded in a token at issuance. Roles is the
// exact snapshot of the user's roles at login time; later role changes in the
// store do not affect already-issued tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64    `json:"uid"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
}

// Codec encodes and validates signed tokens. It is immutable after
// construction and safe for unbounded concurrent use.
type Codec struct {
	signingKey []byte
	issuer     string
	audience   string
	validity   time.Duration
	now        func() time.Time
}

// NewCodec returns a codec signing with key and stamping issuer/audience.
// validity is the window between issued-at and expiry (24h in the default
// configuration).
func NewCodec(signingKey []byte, issuer, audience string, validity time.Duration) *Codec {
	return &Codec{
		signingKey: signingKey,
		issuer:     issuer,
		audience:   audience,
		validity:   validity,
		now:        time.Now,
	}
}

// WithNow overrides the codec's clock. Test seam.
func (c *Codec) WithNow(now func() time.Time) *Codec {
	c.now = now
	return c
}

// Validity returns the configured validity window.
func (c *Codec) Validity() time.Duration {
	return c.validity
}

// Encode mints a signed token for user with exp = now + validity.
// The user's roles are copied into the claims so the token stays an immutable
// snapshot.
func (c *Codec) Encode(user *models.User) (string, time.Time, error) {
	now := c.now()
	expiresAt := now.Add(c.validity)

	roles := make([]string, len(user.Roles))
	copy(roles, user.Roles)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			Audience:  jwt.ClaimStrings{c.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: user.ID,
		Email:  user.Email,
		Roles:  roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Decode parses and validates tokenString and returns its claims.
// The signing method is pinned to HMAC, issuer and audience must match the
// codec's configuration, and no clock leeway is applied: a token is live
// while now < exp and already expired at now == exp.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return c.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, mapTokenError(err)
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// mapTokenError collapses golang-jwt's joined errors into one sentinel,
// keeping the first-violation precedence documented on the kinds above.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrTokenInvalidIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrTokenInvalidAudience
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	default:
		return ErrTokenMalformed
	}
}
