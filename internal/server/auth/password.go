package auth

import "golang.org/x/crypto/bcrypt"

// DefaultHashCost is the bcrypt work factor used when the configuration does
// not override it.
const DefaultHashCost = bcrypt.DefaultCost

// HashPassword produces a salted bcrypt hash of plain. The salt is generated
// per call, so hashing the same password twice yields different strings;
// hashes must only ever be checked with VerifyPassword, never by equality.
// A cost below bcrypt's minimum falls back to DefaultHashCost.
func HashPassword(plain string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
// A mismatch is an ordinary false, and so is a malformed hash: callers treat
// both as failed credentials, not faults. The comparison inside bcrypt is
// constant-time.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
