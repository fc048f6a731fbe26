package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expiredJWT reports whether token is a well-formed JWT whose expiry has
// passed. The signature is NOT verified - the backend owns verification; this
// check only avoids a network round trip that is certain to fail. Opaque or
// malformed tokens report false and are validated by the backend instead.
func expiredJWT(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
