package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the access token without verifying its signature and
// returns the expiry claim. Display only: the client never acts on expiry
// proactively, it discovers it when a request fails.
func TokenExpiry(access string) (time.Time, bool) {
	token, _, err := jwt.NewParser().ParseUnverified(access, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
