package session

import (
	"errors"
	"net/url"
)

var (
	// ErrCallbackFailed means the provider reported an error in the
	// redirect (the "error" query parameter is set).
	ErrCallbackFailed = errors.New("social authentication failed")

	// ErrCallbackIncomplete means the redirect carries no usable
	// credential pair.
	ErrCallbackIncomplete = errors.New("callback is missing tokens")
)

// ParseCallbackURL extracts the credential pair from an external-provider
// redirect. The provider appends access, refresh and error query
// parameters to the callback address.
func ParseCallbackURL(raw string) (access, refresh string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	params := u.Query()

	if params.Get("error") != "" {
		return "", "", ErrCallbackFailed
	}

	access = params.Get("access")
	refresh = params.Get("refresh")
	if access == "" || refresh == "" {
		return "", "", ErrCallbackIncomplete
	}
	return access, refresh, nil
}
