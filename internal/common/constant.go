package common

const (
	// AccessTokenKey and RefreshTokenKey are the names under which the
	// credential pair is persisted. Both are always written and cleared
	// together.
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)
