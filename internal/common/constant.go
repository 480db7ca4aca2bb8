package common

// AuthHeaderName is the HTTP header carrying the bearer token on outbound
// requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is prepended to the raw token in the auth header.
const BearerPrefix = "Bearer "

// Keys used in the durable client key-value store.
const (
	TokenKey = "token"
	ThemeKey = "theme"
)
