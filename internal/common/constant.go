package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in both the login response and the
// Authorization header.
const BearerPrefix = "Bearer "
