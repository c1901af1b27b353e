package structs

// AuthClaims are the verified claims of the external identity provider's
// access token. Sub is the caller's user id and is what every service
// scopes records by.
type AuthClaims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Exp   int64  `json:"exp"`
}
