package auth

// TokenType is the scheme clients must use in the Authorization header.
const TokenType = "bearer"

// AuthResult is returned by the Login operation.
type AuthResult struct {
	AccessToken string
	TokenType   string
}
