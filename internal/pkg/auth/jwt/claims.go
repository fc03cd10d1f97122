package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the JWT claims for a PingRoom session token.
// Beyond the standard claims it carries the same three fields the client persists
// as its session record: id, name, and email.
type Payload struct {
	// StandardClaims embeds the standard JWT fields (Exp, Iat, Iss) used for
	// token validity checks.
	jwt.StandardClaims `json:"standard_claims"`

	// ID is the identifier issued for the session user.
	ID string `json:"id"`

	// Name is the display name of the session user.
	Name string `json:"name"`

	// Email is the address the session was opened with.
	Email string `json:"email"`
}
