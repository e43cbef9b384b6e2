package models

// IDTokenClaims holds the validated claims extracted from an OIDC ID token.
// Instances are produced once per login or refresh cycle and never mutated.
type IDTokenClaims struct {
	Issuer   string `json:"iss"`
	Subject  string `json:"sub"`
	Audience string `json:"aud,omitempty"`
	Nonce    string `json:"nonce,omitempty"`
	Expiry   int64  `json:"exp,omitempty"`
	IssuedAt int64  `json:"iat,omitempty"`
}

// Address is the structured address claim from the userinfo response.
type Address struct {
	Formatted string `json:"formatted"`
}

// UserInfo holds the extended profile attributes fetched from the provider's
// userinfo endpoint after authentication.
type UserInfo struct {
	Subject     string   `json:"sub"`
	Email       string   `json:"email,omitempty"`
	GivenName   string   `json:"given_name,omitempty"`
	FamilyName  string   `json:"family_name,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	Address     *Address `json:"address,omitempty"`
	Zoneinfo    string   `json:"zoneinfo,omitempty"`
	Picture     string   `json:"picture,omitempty"`
}

// Identity is the lightweight handle returned by a reconcile call. It
// references the record's canonical name, nothing more.
type Identity struct {
	Name string `json:"name"`
}
