package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// UserInfo defines the identity decoded from an access token.
type UserInfo struct {
	UID  string `json:"uid,omitempty"`
	Name string `json:"name,omitempty"`
}

// AccessClaims defines the custom claims carried by an HMAC-signed access token.
type AccessClaims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	// RegisteredClaims are a structured version of the JWT Claims Set,
	// restricted to Registered Claim Names, as referenced at
	// https://datatracker.ietf.org/doc/html/rfc7519#section-4.1
	jwt.RegisteredClaims
}
