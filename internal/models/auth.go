package models

// LoginRequest is the body accepted by the login endpoint.
// Fields are passed to Cognito as-is; empty values are rejected there.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenBundle holds the tokens issued for a successful login
type TokenBundle struct {
	AccessToken  string `json:"accessToken"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int32  `json:"expiresIn"`
}
