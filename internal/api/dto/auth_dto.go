package dto

// LoginRequest carries operator credentials. The dashboard frontend submits
// them form-encoded; JSON bodies parse through the same tags.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse is the /login success payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
