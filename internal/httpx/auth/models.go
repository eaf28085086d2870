package auth

// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// swagger:model TokenResponse
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Username    string `json:"username,omitempty"`
}
