package models

// TokenRequest exchanges an API key for a short-lived bearer token
type TokenRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

// TokenResponse carries the issued JWT
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"900"`
}
