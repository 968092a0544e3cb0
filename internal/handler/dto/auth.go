package dto

// LoginRequest represents the login request body.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token identifier.
type LoginResponse struct {
	Token string `json:"token"`
}
