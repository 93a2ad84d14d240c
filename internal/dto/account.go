package dto

// SignupRequest is the body for POST /auth/signup (form) and /auth/restsignup (JSON).
// Field names match the original HTML form inputs.
type SignupRequest struct {
	Email    string `json:"Email" form:"Email" binding:"required,email"`
	Password string `json:"Password" form:"Password" binding:"required,min=6"`
}

// LoginRequest is the body for POST /auth/login and /auth/restlogin.
type LoginRequest struct {
	Email    string `json:"Email" form:"Email" binding:"required,email"`
	Password string `json:"Password" form:"Password" binding:"required,min=6"`
}

// TokenResponse is returned by /auth/restlogin; the same token is also set in
// the auth-token response header.
type TokenResponse struct {
	Token string `json:"token"`
}
