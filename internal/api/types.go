package api

// RegisterRequest is the payload of auth.register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the payload of auth.login. The password length is not
// checked here; a short password simply fails to match.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyRequest is the payload of auth.verify.
type VerifyRequest struct {
	Token string `json:"token"`
}

// User is the public view of an account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse answers every successful call.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
