package dto

// RegisterRequest payload for shopper signup.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// LoginRequest payload for shopper login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginRequest payload for admin login.
type AdminLoginRequest struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}

// UserResponse is the public shape of a shopper.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse wraps a shopper token with its owner.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AdminLoginResponse wraps an admin token.
type AdminLoginResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	Admin   AdminResponse `json:"admin"`
}

// AdminResponse is the public shape of the admin principal.
type AdminResponse struct {
	ID int64 `json:"id"`
}
