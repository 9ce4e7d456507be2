package models

// User is the authenticated user's profile. It lives only in memory: a
// restart drops it even though the credential survives.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	RealName string `json:"realName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// RegisterRequest carries the fields of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RealName string `json:"realName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// AuthResponse is the payload of a successful login or registration: the
// bearer token plus the identity fields, flattened.
type AuthResponse struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	RealName string `json:"realName"`
	Role     string `json:"role"`
}

// User extracts the identity part of the response.
func (r *AuthResponse) User() *User {
	return &User{
		ID:       r.ID,
		Username: r.Username,
		RealName: r.RealName,
		Role:     r.Role,
	}
}
